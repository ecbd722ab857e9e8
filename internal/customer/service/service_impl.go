package service

import (
	"context"
	"net/mail"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/hotspotlabs/netpass/internal/clock"
	"github.com/hotspotlabs/netpass/internal/customer/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("customer.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Upsert(ctx context.Context, req domain.UpsertCustomerRequest) (domain.Customer, error) {
	email, err := NormalizeEmail(req.Email)
	if err != nil {
		return domain.Customer{}, err
	}

	now := s.clock.Now()
	candidate := domain.Customer{
		ID:        s.genID.Generate(),
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Upsert(ctx, s.db, &candidate); err != nil {
		return domain.Customer{}, err
	}

	// Re-read so callers observe the stored row: on the conflict branch the
	// generated id and created_at above never made it to the table.
	stored, err := s.repo.FindByEmail(ctx, s.db, email)
	if err != nil {
		return domain.Customer{}, err
	}
	if stored == nil {
		return domain.Customer{}, domain.ErrNotFound
	}
	return *stored, nil
}

func (s *Service) GetByEmail(ctx context.Context, email string) (domain.Customer, error) {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return domain.Customer{}, err
	}
	stored, err := s.repo.FindByEmail(ctx, s.db, normalized)
	if err != nil {
		return domain.Customer{}, err
	}
	if stored == nil {
		return domain.Customer{}, domain.ErrNotFound
	}
	return *stored, nil
}

// NormalizeEmail lowercases and validates the address format.
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", domain.ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", domain.ErrInvalidEmail
	}
	return email, nil
}
