package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/hotspotlabs/netpass/internal/clock"
	"github.com/hotspotlabs/netpass/internal/ledger/domain"
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
		log:   p.Log.Named("ledger.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Record(ctx context.Context, txn domain.Transaction) error {
	txn.Email = strings.TrimSpace(txn.Email)
	txn.Reference = strings.TrimSpace(txn.Reference)
	if txn.Email == "" || txn.Reference == "" || txn.Service == "" {
		return domain.ErrInvalidTransaction
	}
	if txn.Amount < 0 {
		return domain.ErrInvalidTransaction
	}
	if txn.PaidOn.IsZero() || !txn.ExpiresOn.After(txn.PaidOn) {
		return domain.ErrInvalidWindow
	}

	txn.ID = s.genID.Generate()
	txn.CreatedAt = s.clock.Now()
	return s.repo.Insert(ctx, s.db, &txn)
}

func (s *Service) HasReference(ctx context.Context, reference string) (bool, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return false, domain.ErrInvalidTransaction
	}
	return s.repo.ExistsByReference(ctx, s.db, reference)
}

func (s *Service) History(ctx context.Context, email string) ([]domain.Transaction, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, domain.ErrInvalidTransaction
	}
	return s.repo.ListByEmail(ctx, s.db, email)
}
