package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/hotspotlabs/netpass/internal/clock"
	"github.com/hotspotlabs/netpass/internal/subscription/domain"
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
		log:   p.Log.Named("subscription.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Activate(ctx context.Context, req domain.ActivateRequest) error {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Service == "" {
		return domain.ErrInvalidRequest
	}
	if req.PaidOn.IsZero() || !req.ExpiresOn.After(req.PaidOn) {
		return domain.ErrInvalidWindow
	}

	now := s.clock.Now()
	applied, err := s.repo.Activate(ctx, s.db, &domain.ActiveSubscription{
		ID:        s.genID.Generate(),
		Email:     email,
		Service:   req.Service,
		PaidOn:    req.PaidOn.UTC(),
		ExpiresOn: req.ExpiresOn.UTC(),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return err
	}
	if !applied {
		// A newer payment already owns the window; the stale event is a
		// no-op, not a failure.
		s.log.Info("skipped stale entitlement write",
			zap.String("email", email),
			zap.Time("paid_on", req.PaidOn),
		)
	}
	return nil
}

func (s *Service) GetStatus(ctx context.Context, email string) (domain.Status, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.Status{}, domain.ErrInvalidRequest
	}

	sub, err := s.repo.FindByEmail(ctx, s.db, email)
	if err != nil {
		return domain.Status{}, err
	}
	if sub == nil || !sub.ActiveAt(s.clock.Now()) {
		return domain.Status{Active: false}, nil
	}
	return domain.Status{Active: true, Subscription: sub}, nil
}
