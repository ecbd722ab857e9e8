package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/hotspotlabs/netpass/internal/clock"
	customerdomain "github.com/hotspotlabs/netpass/internal/customer/domain"
	customerservice "github.com/hotspotlabs/netpass/internal/customer/service"
	ledgerdomain "github.com/hotspotlabs/netpass/internal/ledger/domain"
	"github.com/hotspotlabs/netpass/internal/observability/metrics"
	paymentdomain "github.com/hotspotlabs/netpass/internal/payment/domain"
	"github.com/hotspotlabs/netpass/internal/pricetier"
	subscriptiondomain "github.com/hotspotlabs/netpass/internal/subscription/domain"
	"github.com/hotspotlabs/netpass/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB              *gorm.DB
	Log             *zap.Logger
	GenID           *snowflake.Node
	Clock           clock.Clock
	Repo            paymentdomain.Repository
	Tiers           pricetier.Table
	CustomerSvc     customerdomain.Service
	LedgerSvc       ledgerdomain.Service
	SubscriptionSvc subscriptiondomain.Service
	Metrics         *metrics.Metrics `optional:"true"`
}

type Service struct {
	db              *gorm.DB
	log             *zap.Logger
	genID           *snowflake.Node
	clock           clock.Clock
	repo            paymentdomain.Repository
	tiers           pricetier.Table
	customerSvc     customerdomain.Service
	ledgerSvc       ledgerdomain.Service
	subscriptionSvc subscriptiondomain.Service
	metrics         *metrics.Metrics
}

func New(p Params) paymentdomain.Service {
	return &Service{
		db:              p.DB,
		log:             p.Log.Named("payment.service"),
		genID:           p.GenID,
		clock:           p.Clock,
		repo:            p.Repo,
		tiers:           p.Tiers,
		customerSvc:     p.CustomerSvc,
		ledgerSvc:       p.LedgerSvc,
		subscriptionSvc: p.SubscriptionSvc,
		metrics:         p.Metrics,
	}
}

func (s *Service) ProcessEvent(ctx context.Context, event *paymentdomain.Event) error {
	if err := validateEvent(event); err != nil {
		return err
	}

	now := s.clock.Now()
	received := paymentdomain.EventRecord{
		ID:              s.genID.Generate(),
		Provider:        event.Provider,
		ProviderEventID: event.Reference,
		EventType:       event.Kind,
		Email:           event.Email,
		Amount:          event.Amount,
		Payload:         datatypes.JSON(event.RawPayload),
		ReceivedAt:      now,
	}

	inserted, err := s.repo.InsertEvent(ctx, s.db, &received)
	if err != nil {
		return err
	}
	stored := &received
	if !inserted {
		stored, err = s.repo.FindEvent(ctx, s.db, event.Provider, event.Reference)
		if err != nil {
			return err
		}
		if stored == nil {
			return paymentdomain.ErrInvalidEvent
		}
		if stored.ProcessedAt != nil {
			s.recordEvent(event.Kind, "duplicate")
			return paymentdomain.ErrEventAlreadyProcessed
		}
		// Stored but unprocessed: a previous delivery failed partway
		// through. Run the steps again; each one is idempotent.
	}

	if err := s.applyEvent(ctx, event); err != nil {
		s.recordEvent(event.Kind, "incomplete")
		return err
	}

	if err := s.repo.MarkProcessed(ctx, s.db, stored.ID, now); err != nil {
		return err
	}

	s.recordEvent(event.Kind, "processed")
	return nil
}

func validateEvent(event *paymentdomain.Event) error {
	if event == nil {
		return paymentdomain.ErrInvalidEvent
	}
	event.Provider = strings.ToLower(strings.TrimSpace(event.Provider))
	if event.Provider == "" {
		event.Provider = "paystack"
	}
	event.Reference = strings.TrimSpace(event.Reference)
	if event.Reference == "" {
		return paymentdomain.ErrInvalidEvent
	}
	event.Kind = strings.TrimSpace(event.Kind)
	if event.Kind == "" {
		return paymentdomain.ErrInvalidEvent
	}

	if event.Kind != paymentdomain.EventKindChargeSucceeded {
		return nil
	}

	email, err := customerservice.NormalizeEmail(event.Email)
	if err != nil {
		return paymentdomain.ErrInvalidEmail
	}
	event.Email = email
	if event.Amount < 0 {
		return paymentdomain.ErrInvalidAmount
	}
	if event.PaidAt.IsZero() {
		return paymentdomain.ErrInvalidEvent
	}
	event.PaidAt = event.PaidAt.UTC()
	return nil
}

func (s *Service) applyEvent(ctx context.Context, event *paymentdomain.Event) error {
	switch event.Kind {
	case paymentdomain.EventKindChargeSucceeded:
		return s.settleCharge(ctx, event)
	case paymentdomain.EventKindChargeFailed:
		s.log.Info("charge failed, no entitlement change",
			zap.String("reference", event.Reference),
			zap.String("email", event.Email),
		)
		return nil
	case paymentdomain.EventKindTransferSucceeded,
		paymentdomain.EventKindTransferFailed,
		paymentdomain.EventKindTransferReversed:
		s.log.Info("transfer event acknowledged",
			zap.String("kind", event.Kind),
			zap.String("reference", event.Reference),
		)
		return nil
	default:
		// Unknown kinds are acknowledged so the gateway stops redelivering
		// them, and logged so a new event type is noticed.
		s.log.Warn("unhandled gateway event kind",
			zap.String("kind", event.Kind),
			zap.String("reference", event.Reference),
		)
		return nil
	}
}

// settleCharge runs the three writes behind a successful payment. The steps
// are not one atomic transaction: each failure is logged and counted on its
// own, and the event is left unprocessed so a gateway redelivery can repair
// the remaining steps. The entitlement projection can also be rebuilt from
// the transaction ledger out of band.
func (s *Service) settleCharge(ctx context.Context, event *paymentdomain.Event) error {
	tier := s.tiers.Resolve(event.Amount)
	expiresOn := event.PaidAt.Add(tier.Duration)

	var failed bool

	if _, err := s.customerSvc.Upsert(ctx, customerdomain.UpsertCustomerRequest{
		Email: event.Email,
	}); err != nil {
		failed = true
		s.stepFailed("customer_upsert", event, err)
	}

	if err := s.recordTransaction(ctx, event, tier.Service, expiresOn); err != nil {
		failed = true
		s.stepFailed("transaction_insert", event, err)
	}

	if err := s.subscriptionSvc.Activate(ctx, subscriptiondomain.ActivateRequest{
		Email:     event.Email,
		Service:   tier.Service,
		PaidOn:    event.PaidAt,
		ExpiresOn: expiresOn,
	}); err != nil {
		failed = true
		s.stepFailed("subscription_upsert", event, err)
	}

	if failed {
		return paymentdomain.ErrReconciliationIncomplete
	}
	return nil
}

// recordTransaction appends the ledger row unless this gateway reference was
// already written by an earlier delivery. The ledger insert is the one step
// that is not naturally idempotent, so the reference check is mandatory.
func (s *Service) recordTransaction(ctx context.Context, event *paymentdomain.Event, service string, expiresOn time.Time) error {
	exists, err := s.ledgerSvc.HasReference(ctx, event.Reference)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	err = s.ledgerSvc.Record(ctx, ledgerdomain.Transaction{
		Email:     event.Email,
		Reference: event.Reference,
		Service:   service,
		Amount:    event.Amount,
		PaidOn:    event.PaidAt,
		ExpiresOn: expiresOn,
	})
	if db.IsDuplicateKeyErr(err) {
		// Lost a race with a concurrent delivery of the same reference;
		// the row is there, which is all this step needs.
		return nil
	}
	return err
}

func (s *Service) stepFailed(step string, event *paymentdomain.Event, err error) {
	s.log.Error("reconcile step failed",
		zap.String("step", step),
		zap.String("reference", event.Reference),
		zap.String("email", event.Email),
		zap.Error(err),
	)
	s.metrics.RecordReconcileStepFailure(step)
}

func (s *Service) recordEvent(kind, status string) {
	s.metrics.RecordPaymentEvent(kind, status)
}
