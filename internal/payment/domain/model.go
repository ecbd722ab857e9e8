package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// EventRecord is the persisted dedup row for an inbound gateway event. The
// unique (provider, provider_event_id) pair is what makes redelivered
// events safe: the gateway only promises at-least-once delivery.
type EventRecord struct {
	ID              snowflake.ID   `json:"id" gorm:"primaryKey"`
	Provider        string         `json:"provider" gorm:"type:text;not null;uniqueIndex:idx_payment_events_provider_event"`
	ProviderEventID string         `json:"provider_event_id" gorm:"type:text;not null;uniqueIndex:idx_payment_events_provider_event"`
	EventType       string         `json:"event_type" gorm:"type:text;not null"`
	Email           string         `json:"email" gorm:"type:text"`
	Amount          int64          `json:"amount"`
	Payload         datatypes.JSON `json:"payload" gorm:"type:jsonb"`
	ReceivedAt      time.Time      `json:"received_at" gorm:"not null"`
	ProcessedAt     *time.Time     `json:"processed_at"`
}

func (EventRecord) TableName() string { return "payment_events" }

const (
	EventKindChargeSucceeded   = "charge.success"
	EventKindChargeFailed      = "charge.failed"
	EventKindTransferSucceeded = "transfer.success"
	EventKindTransferFailed    = "transfer.failed"
	EventKindTransferReversed  = "transfer.reversed"
)

// Event is the canonical gateway event applied by the reconciler.
type Event struct {
	Provider   string
	Reference  string
	Kind       string
	Email      string
	Amount     int64
	PaidAt     time.Time
	RawPayload []byte
}

type Service interface {
	// ProcessEvent applies one gateway event to durable state. It is safe
	// to call with the same event any number of times.
	ProcessEvent(ctx context.Context, event *Event) error
}

var (
	ErrInvalidPayload   = errors.New("invalid_payload")
	ErrInvalidSignature = errors.New("invalid_signature")
	ErrInvalidEvent     = errors.New("invalid_event")
	ErrInvalidEmail     = errors.New("invalid_email")
	ErrInvalidAmount    = errors.New("invalid_amount")

	// ErrEventAlreadyProcessed marks a redelivered event that has nothing
	// left to do. Callers acknowledge it as success.
	ErrEventAlreadyProcessed = errors.New("event_already_processed")

	// ErrReconciliationIncomplete marks an event whose write steps did not
	// all land. The event stays unprocessed so a redelivery can repair it;
	// the webhook is still acknowledged and the failure is alerted through
	// metrics.
	ErrReconciliationIncomplete = errors.New("reconciliation_incomplete")
)
