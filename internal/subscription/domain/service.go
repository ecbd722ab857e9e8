package domain

import (
	"context"
	"errors"
	"time"
)

type ActivateRequest struct {
	Email     string
	Service   string
	PaidOn    time.Time
	ExpiresOn time.Time
}

type Status struct {
	Active       bool                `json:"active"`
	Subscription *ActiveSubscription `json:"subscription,omitempty"`
}

type Service interface {
	Activate(context.Context, ActivateRequest) error
	// GetStatus reports whether the email holds an unexpired entitlement
	// window right now. Expired rows are reported inactive, not deleted.
	GetStatus(context.Context, string) (Status, error)
}

var (
	ErrInvalidRequest = errors.New("invalid_request")
	ErrInvalidWindow  = errors.New("invalid_window")
)
