// Package domain defines the outbound payment-gateway contract. The gateway
// is the system's only external trust boundary for money movement and is
// treated as a possibly-slow, possibly-duplicating collaborator.
package domain

import (
	"context"
	"errors"
	"fmt"
	"time"
)

type InitializeRequest struct {
	Email  string
	Amount int64
}

// Authorization points the portal user at the gateway's hosted checkout.
type Authorization struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// TransactionRecord is the gateway's view of a charge.
type TransactionRecord struct {
	Reference     string    `json:"reference"`
	Status        string    `json:"status"`
	Amount        int64     `json:"amount"`
	Currency      string    `json:"currency"`
	Channel       string    `json:"channel"`
	PaidAt        time.Time `json:"paid_at"`
	CustomerEmail string    `json:"customer_email"`
}

func (r TransactionRecord) Succeeded() bool {
	return r.Status == "success"
}

type TransferRequest struct {
	Recipient string
	Amount    int64
	Currency  string
	Reason    string
}

type TransferRecord struct {
	TransferCode string `json:"transfer_code"`
	Reference    string `json:"reference"`
	Status       string `json:"status"`
	Amount       int64  `json:"amount"`
}

// Client is the narrow outbound contract. Calls are bounded by the
// underlying HTTP timeout and are never retried here; retrying is the
// caller's decision.
type Client interface {
	Initialize(ctx context.Context, req InitializeRequest) (Authorization, error)
	Verify(ctx context.Context, reference string) (TransactionRecord, error)
	Transfer(ctx context.Context, req TransferRequest) (TransferRecord, error)
}

// GatewayError is the single error type surfaced for any non-2xx response or
// transport failure, carrying the gateway's own message when one was
// returned.
type GatewayError struct {
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("gateway: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("gateway: %s", e.Message)
}

// AsGatewayError unwraps err into a *GatewayError when possible.
func AsGatewayError(err error) (*GatewayError, bool) {
	var gerr *GatewayError
	if errors.As(err, &gerr) {
		return gerr, true
	}
	return nil, false
}
