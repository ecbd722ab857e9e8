// Package webhook turns a raw gateway delivery into a canonical payment
// event: it checks the delivery signature when a secret is configured,
// parses the envelope, and hands the event to the reconciler.
package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/hotspotlabs/netpass/internal/config"
	paymentdomain "github.com/hotspotlabs/netpass/internal/payment/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const signatureHeader = "X-Paystack-Signature"

type Params struct {
	fx.In

	Log        *zap.Logger
	Cfg        config.Config
	Reconciler paymentdomain.Service
}

type Service struct {
	log        *zap.Logger
	secret     string
	reconciler paymentdomain.Service
}

func New(p Params) *Service {
	return &Service{
		log:        p.Log.Named("payment.webhook"),
		secret:     p.Cfg.PaystackSecretKey,
		reconciler: p.Reconciler,
	}
}

// IngestWebhook verifies and parses one delivery, then applies it. Only a
// bad signature or an unparseable body fail before the reconciler runs.
func (s *Service) IngestWebhook(ctx context.Context, payload []byte, headers http.Header) error {
	if s.secret != "" {
		if err := s.verifySignature(payload, headers); err != nil {
			return err
		}
	}

	event, err := Parse(payload)
	if err != nil {
		return err
	}

	return s.reconciler.ProcessEvent(ctx, event)
}

// verifySignature checks the HMAC-SHA512 hex digest Paystack sends with
// every delivery.
func (s *Service) verifySignature(payload []byte, headers http.Header) error {
	provided := strings.TrimSpace(headers.Get(signatureHeader))
	if provided == "" {
		return paymentdomain.ErrInvalidSignature
	}

	mac := hmac.New(sha512.New, []byte(s.secret))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(strings.ToLower(provided))) {
		return paymentdomain.ErrInvalidSignature
	}
	return nil
}

type webhookBody struct {
	Event string `json:"event"`
	Data  struct {
		Reference string `json:"reference"`
		Amount    int64  `json:"amount"`
		PaidAt    string `json:"paid_at"`
		PaidAtAlt string `json:"paidAt"`
		CreatedAt string `json:"created_at"`
		Customer  struct {
			Email string `json:"email"`
		} `json:"customer"`
	} `json:"data"`
}

// Parse extracts the canonical event from a gateway delivery. A body that
// is not JSON or carries no event kind is malformed and is the only case
// the webhook endpoint rejects with a non-2xx response.
func Parse(payload []byte) (*paymentdomain.Event, error) {
	var body webhookBody
	if err := json.Unmarshal(payload, &body); err != nil {
		return nil, paymentdomain.ErrInvalidPayload
	}
	if strings.TrimSpace(body.Event) == "" {
		return nil, paymentdomain.ErrInvalidPayload
	}

	event := &paymentdomain.Event{
		Provider:   "paystack",
		Reference:  strings.TrimSpace(body.Data.Reference),
		Kind:       strings.TrimSpace(body.Event),
		Email:      strings.TrimSpace(body.Data.Customer.Email),
		Amount:     body.Data.Amount,
		RawPayload: payload,
	}

	for _, raw := range []string{body.Data.PaidAt, body.Data.PaidAtAlt, body.Data.CreatedAt} {
		if raw == "" {
			continue
		}
		if paidAt, err := time.Parse(time.RFC3339, raw); err == nil {
			event.PaidAt = paidAt.UTC()
			break
		}
	}

	return event, nil
}
