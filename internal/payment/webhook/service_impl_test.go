package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/hotspotlabs/netpass/internal/config"
	paymentdomain "github.com/hotspotlabs/netpass/internal/payment/domain"
	"go.uber.org/zap"
)

type recordingReconciler struct {
	events []*paymentdomain.Event
}

func (r *recordingReconciler) ProcessEvent(_ context.Context, event *paymentdomain.Event) error {
	r.events = append(r.events, event)
	return nil
}

func TestParse(t *testing.T) {
	payload := []byte(`{
		"event": "charge.success",
		"data": {
			"reference": "ref_1",
			"amount": 11000,
			"paid_at": "2024-01-01T00:00:00Z",
			"customer": {"email": "ada@example.com"}
		}
	}`)

	event, err := Parse(payload)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if event.Kind != paymentdomain.EventKindChargeSucceeded {
		t.Fatalf("expected charge.success, got %s", event.Kind)
	}
	if event.Reference != "ref_1" || event.Email != "ada@example.com" || event.Amount != 11000 {
		t.Fatalf("unexpected event: %+v", event)
	}
	if want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC); !event.PaidAt.Equal(want) {
		t.Fatalf("expected paid_at %s, got %s", want, event.PaidAt)
	}
}

func TestParseRejectsMalformedBody(t *testing.T) {
	for name, payload := range map[string][]byte{
		"not json":      []byte("not-json"),
		"missing event": []byte(`{"data": {"reference": "ref_1"}}`),
		"blank event":   []byte(`{"event": "  "}`),
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse(payload); !errors.Is(err, paymentdomain.ErrInvalidPayload) {
				t.Fatalf("expected ErrInvalidPayload, got %v", err)
			}
		})
	}
}

func TestIngestWebhookSignature(t *testing.T) {
	secret := "sk_test_secret"
	payload := []byte(`{"event": "charge.failed", "data": {"reference": "ref_1"}}`)

	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(payload)
	signature := hex.EncodeToString(mac.Sum(nil))

	reconciler := &recordingReconciler{}
	svc := New(Params{
		Log:        zap.NewNop(),
		Cfg:        config.Config{PaystackSecretKey: secret},
		Reconciler: reconciler,
	})

	headers := http.Header{}
	headers.Set("X-Paystack-Signature", signature)
	if err := svc.IngestWebhook(context.Background(), payload, headers); err != nil {
		t.Fatalf("ingest with valid signature: %v", err)
	}
	if len(reconciler.events) != 1 {
		t.Fatalf("expected one event, got %d", len(reconciler.events))
	}

	headers.Set("X-Paystack-Signature", "deadbeef")
	err := svc.IngestWebhook(context.Background(), payload, headers)
	if !errors.Is(err, paymentdomain.ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}

	headers.Del("X-Paystack-Signature")
	err = svc.IngestWebhook(context.Background(), payload, headers)
	if !errors.Is(err, paymentdomain.ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature when header missing, got %v", err)
	}
}

func TestIngestWebhookSkipsSignatureWhenUnconfigured(t *testing.T) {
	reconciler := &recordingReconciler{}
	svc := New(Params{
		Log:        zap.NewNop(),
		Cfg:        config.Config{},
		Reconciler: reconciler,
	})

	payload := []byte(`{"event": "charge.failed", "data": {"reference": "ref_1"}}`)
	if err := svc.IngestWebhook(context.Background(), payload, http.Header{}); err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if len(reconciler.events) != 1 {
		t.Fatalf("expected one event, got %d", len(reconciler.events))
	}
}
