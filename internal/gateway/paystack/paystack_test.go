package paystack

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hotspotlabs/netpass/internal/gateway/domain"
	"github.com/hotspotlabs/netpass/internal/observability/metrics"
	"go.uber.org/zap"
)

func newTestClient(baseURL string) *Client {
	return New(Config{
		BaseURL:   baseURL,
		SecretKey: "sk_test_123",
	}, zap.NewNop(), metrics.NewUnregistered())
}

func TestInitialize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transaction/initialize" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk_test_123" {
			t.Fatalf("unexpected auth header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": true,
			"message": "Authorization URL created",
			"data": {
				"authorization_url": "https://checkout.paystack.com/abc123",
				"access_code": "abc123",
				"reference": "ref_1"
			}
		}`))
	}))
	defer srv.Close()

	auth, err := newTestClient(srv.URL).Initialize(context.Background(), domain.InitializeRequest{
		Email:  "ada@example.com",
		Amount: 500,
	})
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if auth.Reference != "ref_1" {
		t.Fatalf("expected reference ref_1, got %s", auth.Reference)
	}
	if auth.AuthorizationURL == "" {
		t.Fatalf("expected authorization url")
	}
}

func TestVerifyParsesRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transaction/verify/ref_1" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": true,
			"message": "Verification successful",
			"data": {
				"reference": "ref_1",
				"status": "success",
				"amount": 11000,
				"currency": "NGN",
				"channel": "card",
				"paid_at": "2024-01-01T00:00:00.000Z",
				"customer": {"email": "ada@example.com"}
			}
		}`))
	}))
	defer srv.Close()

	record, err := newTestClient(srv.URL).Verify(context.Background(), "ref_1")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !record.Succeeded() {
		t.Fatalf("expected success status, got %s", record.Status)
	}
	if record.CustomerEmail != "ada@example.com" {
		t.Fatalf("expected customer email, got %s", record.CustomerEmail)
	}
	if record.PaidAt.IsZero() {
		t.Fatalf("expected paid_at to be parsed")
	}
}

func TestGatewayErrorCarriesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status": false, "message": "Invalid key"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Verify(context.Background(), "ref_1")
	gerr, ok := domain.AsGatewayError(err)
	if !ok {
		t.Fatalf("expected GatewayError, got %v", err)
	}
	if gerr.Message != "Invalid key" {
		t.Fatalf("expected gateway message, got %q", gerr.Message)
	}
	if gerr.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", gerr.StatusCode)
	}
}

func TestTransportFailureIsGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	_, err := newTestClient(srv.URL).Verify(context.Background(), "ref_1")
	gerr, ok := domain.AsGatewayError(err)
	if !ok {
		t.Fatalf("expected GatewayError, got %v", err)
	}
	if gerr.StatusCode != 0 {
		t.Fatalf("expected no http status on transport failure, got %d", gerr.StatusCode)
	}
}
