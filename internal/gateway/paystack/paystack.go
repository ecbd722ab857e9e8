package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hotspotlabs/netpass/internal/gateway/domain"
	"github.com/hotspotlabs/netpass/internal/observability/metrics"
	"go.uber.org/zap"
)

const DefaultBaseURL = "https://api.paystack.co"

type Config struct {
	BaseURL   string
	SecretKey string
	Timeout   time.Duration
}

type Client struct {
	baseURL string
	secret  string
	http    *http.Client
	log     *zap.Logger
	metrics *metrics.Metrics
}

func New(cfg Config, log *zap.Logger, m *metrics.Metrics) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		secret:  cfg.SecretKey,
		http:    &http.Client{Timeout: timeout},
		log:     log.Named("gateway.paystack"),
		metrics: m,
	}
}

// envelope is Paystack's uniform response wrapper.
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) Initialize(ctx context.Context, req domain.InitializeRequest) (domain.Authorization, error) {
	body := map[string]any{
		"email":  req.Email,
		"amount": req.Amount,
	}

	var data struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	}
	if err := c.call(ctx, "initialize", http.MethodPost, "/transaction/initialize", body, &data); err != nil {
		return domain.Authorization{}, err
	}

	return domain.Authorization{
		AuthorizationURL: data.AuthorizationURL,
		AccessCode:       data.AccessCode,
		Reference:        data.Reference,
	}, nil
}

func (c *Client) Verify(ctx context.Context, reference string) (domain.TransactionRecord, error) {
	var data struct {
		Reference string `json:"reference"`
		Status    string `json:"status"`
		Amount    int64  `json:"amount"`
		Currency  string `json:"currency"`
		Channel   string `json:"channel"`
		PaidAt    string `json:"paid_at"`
		Customer  struct {
			Email string `json:"email"`
		} `json:"customer"`
	}
	path := "/transaction/verify/" + url.PathEscape(reference)
	if err := c.call(ctx, "verify", http.MethodGet, path, nil, &data); err != nil {
		return domain.TransactionRecord{}, err
	}

	record := domain.TransactionRecord{
		Reference:     data.Reference,
		Status:        data.Status,
		Amount:        data.Amount,
		Currency:      data.Currency,
		Channel:       data.Channel,
		CustomerEmail: data.Customer.Email,
	}
	if paidAt, err := time.Parse(time.RFC3339, data.PaidAt); err == nil {
		record.PaidAt = paidAt.UTC()
	}
	return record, nil
}

func (c *Client) Transfer(ctx context.Context, req domain.TransferRequest) (domain.TransferRecord, error) {
	body := map[string]any{
		"source":    "balance",
		"recipient": req.Recipient,
		"amount":    req.Amount,
		"currency":  req.Currency,
		"reason":    req.Reason,
	}

	var data domain.TransferRecord
	if err := c.call(ctx, "transfer", http.MethodPost, "/transfer", body, &data); err != nil {
		return domain.TransferRecord{}, err
	}
	return data, nil
}

func (c *Client) call(ctx context.Context, operation, method, path string, body any, out any) error {
	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &domain.GatewayError{Message: fmt.Sprintf("encode request: %v", err)}
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return &domain.GatewayError{Message: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Authorization", "Bearer "+c.secret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.RecordGatewayRequest(operation, "transport_error")
		c.log.Warn("gateway call failed",
			zap.String("operation", operation),
			zap.Error(err),
		)
		return &domain.GatewayError{Message: "gateway unreachable"}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		c.metrics.RecordGatewayRequest(operation, "transport_error")
		return &domain.GatewayError{StatusCode: resp.StatusCode, Message: "read response"}
	}

	var env envelope
	if unmarshalErr := json.Unmarshal(raw, &env); unmarshalErr != nil {
		env = envelope{}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Status {
		message := strings.TrimSpace(env.Message)
		if message == "" {
			message = "gateway request failed"
		}
		c.metrics.RecordGatewayRequest(operation, "error")
		c.log.Warn("gateway rejected request",
			zap.String("operation", operation),
			zap.Int("status", resp.StatusCode),
			zap.String("message", message),
		)
		return &domain.GatewayError{StatusCode: resp.StatusCode, Message: message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			c.metrics.RecordGatewayRequest(operation, "decode_error")
			return &domain.GatewayError{StatusCode: resp.StatusCode, Message: "decode response"}
		}
	}

	c.metrics.RecordGatewayRequest(operation, "ok")
	return nil
}
