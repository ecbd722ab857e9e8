package gateway

import (
	"time"

	"github.com/hotspotlabs/netpass/internal/config"
	"github.com/hotspotlabs/netpass/internal/gateway/domain"
	"github.com/hotspotlabs/netpass/internal/gateway/paystack"
	"github.com/hotspotlabs/netpass/internal/observability/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("gateway",
	fx.Provide(func(cfg config.Config, log *zap.Logger, m *metrics.Metrics) domain.Client {
		return paystack.New(paystack.Config{
			BaseURL:   cfg.PaystackBaseURL,
			SecretKey: cfg.PaystackSecretKey,
			Timeout:   time.Duration(cfg.GatewayTimeoutSeconds) * time.Second,
		}, log, m)
	}),
)
