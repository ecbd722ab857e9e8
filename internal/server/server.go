package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hotspotlabs/netpass/internal/config"
	"github.com/hotspotlabs/netpass/internal/customer"
	customerdomain "github.com/hotspotlabs/netpass/internal/customer/domain"
	"github.com/hotspotlabs/netpass/internal/gateway"
	gatewaydomain "github.com/hotspotlabs/netpass/internal/gateway/domain"
	"github.com/hotspotlabs/netpass/internal/ledger"
	ledgerdomain "github.com/hotspotlabs/netpass/internal/ledger/domain"
	obsmiddleware "github.com/hotspotlabs/netpass/internal/observability/logger"
	"github.com/hotspotlabs/netpass/internal/payment"
	paymentdomain "github.com/hotspotlabs/netpass/internal/payment/domain"
	paymentwebhook "github.com/hotspotlabs/netpass/internal/payment/webhook"
	"github.com/hotspotlabs/netpass/internal/subscription"
	subscriptiondomain "github.com/hotspotlabs/netpass/internal/subscription/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	customer.Module,
	ledger.Module,
	subscription.Module,
	gateway.Module,
	payment.Module,
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(s *Server) { s.RegisterRoutes() }),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine *gin.Engine
	log    *zap.Logger

	customerSvc     customerdomain.Service
	ledgerSvc       ledgerdomain.Service
	subscriptionSvc subscriptiondomain.Service
	gateway         gatewaydomain.Client
	reconciler      paymentdomain.Service
	webhookSvc      *paymentwebhook.Service
}

type ServerParams struct {
	fx.In

	Engine *gin.Engine
	Log    *zap.Logger

	CustomerSvc     customerdomain.Service
	LedgerSvc       ledgerdomain.Service
	SubscriptionSvc subscriptiondomain.Service
	Gateway         gatewaydomain.Client
	Reconciler      paymentdomain.Service
	WebhookSvc      *paymentwebhook.Service
}

func NewServer(p ServerParams) *Server {
	return &Server{
		engine:          p.Engine,
		log:             p.Log.Named("http"),
		customerSvc:     p.CustomerSvc,
		ledgerSvc:       p.LedgerSvc,
		subscriptionSvc: p.SubscriptionSvc,
		gateway:         p.Gateway,
		reconciler:      p.Reconciler,
		webhookSvc:      p.WebhookSvc,
	}
}

func (s *Server) RegisterRoutes() {
	api := s.engine.Group("/api/v1")
	{
		api.POST("/webhooks/paystack", s.HandlePaystackWebhook)

		api.POST("/payments/initialize", s.InitializePayment)
		api.GET("/payments/verify/:reference", s.VerifyPayment)
		api.POST("/payments/transfer", s.CreateTransfer)

		api.GET("/subscriptions/active", s.GetSubscriptionStatus)
		api.GET("/transactions", s.ListTransactions)
	}
}
