package payment

import (
	"github.com/hotspotlabs/netpass/internal/payment/repository"
	"github.com/hotspotlabs/netpass/internal/payment/service"
	"github.com/hotspotlabs/netpass/internal/payment/webhook"
	"github.com/hotspotlabs/netpass/internal/pricetier"
	"go.uber.org/fx"
)

var Module = fx.Module("payment.service",
	fx.Provide(func() pricetier.Table { return pricetier.Default }),
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
	fx.Provide(webhook.New),
)
