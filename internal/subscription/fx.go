package subscription

import (
	"github.com/hotspotlabs/netpass/internal/subscription/repository"
	"github.com/hotspotlabs/netpass/internal/subscription/service"
	"go.uber.org/fx"
)

var Module = fx.Module("subscription.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
