package customer

import (
	"github.com/hotspotlabs/netpass/internal/customer/repository"
	"github.com/hotspotlabs/netpass/internal/customer/service"
	"go.uber.org/fx"
)

var Module = fx.Module("customer.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
