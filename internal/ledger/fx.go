package ledger

import (
	"github.com/hotspotlabs/netpass/internal/ledger/repository"
	"github.com/hotspotlabs/netpass/internal/ledger/service"
	"go.uber.org/fx"
)

var Module = fx.Module("ledger.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
