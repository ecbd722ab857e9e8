package migration

import (
	"github.com/hotspotlabs/netpass/internal/config"
	customerdomain "github.com/hotspotlabs/netpass/internal/customer/domain"
	ledgerdomain "github.com/hotspotlabs/netpass/internal/ledger/domain"
	paymentdomain "github.com/hotspotlabs/netpass/internal/payment/domain"
	subscriptiondomain "github.com/hotspotlabs/netpass/internal/subscription/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if !cfg.RunMigrations {
			return nil
		}

		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			return RunMigrations(sqlDB)
		}

		// Local sqlite targets derive the schema from the models instead.
		return conn.AutoMigrate(
			&customerdomain.Customer{},
			&ledgerdomain.Transaction{},
			&subscriptiondomain.ActiveSubscription{},
			&paymentdomain.EventRecord{},
		)
	}),
)
