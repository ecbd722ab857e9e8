package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/hotspotlabs/netpass/internal/clock"
	"github.com/hotspotlabs/netpass/internal/config"
	"github.com/hotspotlabs/netpass/internal/migration"
	"github.com/hotspotlabs/netpass/internal/observability"
	"github.com/hotspotlabs/netpass/internal/server"
	"github.com/hotspotlabs/netpass/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(newSnowflakeNode),
		db.Module,
		clock.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}

func newSnowflakeNode() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
