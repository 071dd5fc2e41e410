//go:build wireinject
// +build wireinject

package main

import (
	"shiftdesk/config"
	"shiftdesk/internal/command"
	"shiftdesk/internal/cron"
	"shiftdesk/internal/database"
	"shiftdesk/internal/handler"
	"shiftdesk/internal/middleware"
	"shiftdesk/internal/router"
	"shiftdesk/internal/service"
	"shiftdesk/internal/telemetry"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// wireApp init application.
func wireApp(*config.Configuration, *zap.Logger) (*App, func(), error) {
	panic(
		wire.Build(
			database.ProviderSet,
			service.ProviderSet,
			handler.ProviderSet,
			middleware.ProviderSet,
			router.ProviderSet,
			cron.ProviderSet,
			newHttpServer,
			telemetry.ProviderSet,
			newApp,
		),
	)
}

// wireCommand init application.
func wireCommand(*config.Configuration, *zap.Logger) (*command.Command, func(), error) {
	panic(
		wire.Build(
			database.ProviderSet,
			telemetry.ProviderSet,
			command.ProviderSet,
		),
	)
}
