package di

import (
	"github.com/hoseki-store/joyeria/internal/app"
	"github.com/hoseki-store/joyeria/internal/config"
	"github.com/hoseki-store/joyeria/internal/events"
	"github.com/hoseki-store/joyeria/internal/logger"
	"github.com/hoseki-store/joyeria/internal/metrics"
	"github.com/hoseki-store/joyeria/internal/pkg/auth"
	"github.com/hoseki-store/joyeria/internal/server/http/router"
	"github.com/hoseki-store/joyeria/internal/storage/postgres"
	"github.com/hoseki-store/joyeria/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		events.Module,
		metrics.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
