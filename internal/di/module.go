package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/autoservice/internal/app"
	"github.com/polkiloo/autoservice/internal/config"
	"github.com/polkiloo/autoservice/internal/logger"
	"github.com/polkiloo/autoservice/internal/notification"
	"github.com/polkiloo/autoservice/internal/server/http/router"
	"github.com/polkiloo/autoservice/internal/storage/postgres"
	"github.com/polkiloo/autoservice/internal/usecase"
)

// Module composes the full application graph. Extra options are applied last
// so callers can replace any provided value.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		notification.Module,
		usecase.Module,
		fx.Provide(func(s *postgres.Storage) app.HealthChecker { return s }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
