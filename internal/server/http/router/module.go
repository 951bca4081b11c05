package router

import (
	"go.uber.org/fx"

	"github.com/polkiloo/autoservice/internal/app"
	"github.com/polkiloo/autoservice/internal/server/http/handlers"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Options(
	fx.Provide(func(f *app.WorkshopFacade) handlers.WorkshopFacade { return f }),
	fx.Provide(Setup),
)
