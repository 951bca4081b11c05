package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/autoservice/internal/config"
	"github.com/polkiloo/autoservice/internal/notification"
	"github.com/polkiloo/autoservice/internal/usecase"
	"github.com/polkiloo/autoservice/internal/worker"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewWorkshopFacade,
		newPolicy,
		newHTTPServer,
		newDispatcher,
		func(d *worker.Dispatcher) usecase.Notifier { return d },
	),
	fx.Invoke(registerLifecycle),
)

func newPolicy(cfg *config.Config) usecase.Policy {
	return usecase.Policy{
		MonthlyOrderCap:      cfg.MonthlyOrderCap,
		VerifyEstimateTotals: cfg.VerifyEstimateTotals,
	}
}

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type dispatcherParams struct {
	fx.In

	Gateway   notification.Gateway
	Templates *notification.Templates
	Config    *config.Config
	Logger    *slog.Logger
}

func newDispatcher(p dispatcherParams) *worker.Dispatcher {
	return worker.NewDispatcher(
		p.Gateway,
		p.Templates,
		p.Config.NotifyWorkers,
		p.Config.NotifyQueueSize,
		p.Config.NotifyTimeout,
		p.Logger,
	)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Dispatcher *worker.Dispatcher
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting autoservice",
				slog.String("addr", p.Server.Addr),
				slog.Int("monthly_order_cap", p.Config.MonthlyOrderCap),
			)
			p.Dispatcher.Start(context.WithoutCancel(ctx))
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			err := p.Server.Shutdown(shutdownCtx)
			if err != nil && errors.Is(err, http.ErrServerClosed) {
				err = nil
			}
			if stopErr := p.Dispatcher.Stop(shutdownCtx); stopErr != nil {
				err = errors.Join(err, fmt.Errorf("drain notifications: %w", stopErr))
			}
			if err != nil {
				return err
			}
			p.Logger.Info("autoservice stopped")
			return nil
		},
	})
}
