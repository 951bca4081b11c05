package notification

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/autoservice/internal/config"
)

// Module wires the notification gateway and templates.
var Module = fx.Options(
	fx.Provide(
		newTemplates,
		newGateway,
	),
)

var dialAMQP = DialAMQP

func newTemplates(cfg *config.Config) (*Templates, error) {
	return LoadTemplates(cfg.TemplatesFile)
}

type gatewayParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

func newGateway(p gatewayParams) (Gateway, error) {
	if p.Config.AMQPURL == "" {
		p.Logger.Info("notification broker not configured, notices are logged only")
		return NewLogGateway(p.Logger), nil
	}

	gw, err := dialAMQP(p.Config.AMQPURL, p.Config.NotificationExchange, p.Logger)
	if err != nil {
		return nil, fmt.Errorf("connect notification broker: %w", err)
	}
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return gw.Close()
		},
	})
	return gw, nil
}
