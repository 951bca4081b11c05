package notification

import (
	"context"
	"log/slog"
)

// LogGateway writes notifications to the log instead of delivering them.
type LogGateway struct {
	logger *slog.Logger
}

// NewLogGateway constructs a gateway used when no broker is configured.
func NewLogGateway(logger *slog.Logger) *LogGateway {
	return &LogGateway{logger: logger}
}

func (g *LogGateway) SendEmail(_ context.Context, template, recipient string, substitutions map[string]string) error {
	if recipient == "" {
		return ErrNoRecipient
	}
	g.logger.Info("email notification",
		slog.String("template", template),
		slog.String("recipient", recipient),
		slog.Any("substitutions", substitutions),
	)
	return nil
}

func (g *LogGateway) SendSMS(_ context.Context, message, phone string) error {
	if phone == "" {
		return ErrNoRecipient
	}
	g.logger.Info("sms notification", slog.String("phone", phone), slog.String("message", message))
	return nil
}
