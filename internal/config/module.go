package config

import (
	"log/slog"

	"go.uber.org/fx"
)

// Module exposes configuration loader for fx graphs and logs the effective settings.
var Module = fx.Options(
	fx.Provide(Load),
	fx.Invoke(logEffective),
)

// logEffective reports settings that change behaviour. Connection strings are omitted.
func logEffective(cfg *Config, logger *slog.Logger) {
	logger.Info("configuration loaded",
		slog.String("run_address", cfg.RunAddress),
		slog.Bool("broker_configured", cfg.AMQPURL != ""),
		slog.Int("monthly_order_cap", cfg.MonthlyOrderCap),
		slog.Bool("verify_estimate_totals", cfg.VerifyEstimateTotals),
		slog.Int("notify_workers", cfg.NotifyWorkers),
	)
}
