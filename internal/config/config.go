package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress           string
	DatabaseURI          string
	AMQPURL              string
	NotificationExchange string
	MonthlyOrderCap      int
	VerifyEstimateTotals bool
	NotifyWorkers        int
	NotifyQueueSize      int
	NotifyTimeout        time.Duration
	TemplatesFile        string
	ShutdownTimeout      time.Duration
	LogLevel             string
}

const (
	defaultRunAddress           = ":8080"
	defaultNotificationExchange = "notifications"
	defaultMonthlyOrderCap      = 300
	defaultNotifyWorkers        = 2
	defaultNotifyQueueSize      = 128
	defaultNotifyTimeout        = 10 * time.Second
	defaultShutdownTimeout      = 10 * time.Second
	defaultLogLevel             = "info"
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:           getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:          getString(lookup, "DATABASE_URI", ""),
		AMQPURL:              getString(lookup, "AMQP_URL", ""),
		NotificationExchange: getString(lookup, "NOTIFICATION_EXCHANGE", defaultNotificationExchange),
		MonthlyOrderCap:      getInt(lookup, "MONTHLY_ORDER_CAP", defaultMonthlyOrderCap),
		VerifyEstimateTotals: getBool(lookup, "VERIFY_ESTIMATE_TOTALS", false),
		NotifyWorkers:        getInt(lookup, "NOTIFY_WORKERS", defaultNotifyWorkers),
		NotifyQueueSize:      getInt(lookup, "NOTIFY_QUEUE_SIZE", defaultNotifyQueueSize),
		NotifyTimeout:        getDuration(lookup, "NOTIFY_TIMEOUT", defaultNotifyTimeout),
		TemplatesFile:        getString(lookup, "TEMPLATES_FILE", ""),
		ShutdownTimeout:      getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		LogLevel:             getString(lookup, "LOG_LEVEL", defaultLogLevel),
	}

	fs := flag.NewFlagSet("autoservice", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		notifyTimeoutStr   = cfg.NotifyTimeout.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.AMQPURL, "amqp", cfg.AMQPURL, "RabbitMQ URL for notification delivery")
	fs.StringVar(&cfg.NotificationExchange, "exchange", cfg.NotificationExchange, "RabbitMQ exchange for notifications")
	fs.IntVar(&cfg.MonthlyOrderCap, "order-cap", cfg.MonthlyOrderCap, "Maximum orders started per calendar month, 0 disables")
	fs.BoolVar(&cfg.VerifyEstimateTotals, "verify-totals", cfg.VerifyEstimateTotals, "Reject estimate totals that differ from line items")
	fs.IntVar(&cfg.NotifyWorkers, "notify-workers", cfg.NotifyWorkers, "Number of notification workers")
	fs.IntVar(&cfg.NotifyQueueSize, "notify-queue", cfg.NotifyQueueSize, "Notification queue capacity")
	fs.StringVar(&notifyTimeoutStr, "notify-timeout", notifyTimeoutStr, "Per-notice delivery timeout")
	fs.StringVar(&cfg.TemplatesFile, "templates", cfg.TemplatesFile, "YAML notification templates file")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.NotifyTimeout, err = time.ParseDuration(notifyTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid notify timeout: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if dsnFile, ok := lookup("DATABASE_URI_FILE"); ok && dsnFile != "" {
		content, err := os.ReadFile(dsnFile)
		if err != nil {
			return nil, fmt.Errorf("read database uri file: %w", err)
		}
		cfg.DatabaseURI = strings.TrimSpace(string(content))
	}

	if cfg.MonthlyOrderCap < 0 {
		cfg.MonthlyOrderCap = 0
	}

	if cfg.NotifyWorkers <= 0 {
		cfg.NotifyWorkers = defaultNotifyWorkers
	}

	if cfg.NotifyQueueSize <= 0 {
		cfg.NotifyQueueSize = defaultNotifyQueueSize
	}

	if cfg.NotifyTimeout <= 0 {
		cfg.NotifyTimeout = defaultNotifyTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
