package usecase

import (
	"fmt"
	"log/slog"

	domainErrors "github.com/polkiloo/autoservice/internal/domain/errors"
)

// storeError passes domain errors through and maps anything else to ErrStore
// after logging it with the subsystem and operation.
func storeError(logger *slog.Logger, subsystem, operation string, err error) error {
	if err == nil {
		return nil
	}
	if domainErrors.KindOf(err) != domainErrors.KindUnknown {
		return err
	}
	logger.Error("store operation failed",
		slog.String("subsystem", subsystem),
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	)
	return fmt.Errorf("%s %s: %w", subsystem, operation, domainErrors.ErrStore)
}
