package queries

import (
	"context"
	"fmt"
	"log/slog"

	"deliveryquery/internal/core/domain/model/delivery"
	"deliveryquery/internal/core/ports"
)

// loadDeliveries reads all deliveries from source, logging failures.
func loadDeliveries(ctx context.Context, source ports.DeliverySource, logger *slog.Logger) ([]*delivery.Delivery, error) {
	deliveries, err := source.GetAll(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load deliveries", "error", err)
		return nil, fmt.Errorf("failed to load deliveries: %w", err)
	}
	return deliveries, nil
}

// componentLogger scopes logger to a handler. A nil logger falls back to slog.Default().
func componentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With("component", component)
}
