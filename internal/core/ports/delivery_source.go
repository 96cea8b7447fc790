package ports

import (
	"context"

	"deliveryquery/internal/core/domain/model/delivery"
)

// DeliverySource supplies the deliveries that queries run over.
// Implementations belong to the caller (fixtures, importers, storage adapters).
type DeliverySource interface {
	// GetAll returns every known delivery. The returned slice and its elements
	// are treated as read-only by the query layer.
	GetAll(ctx context.Context) ([]*delivery.Delivery, error)
}
