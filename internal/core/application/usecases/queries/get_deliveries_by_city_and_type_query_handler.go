package queries

import (
	"context"
	"log/slog"

	"deliveryquery/internal/core/domain/model/delivery"
	"deliveryquery/internal/core/domain/services"
	"deliveryquery/internal/core/ports"
)

// GetDeliveriesByCityAndTypeQueryHandler returns the first deliveries from a city with a type.
type GetDeliveriesByCityAndTypeQueryHandler struct {
	source  ports.DeliverySource
	service services.DeliveryQueryService
	logger  *slog.Logger
}

// NewGetDeliveriesByCityAndTypeQueryHandler creates a handler reading deliveries from source.
func NewGetDeliveriesByCityAndTypeQueryHandler(
	source ports.DeliverySource,
	logger *slog.Logger,
) GetDeliveriesByCityAndTypeQueryHandler {
	return GetDeliveriesByCityAndTypeQueryHandler{
		source:  source,
		service: services.NewDeliveryQueryService(),
		logger:  componentLogger(logger, "get_deliveries_by_city_and_type_query_handler"),
	}
}

// Handle returns at most services.CityAndTypeLimit matching deliveries in source order.
func (h GetDeliveriesByCityAndTypeQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveriesByCityAndTypeQuery,
) ([]*delivery.Delivery, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries, err := loadDeliveries(ctx, h.source, h.logger)
	if err != nil {
		return nil, err
	}

	result := h.service.DeliveriesByCityAndType(deliveries, query.CityName(), query.DeliveryType())
	h.logger.DebugContext(ctx, "Deliveries by city and type selected",
		"city", query.CityName(),
		"type", query.DeliveryType().String(),
		"count", len(result),
	)

	return result, nil
}
