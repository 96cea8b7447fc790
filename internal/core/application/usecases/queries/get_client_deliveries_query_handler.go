package queries

import (
	"context"
	"log/slog"

	"deliveryquery/internal/core/domain/model/delivery"
	"deliveryquery/internal/core/domain/services"
	"deliveryquery/internal/core/ports"
)

// GetClientDeliveriesQueryHandler projects the deliveries of a client to short info.
type GetClientDeliveriesQueryHandler struct {
	source  ports.DeliverySource
	service services.DeliveryQueryService
	logger  *slog.Logger
}

// NewGetClientDeliveriesQueryHandler creates a handler reading deliveries from source.
func NewGetClientDeliveriesQueryHandler(
	source ports.DeliverySource,
	logger *slog.Logger,
) GetClientDeliveriesQueryHandler {
	return GetClientDeliveriesQueryHandler{
		source:  source,
		service: services.NewDeliveryQueryService(),
		logger:  componentLogger(logger, "get_client_deliveries_query_handler"),
	}
}

// Handle returns the short info of every delivery of the query's client, in source order.
func (h GetClientDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetClientDeliveriesQuery,
) ([]delivery.ShortInfo, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries, err := loadDeliveries(ctx, h.source, h.logger)
	if err != nil {
		return nil, err
	}

	infos := h.service.DeliveryInfosByClient(deliveries, query.ClientID())
	h.logger.DebugContext(ctx, "Client deliveries listed",
		"client_id", query.ClientID(),
		"count", len(infos),
	)

	return infos, nil
}
