package queries

import (
	"context"
	"log/slog"

	"deliveryquery/internal/core/domain/services"
	"deliveryquery/internal/core/ports"
)

// GetDeliveryStatisticsQueryHandler aggregates counts, averages and the processing queue.
type GetDeliveryStatisticsQueryHandler struct {
	source  ports.DeliverySource
	service services.DeliveryQueryService
	logger  *slog.Logger
}

// NewGetDeliveryStatisticsQueryHandler creates a handler reading deliveries from source.
func NewGetDeliveryStatisticsQueryHandler(
	source ports.DeliverySource,
	logger *slog.Logger,
) GetDeliveryStatisticsQueryHandler {
	return GetDeliveryStatisticsQueryHandler{
		source:  source,
		service: services.NewDeliveryQueryService(),
		logger:  componentLogger(logger, "get_delivery_statistics_query_handler"),
	}
}

// Handle computes the statistics over every delivery of the source.
func (h GetDeliveryStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryStatisticsQuery,
) (GetDeliveryStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryStatisticsQueryResponse{}, err
	}

	deliveries, err := loadDeliveries(ctx, h.source, h.logger)
	if err != nil {
		return GetDeliveryStatisticsQueryResponse{}, err
	}

	countsByStatus := h.service.CountsByDeliveryStatus(deliveries)
	total := 0
	for _, n := range countsByStatus {
		total += n
	}

	response := GetDeliveryStatisticsQueryResponse{
		Total:          total,
		Paid:           len(h.service.Paid(deliveries)),
		UniqCargoTypes: h.service.CountUniqCargoTypes(deliveries),
		CountsByStatus: countsByStatus,
		AverageGaps:    h.service.AverageTravelTimePerDirection(deliveries),
		Queue:          h.service.OrderByStatusThenByStartLoading(h.service.NotFinished(deliveries)),
	}

	h.logger.InfoContext(ctx, "Delivery statistics computed",
		"total", response.Total,
		"paid", response.Paid,
		"directions", len(response.AverageGaps),
		"queue", len(response.Queue),
	)

	return response, nil
}
