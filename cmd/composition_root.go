package cmd

import (
	"log/slog"

	"deliveryquery/internal/core/application/usecases/queries"
	"deliveryquery/internal/core/ports"
)

type CompositionRoot struct {
	config Config
	source ports.DeliverySource
	logger *slog.Logger
}

// NewCompositionRoot wires query handlers over source. A nil logger falls back to slog.Default().
func NewCompositionRoot(config Config, source ports.DeliverySource, logger *slog.Logger) CompositionRoot {
	if logger == nil {
		logger = slog.Default()
	}

	return CompositionRoot{
		config: config,
		source: source,
		logger: logger,
	}
}

func (c *CompositionRoot) CreateGetClientDeliveriesQueryHandler() queries.GetClientDeliveriesQueryHandler {
	return queries.NewGetClientDeliveriesQueryHandler(c.source, c.logger)
}

func (c *CompositionRoot) CreateGetDeliveriesByCityAndTypeQueryHandler() queries.GetDeliveriesByCityAndTypeQueryHandler {
	return queries.NewGetDeliveriesByCityAndTypeQueryHandler(c.source, c.logger)
}

func (c *CompositionRoot) CreateGetDeliveriesPageQueryHandler() queries.GetDeliveriesPageQueryHandler {
	return queries.NewGetDeliveriesPageQueryHandler(c.source, c.config.MaxCountOnPage, c.logger)
}

func (c *CompositionRoot) CreateGetDeliveryStatisticsQueryHandler() queries.GetDeliveryStatisticsQueryHandler {
	return queries.NewGetDeliveryStatisticsQueryHandler(c.source, c.logger)
}
