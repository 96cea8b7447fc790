package queries

import (
	"context"
	"log/slog"
	"math"

	"deliveryquery/internal/core/domain/model/delivery"
	"deliveryquery/internal/core/domain/services"
	"deliveryquery/internal/core/ports"
	"deliveryquery/internal/pkg/errs"
)

// GetDeliveriesPageQueryHandler pages through deliveries ordered by start of loading.
type GetDeliveriesPageQueryHandler struct {
	source         ports.DeliverySource
	maxCountOnPage int
	logger         *slog.Logger
}

// NewGetDeliveriesPageQueryHandler creates a handler that rejects pages larger than
// maxCountOnPage. A non-positive maxCountOnPage disables the limit.
func NewGetDeliveriesPageQueryHandler(
	source ports.DeliverySource,
	maxCountOnPage int,
	logger *slog.Logger,
) GetDeliveriesPageQueryHandler {
	if maxCountOnPage <= 0 {
		maxCountOnPage = math.MaxInt
	}

	return GetDeliveriesPageQueryHandler{
		source:         source,
		maxCountOnPage: maxCountOnPage,
		logger:         componentLogger(logger, "get_deliveries_page_query_handler"),
	}
}

// Handle returns the requested page. Deliveries with the same start of loading keep
// their source order.
func (h GetDeliveriesPageQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveriesPageQuery,
) ([]*delivery.Delivery, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	page := query.Page()
	if page.CountOnPage > h.maxCountOnPage {
		return nil, errs.NewValueIsOutOfRangeError("countOnPage", page.CountOnPage, 1, h.maxCountOnPage)
	}

	deliveries, err := loadDeliveries(ctx, h.source, h.logger)
	if err != nil {
		return nil, err
	}

	result, err := services.PagingFunc(deliveries, compareStartLoading, pageFilter(query), page)
	if err != nil {
		return nil, err
	}

	h.logger.DebugContext(ctx, "Deliveries page read",
		"page_number", page.PageNumber,
		"count_on_page", page.CountOnPage,
		"count", len(result),
	)

	return result, nil
}

func compareStartLoading(a, b *delivery.Delivery) int {
	return a.Schedule().StartTime().Compare(b.Schedule().StartTime())
}

func pageFilter(query GetDeliveriesPageQuery) func(*delivery.Delivery) bool {
	return func(d *delivery.Delivery) bool {
		if d == nil {
			return false
		}
		if query.OnlyPaid() && !d.IsPaid() {
			return false
		}
		if query.OnlyNotFinished() && d.IsFinished() {
			return false
		}
		return true
	}
}
