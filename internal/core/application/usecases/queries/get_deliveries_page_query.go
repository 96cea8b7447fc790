package queries

import (
	"errors"

	"deliveryquery/internal/core/domain/services"
	"deliveryquery/internal/pkg/guard"
)

var (
	ErrGetDeliveriesPageQueryIsNotConstructed = errors.New(
		"GetDeliveriesPageQuery must be created via NewGetDeliveriesPageQuery constructor",
	)
)

// GetDeliveriesPageQuery reads one page of deliveries ordered by the start of loading.
// The paid and not-finished filters are optional and combine with AND.
//
// Example:
//
//	page, _ := services.NewPage(50, 2)
//	query, err := NewGetDeliveriesPageQuery(page, true, true)
//	if err != nil {
//	    return err
//	}
//	deliveries, err := handler.Handle(ctx, query) // paid, still processed, 51st..100th
type GetDeliveriesPageQuery struct {
	page            services.Page
	onlyPaid        bool
	onlyNotFinished bool

	guard guard.ConstructorGuard
}

// NewGetDeliveriesPageQuery creates the query. Returns an error if page is invalid.
func NewGetDeliveriesPageQuery(page services.Page, onlyPaid, onlyNotFinished bool) (GetDeliveriesPageQuery, error) {
	if err := page.Validate(); err != nil {
		return GetDeliveriesPageQuery{}, err
	}

	return GetDeliveriesPageQuery{
		page:            page,
		onlyPaid:        onlyPaid,
		onlyNotFinished: onlyNotFinished,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveriesPageQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveriesPageQueryIsNotConstructed)
}

// Page returns the requested page.
func (q GetDeliveriesPageQuery) Page() services.Page {
	return q.page
}

// OnlyPaid reports whether unpaid deliveries are excluded.
func (q GetDeliveriesPageQuery) OnlyPaid() bool {
	return q.onlyPaid
}

// OnlyNotFinished reports whether Done and Canceled deliveries are excluded.
func (q GetDeliveriesPageQuery) OnlyNotFinished() bool {
	return q.onlyNotFinished
}
