package queries

import (
	"errors"

	"deliveryquery/internal/core/domain/model/delivery"
	"deliveryquery/internal/pkg/guard"
)

var (
	ErrGetDeliveryStatisticsQueryIsNotConstructed = errors.New(
		"GetDeliveryStatisticsQuery must be created via NewGetDeliveryStatisticsQuery constructor",
	)
)

// GetDeliveryStatisticsQuery builds an overview of all deliveries.
// This is a parameterless query.
type GetDeliveryStatisticsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDeliveryStatisticsQuery creates the statistics query.
func NewGetDeliveryStatisticsQuery() GetDeliveryStatisticsQuery {
	return GetDeliveryStatisticsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryStatisticsQueryIsNotConstructed)
}

// GetDeliveryStatisticsQueryResponse summarizes a set of deliveries.
//
// Queue lists the deliveries still being processed, ordered by status and
// then by start of loading.
type GetDeliveryStatisticsQueryResponse struct {
	Total          int
	Paid           int
	UniqCargoTypes int
	CountsByStatus map[delivery.Status]int
	AverageGaps    []delivery.AverageGapsInfo
	Queue          []*delivery.Delivery
}
