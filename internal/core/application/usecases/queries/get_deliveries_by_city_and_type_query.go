package queries

import (
	"errors"

	"deliveryquery/internal/core/domain/model/delivery"
	"deliveryquery/internal/pkg/errs"
	"deliveryquery/internal/pkg/guard"
)

var (
	ErrGetDeliveriesByCityAndTypeQueryIsNotConstructed = errors.New(
		"GetDeliveriesByCityAndTypeQuery must be created via NewGetDeliveriesByCityAndTypeQuery constructor",
	)
)

// GetDeliveriesByCityAndTypeQuery selects up to ten deliveries that start in a city
// and were booked with a given type.
type GetDeliveriesByCityAndTypeQuery struct {
	cityName     string
	deliveryType delivery.Type

	guard guard.ConstructorGuard
}

// NewGetDeliveriesByCityAndTypeQuery creates the query.
// Validates that cityName is not empty and deliveryType is a known type.
func NewGetDeliveriesByCityAndTypeQuery(
	cityName string,
	deliveryType delivery.Type,
) (GetDeliveriesByCityAndTypeQuery, error) {
	var cityErr error
	if cityName == "" {
		cityErr = errs.NewValueIsRequiredError("cityName")
	}

	if err := errors.Join(cityErr, deliveryType.Validate()); err != nil {
		return GetDeliveriesByCityAndTypeQuery{}, err
	}

	return GetDeliveriesByCityAndTypeQuery{
		cityName:     cityName,
		deliveryType: deliveryType,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveriesByCityAndTypeQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveriesByCityAndTypeQueryIsNotConstructed)
}

// CityName returns the start city to match.
func (q GetDeliveriesByCityAndTypeQuery) CityName() string {
	return q.cityName
}

// DeliveryType returns the delivery type to match.
func (q GetDeliveriesByCityAndTypeQuery) DeliveryType() delivery.Type {
	return q.deliveryType
}
