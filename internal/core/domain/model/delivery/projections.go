package delivery

import "deliveryquery/internal/core/domain/model/kernel"

// ShortInfo is the listing view of a delivery.
// Status holds the display name of the delivery status.
type ShortInfo struct {
	ID        kernel.UUID
	Status    string
	StartCity string
	EndCity   string
}

// AverageGapsInfo is the average travel time of one direction.
// AverageGap is measured in minutes from the end of loading to the arrival.
type AverageGapsInfo struct {
	StartCity  string
	EndCity    string
	AverageGap float64
}
