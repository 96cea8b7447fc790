// Package deliverytest builds valid deliveries for tests.
package deliverytest

import (
	"testing"
	"time"

	"deliveryquery/internal/core/domain/model/delivery"
	"deliveryquery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

// BaseTime is the default start of loading used by the builder.
var BaseTime = time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)

// Builder assembles a delivery with defaults for every field not set explicitly.
type Builder struct {
	id           kernel.UUID
	clientID     string
	status       delivery.Status
	startCity    string
	endCity      string
	deliveryType delivery.Type
	cargoType    string
	isPaid       bool
	startTime    time.Time
	endLoading   time.Time
	arrival      time.Time
}

// New returns a builder for a paid Standard delivery Kyiv -> Lviv in Created status
// that loads for one hour and travels for two.
func New() *Builder {
	return &Builder{
		id:           kernel.NewUUID(),
		clientID:     "client-1",
		status:       delivery.Created,
		startCity:    "Kyiv",
		endCity:      "Lviv",
		deliveryType: delivery.Standard,
		cargoType:    "General",
		isPaid:       true,
		startTime:    BaseTime,
		endLoading:   BaseTime.Add(time.Hour),
		arrival:      BaseTime.Add(3 * time.Hour),
	}
}

func (b *Builder) WithClient(clientID string) *Builder {
	b.clientID = clientID
	return b
}

func (b *Builder) WithStatus(status delivery.Status) *Builder {
	b.status = status
	return b
}

func (b *Builder) WithRoute(startCity, endCity string) *Builder {
	b.startCity = startCity
	b.endCity = endCity
	return b
}

func (b *Builder) WithType(deliveryType delivery.Type) *Builder {
	b.deliveryType = deliveryType
	return b
}

func (b *Builder) WithCargo(cargoType string) *Builder {
	b.cargoType = cargoType
	return b
}

func (b *Builder) Paid(isPaid bool) *Builder {
	b.isPaid = isPaid
	return b
}

// StartingAt sets the start of loading and keeps the loading and travel durations.
func (b *Builder) StartingAt(startTime time.Time) *Builder {
	loading := b.endLoading.Sub(b.startTime)
	travel := b.arrival.Sub(b.endLoading)
	b.startTime = startTime
	b.endLoading = startTime.Add(loading)
	b.arrival = b.endLoading.Add(travel)
	return b
}

// WithTravel sets the arrival to endLoading + travel.
func (b *Builder) WithTravel(travel time.Duration) *Builder {
	b.arrival = b.endLoading.Add(travel)
	return b
}

// ArrivingAt sets the arrival timestamp.
func (b *Builder) ArrivingAt(arrival time.Time) *Builder {
	b.arrival = arrival
	return b
}

// Build constructs the delivery and fails the test on validation errors.
func (b *Builder) Build(t testing.TB) *delivery.Delivery {
	t.Helper()

	route, err := kernel.NewRoute(b.startCity, b.endCity)
	require.NoError(t, err)

	d, err := delivery.NewDelivery(
		b.id,
		b.clientID,
		b.status,
		route,
		b.deliveryType,
		b.cargoType,
		b.isPaid,
		delivery.NewSchedule(b.startTime, b.endLoading, b.arrival),
	)
	require.NoError(t, err)

	return d
}
