package delivery

import (
	"errors"

	"deliveryquery/internal/core/domain/model/kernel"
	"deliveryquery/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not created through
	// the NewDelivery factory method.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")
)

// Delivery is a shipment record: who ordered it, where it goes, what it carries,
// whether it is paid and when it was loaded and arrived.
//
// Delivery follows these invariants:
//   - Must have a valid unique identifier
//   - Must belong to a client (non-empty client ID)
//   - Must have a valid route, type and status
//   - Must have a non-empty cargo type
//   - Can only be created through NewDelivery constructor
//
// Deliveries are read-only: queries never change them, so a single slice of
// deliveries can be shared between callers.
type Delivery struct {
	// id is the unique identifier for the delivery
	id kernel.UUID

	// clientID identifies the client who booked the delivery
	clientID string

	// status is the current lifecycle state
	status Status

	// route is the start/end city pair
	route kernel.Route

	// deliveryType is the booked service category
	deliveryType Type

	// cargoType is the free-form cargo category
	cargoType string

	// isPaid reports whether the client has paid
	isPaid bool

	// schedule holds loading and arrival timestamps
	schedule Schedule

	// isConstructed ensures the delivery was created via NewDelivery
	isConstructed bool
}

// NewDelivery creates a Delivery with validation. All parameter errors are reported
// together through errors.Join.
//
// Example:
//
//	route, _ := kernel.NewRoute("Kyiv", "Lviv")
//	schedule := delivery.NewSchedule(start, endLoading, arrival)
//	d, err := delivery.NewDelivery(kernel.NewUUID(), "client-1", delivery.Created,
//	    route, delivery.Express, "Furniture", true, schedule)
//	if err != nil {
//	    // Handle validation error
//	}
func NewDelivery(
	id kernel.UUID,
	clientID string,
	status Status,
	route kernel.Route,
	deliveryType Type,
	cargoType string,
	isPaid bool,
	schedule Schedule,
) (*Delivery, error) {
	delivery := &Delivery{
		isPaid:        isPaid,
		schedule:      schedule,
		isConstructed: true,
	}

	if err := errors.Join(
		delivery.setID(id),
		delivery.setClientID(clientID),
		delivery.setStatus(status),
		delivery.setRoute(route),
		delivery.setType(deliveryType),
		delivery.setCargoType(cargoType),
	); err != nil {
		return nil, err
	}

	return delivery, nil
}

// Validate ensures the Delivery instance was properly constructed through NewDelivery.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}

	return nil
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// ClientID returns the identifier of the client who booked the delivery.
func (d *Delivery) ClientID() string {
	return d.clientID
}

// Status returns the current status of the delivery.
func (d *Delivery) Status() Status {
	return d.status
}

// Route returns the start/end city pair.
func (d *Delivery) Route() kernel.Route {
	return d.route
}

// StartCity returns the city where loading takes place.
func (d *Delivery) StartCity() string {
	return d.route.StartCity()
}

// EndCity returns the destination city.
func (d *Delivery) EndCity() string {
	return d.route.EndCity()
}

// Type returns the booked service category.
func (d *Delivery) Type() Type {
	return d.deliveryType
}

// CargoType returns the cargo category.
func (d *Delivery) CargoType() string {
	return d.cargoType
}

// IsPaid reports whether the delivery has been paid.
func (d *Delivery) IsPaid() bool {
	return d.isPaid
}

// Schedule returns the loading and arrival timestamps.
func (d *Delivery) Schedule() Schedule {
	return d.schedule
}

// IsFinished reports whether the delivery is Done or Canceled.
func (d *Delivery) IsFinished() bool {
	return d.status.IsFinished()
}

// ShortInfo projects the delivery to its listing view.
func (d *Delivery) ShortInfo() ShortInfo {
	return ShortInfo{
		ID:        d.id,
		Status:    d.status.String(),
		StartCity: d.route.StartCity(),
		EndCity:   d.route.EndCity(),
	}
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	d.id = id
	return nil
}

func (d *Delivery) setClientID(clientID string) error {
	if clientID == "" {
		return errs.NewValueIsRequiredError("clientID")
	}

	d.clientID = clientID
	return nil
}

func (d *Delivery) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	d.status = status
	return nil
}

func (d *Delivery) setRoute(route kernel.Route) error {
	if err := route.Validate(); err != nil {
		return err
	}

	d.route = route
	return nil
}

func (d *Delivery) setType(deliveryType Type) error {
	if err := deliveryType.Validate(); err != nil {
		return err
	}

	d.deliveryType = deliveryType
	return nil
}

func (d *Delivery) setCargoType(cargoType string) error {
	if cargoType == "" {
		return errs.NewValueIsRequiredError("cargoType")
	}

	d.cargoType = cargoType
	return nil
}
