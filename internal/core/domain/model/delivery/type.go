package delivery

import (
	"fmt"

	"deliveryquery/internal/pkg/errs"
)

// Type is the service category a delivery was booked with.
type Type int

const (
	// UnknownType represents an invalid or undefined type.
	UnknownType Type = iota

	// Standard is a regular delivery without time guarantees.
	Standard

	// Express is a prioritized delivery.
	Express

	// Scheduled is a delivery bound to a booked loading slot.
	Scheduled
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		UnknownType: "Unknown",
		Standard:    "Standard",
		Express:     "Express",
		Scheduled:   "Scheduled",
	}
}

// Validate checks if the Type value is one of Standard, Express or Scheduled.
func (t Type) Validate() error {
	if _, ok := getTypeStrings()[t]; !ok || t == UnknownType {
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%d is not a valid delivery type", t))
	}
	return nil
}

// String returns the display name of the type, "Unknown" for invalid values.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}
