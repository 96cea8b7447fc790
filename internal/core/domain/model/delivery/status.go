package delivery

import (
	"fmt"
	"math"

	"deliveryquery/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
//
//	Created -> Loading -> InTransit -> Arrived -> Unloading -> Done
//	   \__________\___________\__________\___________\_______> Canceled
//
// Sorting by status uses Rank, not the numeric value of the constant.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status of a registered delivery.
	Created

	// Loading indicates the cargo is being loaded at the start city.
	Loading

	// InTransit indicates loading has finished and the cargo is on its way.
	InTransit

	// Arrived indicates the cargo reached the end city.
	Arrived

	// Unloading indicates the cargo is being unloaded at the end city.
	Unloading

	// Done is a final status: the delivery was completed.
	Done

	// Canceled is a final status: the delivery was abandoned.
	Canceled
)

// getStatusStrings returns a map of Status values to their display names.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "Created",
		Loading:   "Loading",
		InTransit: "InTransit",
		Arrived:   "Arrived",
		Unloading: "Unloading",
		Done:      "Done",
		Canceled:  "Canceled",
	}
}

// getStatusRanks returns the sort rank of every valid status.
//
//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
func getStatusRanks() map[Status]int {
	return map[Status]int{
		Created:   1,
		Loading:   2,
		InTransit: 3,
		Arrived:   4,
		Unloading: 5,
		Done:      6,
		Canceled:  7,
	}
}

// Statuses returns every valid status in rank order.
func Statuses() []Status {
	return []Status{Created, Loading, InTransit, Arrived, Unloading, Done, Canceled}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any value outside the declared constants are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusRanks()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the display name of the status, "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Rank returns the position of the status in the lifecycle ordering.
// Invalid statuses rank after every valid one.
func (s Status) Rank() int {
	if rank, ok := getStatusRanks()[s]; ok {
		return rank
	}
	return math.MaxInt
}

// IsFinished reports whether the delivery is no longer processed (Done or Canceled).
func (s Status) IsFinished() bool {
	return s == Done || s == Canceled
}
