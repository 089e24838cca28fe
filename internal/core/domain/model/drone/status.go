package drone

import (
	"fmt"

	"dronedash/internal/pkg/errs"
)

// Status represents the availability state of a drone.
//
// Unlike order statuses there is no transition table here: manual overrides
// are always allowed, including pulling a drone out of an active delivery.
// The only place that cares about the current value is the dispatch service,
// which refuses to assign anything but an Inactive drone.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Inactive means the drone is idle and available for assignment.
	Inactive

	// Active means the drone is powered up but not carrying an order.
	// Active drones are not assignable; only Inactive ones are.
	Active

	// Delivery means the drone is bound to an order and in flight.
	Delivery
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Inactive: "Inactive",
		Active:   "Active",
		Delivery: "Delivery",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Inactive: "Inactive",
		Active:   "Active",
		Delivery: "Delivery",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Inactive, Active, Delivery.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid drone status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsAvailable reports whether a drone in this status may be bound to an order.
// Only Inactive drones are assignable; Active and Delivery drones are busy.
func (s Status) IsAvailable() bool {
	return s == Inactive
}

// ParseStatus converts a status name into a Status value.
// The match is exact and case-sensitive ("Inactive", "Active", "Delivery").
func ParseStatus(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid drone status", name))
}
