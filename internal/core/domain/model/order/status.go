package order

import (
	"fmt"

	"dronedash/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// Transitions are deliberately unrestricted: any valid status is reachable
// from any other via an explicit request, and Completed/Rejected are not hard
// final states (a caller may still move a closed order back to New). The one
// behavior tied to status is the cascade release: entering Completed or
// Rejected frees the bound drone. This permissiveness mirrors the source
// system and is preserved intentionally.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status when an order is first created.
	New

	// InDelivery indicates the order is on its way to the customer.
	InDelivery

	// Completed indicates the order was delivered. Entering this status
	// releases the bound drone.
	Completed

	// Rejected indicates the order was cancelled or refused. Entering this
	// status releases the bound drone.
	Rejected
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		New:        "New",
		InDelivery: "InDelivery",
		Completed:  "Completed",
		Rejected:   "Rejected",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:        "New",
		InDelivery: "InDelivery",
		Completed:  "Completed",
		Rejected:   "Rejected",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: New, InDelivery, Completed, Rejected.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid order status", s))
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

// IsTerminal reports whether entering this status closes the order and
// releases its bound drone. Terminal here means release-triggering, not
// immutable: further status changes remain possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Rejected
}

// ParseStatus converts a status name into a Status value.
// The match is exact and case-sensitive ("New", "InDelivery", "Completed", "Rejected").
func ParseStatus(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid order status", name))
}
