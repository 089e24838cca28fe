package drone

import (
	"errors"
	"fmt"
	"strings"

	"dronedash/internal/pkg/errs"
	"dronedash/internal/pkg/guard"
)

// Domain errors for drone operations.
var (
	// ErrNameIsRequired is returned when attempting to create a drone with a
	// blank name (empty or whitespace-only).
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrDroneIsNotConstructed is returned when using an improperly initialized Drone.
	ErrDroneIsNotConstructed = errors.New("Drone must be created via NewDrone constructor")
)

// Drone represents a fleet unit in the dispatch system.
// It is an aggregate root that manages drone identity and availability.
//
// Key responsibilities:
//   - Managing drone identity (ID, name)
//   - Tracking the availability status (Inactive, Active, Delivery)
//
// Business rules:
//   - ID must be a positive integer; identifiers are handed out by the fleet
//     registry, strictly increasing and never reused
//   - Name must be non-blank at creation
//   - Status changes are unconditional overwrites; assignment eligibility is
//     enforced by the dispatch service, not here
//
// Example usage:
//
//	d, err := NewDrone(3, "Hermes")
//	if err != nil {
//	    // Handle construction error
//	}
//	// d.Status() == Inactive, ready for assignment
type Drone struct {
	// id uniquely identifies the drone within the fleet registry
	id int
	// name is the human-readable name of the drone
	name string
	// status is the current availability state
	status Status
	// guard ensures the drone was properly constructed
	guard guard.ConstructorGuard
}

// NewDrone creates a new Drone with the specified identity.
// This is the only way to create a valid Drone instance.
//
// The identifier must be positive (the fleet registry owns the sequence) and
// the name must contain at least one non-whitespace character. A freshly
// created drone always starts in the Inactive status.
//
// Returns the constructed drone, or a validation error joining every failed
// rule when any parameter is invalid.
func NewDrone(id int, name string) (*Drone, error) {
	d := &Drone{
		status: Inactive,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// IsEqual compares two drones for equality based on their unique identifiers.
// Two drones are considered equal if they have the same ID, regardless of
// other attributes.
func (d *Drone) IsEqual(other *Drone) bool {
	if other == nil {
		return false
	}
	return d.id == other.id
}

// Validate checks if the Drone was properly constructed using NewDrone.
// The zero value of Drone is invalid and will fail this validation.
func (d *Drone) Validate() error {
	if d == nil {
		return ErrDroneIsNotConstructed
	}
	return d.guard.Validate(ErrDroneIsNotConstructed)
}

// ID returns the unique identifier of the drone.
// The ID is immutable and set during drone construction.
func (d *Drone) ID() int {
	return d.id
}

// Name returns the human-readable name of the drone.
// The name is immutable and set during drone construction.
func (d *Drone) Name() string {
	return d.name
}

// Status returns the current availability status of the drone.
func (d *Drone) Status() Status {
	return d.status
}

// SetStatus overwrites the drone's status unconditionally.
//
// There are no transition restrictions at this level: a manual override may
// pull a drone out of an active delivery or push it straight into one. The
// dispatch service applies its own eligibility rules on top of this when
// binding drones to orders.
//
// Returns a validation error if the new status value itself is invalid.
func (d *Drone) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	d.status = status
	return nil
}

// setID validates and sets the drone's unique identifier.
// This is a private method used only during construction.
func (d *Drone) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", id))
	}

	d.id = id
	return nil
}

// setName validates and sets the drone's name.
// Names consisting only of whitespace are rejected; the original spelling is kept.
func (d *Drone) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}

	d.name = name
	return nil
}
