package order

import (
	"errors"
	"fmt"

	"dronedash/internal/pkg/errs"
	"dronedash/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a customer delivery request. It is the aggregate root that
// manages the order lifecycle from creation through drone assignment to closure.
//
// Order follows these invariants:
//   - Must have a positive, ledger-assigned identifier
//   - Starts in the New status with no drone bound
//   - Holds at most one drone reference, stored as a non-owning id key
//     (the fleet registry remains the sole owner of drone lifetime)
//
// Customer, city, and street content is opaque: the order generator collaborator
// pre-validates it, so the aggregate stores it as given.
type Order struct {
	// id is the unique identifier for the order
	id int

	// customer is the immutable customer value the order was placed for
	customer Customer

	// city and street form the delivery address
	city   string
	street string

	// status represents the current state in the order lifecycle
	status Status

	// droneID is the bound drone's id (nil if no drone is bound).
	// This is a lookup key, never an owning reference.
	droneID *int

	// guard ensures the order was created via NewOrder
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order with the given identity and content.
// This is the only way to create a valid Order instance.
//
// The identifier must be positive (the order ledger owns the sequence).
// The created order has status New and no drone bound. Content fields are
// stored as given; they are pre-validated by the generator collaborator.
func NewOrder(id int, customer Customer, city, street string) (*Order, error) {
	o := &Order{
		customer: customer,
		city:     city,
		street:   street,
		status:   New,
		guard:    guard.NewConstructorGuard(),
	}

	if err := o.setID(id); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
// The zero value of Order is invalid and will fail this validation.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's unique identifier.
func (o *Order) ID() int {
	return o.id
}

// Customer returns the customer the order was placed for.
func (o *Order) Customer() Customer {
	return o.customer
}

// City returns the delivery city.
func (o *Order) City() string {
	return o.city
}

// Street returns the delivery street.
func (o *Order) Street() string {
	return o.street
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// DroneID returns the bound drone's id, or nil if no drone is bound.
// The returned pointer is a copy; mutating it does not affect the order.
func (o *Order) DroneID() *int {
	if o.droneID == nil {
		return nil
	}
	id := *o.droneID
	return &id
}

// HasDrone reports whether a drone is currently bound to the order.
func (o *Order) HasDrone() bool {
	return o.droneID != nil
}

// BindDrone records the given drone id on the order.
//
// An existing binding is overwritten without unbinding the previous drone —
// the source system allowed this and the behavior is preserved as observed
// (flagged for product clarification rather than silently fixed). Drone
// availability is not checked here; that is the dispatch service's job.
func (o *Order) BindDrone(droneID int) error {
	if droneID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("droneID", fmt.Errorf("%d is not greater than 0", droneID))
	}

	o.droneID = &droneID
	return nil
}

// SetStatus overwrites the order's status unconditionally.
//
// Any valid status is reachable from any other; Completed and Rejected do not
// lock the order. The cascade release of a bound drone on closure is performed
// by the dispatch service, not here.
func (o *Order) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}
