package services

import (
	"errors"

	"dronedash/internal/core/domain/model/drone"
	"dronedash/internal/core/domain/model/order"
)

// ErrDroneBusy is returned when an assignment targets a drone that is not
// Inactive. Active drones are rejected just like drones already on a delivery:
// only an Inactive drone may be bound to an order.
var ErrDroneBusy = errors.New("drone is busy")

// Dispatcher is the domain service that couples drone and order state.
// It is the only code in the system permitted to do so; the fleet registry and
// the order ledger never reference each other.
//
// Key responsibilities:
//   - Binding an Inactive drone to an order (Assign)
//   - Applying order status changes with the cascade release rule (Close)
//
// Business rules:
//   - Only Inactive drones are assignable; repeat assignment of a Delivery
//     drone fails with ErrDroneBusy rather than silently no-opping
//   - Assignment never changes the order's own status field
//   - An order entering Completed or Rejected releases its bound drone to
//     Inactive regardless of the drone's current status
//
// Example usage:
//
//	dispatcher := services.NewDispatcher()
//	if err := dispatcher.Assign(d, o); errors.Is(err, services.ErrDroneBusy) {
//	    // drone already engaged
//	}
type Dispatcher struct{}

// NewDispatcher creates a new Dispatcher instance.
func NewDispatcher() Dispatcher {
	return Dispatcher{}
}

// Assign binds the given drone to the given order.
//
// The drone must currently be Inactive; anything else fails with ErrDroneBusy.
// On success the drone moves to Delivery and the order records the drone's id.
// The order's own status is deliberately left untouched: moving the order to
// InDelivery is a separate, explicit action.
//
// If the order already holds a different drone binding, it is overwritten
// without releasing the previous drone — preserved source behavior, flagged
// in the design notes for product clarification.
func (Dispatcher) Assign(d *drone.Drone, o *order.Order) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}

	if !d.Status().IsAvailable() {
		return ErrDroneBusy
	}

	if err := d.SetStatus(drone.Delivery); err != nil {
		return err
	}

	return o.BindDrone(d.ID())
}

// Close sets the order's status and applies the cascade release rule.
//
// The status is written unconditionally (transitions are unrestricted). When
// newStatus is Completed or Rejected and a drone is bound, that drone — passed
// by the caller as bound, possibly nil when the order holds no binding — is
// set to Inactive whatever state it was in. The write happens even when the
// drone is already Inactive, so repeated closures stay idempotent value-wise.
//
// Transitioning into New or InDelivery never touches the drone.
//
// Returns true when a drone release was performed.
func (Dispatcher) Close(o *order.Order, bound *drone.Drone, newStatus order.Status) (bool, error) {
	if err := o.Validate(); err != nil {
		return false, err
	}

	if err := o.SetStatus(newStatus); err != nil {
		return false, err
	}

	if !newStatus.IsTerminal() || bound == nil {
		return false, nil
	}

	if err := bound.Validate(); err != nil {
		return false, err
	}

	if err := bound.SetStatus(drone.Inactive); err != nil {
		return false, err
	}

	return true, nil
}
