package commands

import (
	"context"
	"errors"

	"dronedash/internal/core/domain/services"
	"dronedash/internal/pkg/errs"
)

var (
	// ErrDroneNotFound is returned when a command references a drone id that
	// does not exist in the fleet registry.
	ErrDroneNotFound = errors.New("drone not found")
	// ErrOrderNotFound is returned when a command references an order id that
	// does not exist in the order ledger.
	ErrOrderNotFound = errors.New("order not found")
)

// AssignDroneResult describes a successful drone-to-order assignment.
// The order's own status is unchanged by assignment; only the drone moved
// to Delivery and the binding was recorded.
type AssignDroneResult struct {
	DroneID   int
	DroneName string
	OrderID   int
}

// AssignDroneCommandHandler orchestrates binding a drone to an order.
// Looks up both aggregates, delegates the eligibility rule to the dispatch
// service, and writes both back so the change is visible atomically from the
// caller's point of view.
//
// Example:
//
//	handler := NewAssignDroneCommandHandler(fleet, orders)
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrDroneNotFound):
//	    log.Println("No such drone")
//	case errors.Is(err, services.ErrDroneBusy):
//	    log.Println("Drone is already engaged")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	default:
//	    log.Printf("Drone #%d assigned to order #%d", result.DroneID, result.OrderID)
//	}
type AssignDroneCommandHandler struct {
	fleet  FleetRegistry
	orders OrderLedger
}

// NewAssignDroneCommandHandler creates a handler for drone assignment operations.
func NewAssignDroneCommandHandler(fleet FleetRegistry, orders OrderLedger) AssignDroneCommandHandler {
	return AssignDroneCommandHandler{
		fleet:  fleet,
		orders: orders,
	}
}

// Handle processes the drone assignment command.
//
// Fails with ErrDroneNotFound or ErrOrderNotFound on missing ids and with
// services.ErrDroneBusy when the drone is not Inactive — a repeat assignment
// of an already-Delivery drone is an error, never a silent no-op.
func (h AssignDroneCommandHandler) Handle(ctx context.Context, cmd AssignDroneCommand) (AssignDroneResult, error) {
	if err := cmd.Validate(); err != nil {
		return AssignDroneResult{}, err
	}

	d, err := h.fleet.Get(ctx, cmd.DroneID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return AssignDroneResult{}, ErrDroneNotFound
	}
	if err != nil {
		return AssignDroneResult{}, err
	}

	o, err := h.orders.Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return AssignDroneResult{}, ErrOrderNotFound
	}
	if err != nil {
		return AssignDroneResult{}, err
	}

	if err = services.NewDispatcher().Assign(d, o); err != nil {
		return AssignDroneResult{}, err
	}

	if err = h.orders.Update(ctx, o); err != nil {
		return AssignDroneResult{}, err
	}

	if err = h.fleet.Update(ctx, d); err != nil {
		return AssignDroneResult{}, err
	}

	return AssignDroneResult{
		DroneID:   d.ID(),
		DroneName: d.Name(),
		OrderID:   o.ID(),
	}, nil
}
