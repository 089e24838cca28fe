package commands

import (
	"context"
	"errors"

	"dronedash/internal/core/domain/model/drone"
	"dronedash/internal/core/domain/model/order"
	"dronedash/internal/core/domain/services"
	"dronedash/internal/pkg/errs"
)

// ChangeOrderStatusResult describes an applied order status change.
// ReleasedDrone is non-nil only when the cascade release fired: the order
// entered Completed or Rejected while holding a drone binding.
type ChangeOrderStatusResult struct {
	OrderID       int
	NewStatus     order.Status
	ReleasedDrone *ReleasedDrone
}

// ReleasedDrone identifies a drone freed by the cascade release.
type ReleasedDrone struct {
	DroneID   int
	DroneName string
}

// ChangeOrderStatusCommandHandler orchestrates order status changes.
// Fetches the order and, when one is bound, its drone, then delegates the
// cascade rule to the dispatch service so the status write and the release
// land together from the caller's point of view.
type ChangeOrderStatusCommandHandler struct {
	fleet  FleetRegistry
	orders OrderLedger
}

// NewChangeOrderStatusCommandHandler creates a handler for order status changes.
func NewChangeOrderStatusCommandHandler(fleet FleetRegistry, orders OrderLedger) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		fleet:  fleet,
		orders: orders,
	}
}

// Handle processes the order status change command.
//
// Fails with ErrOrderNotFound on an unknown order id. The status itself is
// written unconditionally; when it is Completed or Rejected and a drone is
// bound, that drone is set to Inactive as a side effect, whatever status it
// was in. Repeating the command re-applies the same writes, so the cascade
// stays idempotent value-wise.
func (h ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (ChangeOrderStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	o, err := h.orders.Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ChangeOrderStatusResult{}, ErrOrderNotFound
	}
	if err != nil {
		return ChangeOrderStatusResult{}, err
	}

	var bound *drone.Drone
	if droneID := o.DroneID(); droneID != nil {
		bound, err = h.fleet.Get(ctx, *droneID)
		if err != nil {
			return ChangeOrderStatusResult{}, err
		}
	}

	released, err := services.NewDispatcher().Close(o, bound, cmd.Status())
	if err != nil {
		return ChangeOrderStatusResult{}, err
	}

	if err = h.orders.Update(ctx, o); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	result := ChangeOrderStatusResult{
		OrderID:   o.ID(),
		NewStatus: o.Status(),
	}

	if released {
		if err = h.fleet.Update(ctx, bound); err != nil {
			return ChangeOrderStatusResult{}, err
		}
		result.ReleasedDrone = &ReleasedDrone{
			DroneID:   bound.ID(),
			DroneName: bound.Name(),
		}
	}

	return result, nil
}
