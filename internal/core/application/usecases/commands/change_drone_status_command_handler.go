package commands

import (
	"context"
	"errors"

	"dronedash/internal/core/domain/model/drone"
	"dronedash/internal/pkg/errs"
)

// ChangeDroneStatusResult describes a manual drone status overwrite.
type ChangeDroneStatusResult struct {
	DroneID   int
	DroneName string
	NewStatus drone.Status
}

// ChangeDroneStatusCommandHandler handles manual drone status overrides.
// The overwrite is unconditional: the fleet registry applies it even to a
// drone mid-delivery. Assignment eligibility is a dispatch-service concern
// and is not consulted here.
type ChangeDroneStatusCommandHandler struct {
	fleet FleetRegistry
}

// NewChangeDroneStatusCommandHandler creates a handler for manual status changes.
func NewChangeDroneStatusCommandHandler(fleet FleetRegistry) ChangeDroneStatusCommandHandler {
	return ChangeDroneStatusCommandHandler{
		fleet: fleet,
	}
}

// Handle processes the status override command.
// Fails with ErrDroneNotFound when the id is unknown.
func (h ChangeDroneStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeDroneStatusCommand,
) (ChangeDroneStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return ChangeDroneStatusResult{}, err
	}

	d, err := h.fleet.Get(ctx, cmd.DroneID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ChangeDroneStatusResult{}, ErrDroneNotFound
	}
	if err != nil {
		return ChangeDroneStatusResult{}, err
	}

	if err = d.SetStatus(cmd.Status()); err != nil {
		return ChangeDroneStatusResult{}, err
	}

	if err = h.fleet.Update(ctx, d); err != nil {
		return ChangeDroneStatusResult{}, err
	}

	return ChangeDroneStatusResult{
		DroneID:   d.ID(),
		DroneName: d.Name(),
		NewStatus: d.Status(),
	}, nil
}
