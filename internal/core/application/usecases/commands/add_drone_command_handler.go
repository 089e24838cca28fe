package commands

import (
	"context"

	"dronedash/internal/core/domain/model/drone"
)

// AddDroneResult describes a successfully registered drone.
// It is the structured creation event the caller renders for display.
type AddDroneResult struct {
	DroneID int
	Name    string
	Status  drone.Status
}

// AddDroneCommandHandler handles the business logic for drone registration.
// Pulls the next identifier from the fleet registry, creates the drone in the
// Inactive status, and appends it to the live fleet.
type AddDroneCommandHandler struct {
	fleet FleetRegistry
}

// NewAddDroneCommandHandler creates a handler for drone registration.
func NewAddDroneCommandHandler(fleet FleetRegistry) AddDroneCommandHandler {
	return AddDroneCommandHandler{
		fleet: fleet,
	}
}

// Handle processes the drone registration command.
// The registry-owned sequence guarantees ids are strictly increasing and
// never reused, even when an Add fails after the id was drawn.
func (h AddDroneCommandHandler) Handle(ctx context.Context, cmd AddDroneCommand) (AddDroneResult, error) {
	if err := cmd.Validate(); err != nil {
		return AddDroneResult{}, err
	}

	id, err := h.fleet.NextID(ctx)
	if err != nil {
		return AddDroneResult{}, err
	}

	d, err := drone.NewDrone(id, cmd.Name())
	if err != nil {
		return AddDroneResult{}, err
	}

	if err = h.fleet.Add(ctx, d); err != nil {
		return AddDroneResult{}, err
	}

	return AddDroneResult{
		DroneID: d.ID(),
		Name:    d.Name(),
		Status:  d.Status(),
	}, nil
}
