package commands

import (
	"errors"
	"fmt"

	"dronedash/internal/core/domain/model/drone"
	"dronedash/internal/pkg/errs"
	"dronedash/internal/pkg/guard"
)

var (
	ErrChangeDroneStatusCommandIsNotConstructed = errors.New(
		"ChangeDroneStatusCommand must be created via NewChangeDroneStatusCommand constructor",
	)
)

// ChangeDroneStatusCommand represents a manual drone status override.
// Manual overrides are always allowed, including pulling a drone out of an
// active delivery; no transition rules apply.
type ChangeDroneStatusCommand struct {
	droneID int
	status  drone.Status

	guard guard.ConstructorGuard
}

// NewChangeDroneStatusCommand creates a command to overwrite a drone's status.
// The id must be positive and the status must be a valid drone status.
func NewChangeDroneStatusCommand(droneID int, status drone.Status) (ChangeDroneStatusCommand, error) {
	command := ChangeDroneStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDroneID(droneID),
		command.setStatus(status),
	); err != nil {
		return ChangeDroneStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeDroneStatusCommandIsNotConstructed if validation fails.
func (c ChangeDroneStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeDroneStatusCommandIsNotConstructed)
}

// DroneID returns the drone identifier from the command.
func (c ChangeDroneStatusCommand) DroneID() int {
	return c.droneID
}

// Status returns the requested status from the command.
func (c ChangeDroneStatusCommand) Status() drone.Status {
	return c.status
}

func (c *ChangeDroneStatusCommand) setDroneID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("droneID", fmt.Errorf("%d is not greater than 0", id))
	}

	c.droneID = id
	return nil
}

func (c *ChangeDroneStatusCommand) setStatus(status drone.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
