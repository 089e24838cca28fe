package commands

import (
	"errors"
	"fmt"

	"dronedash/internal/pkg/errs"
	"dronedash/internal/pkg/guard"
)

var (
	ErrAssignDroneCommandIsNotConstructed = errors.New(
		"AssignDroneCommand must be created via NewAssignDroneCommand constructor",
	)
)

// AssignDroneCommand represents a request to bind a specific drone to a
// specific order. Both identifiers arrive already parsed; the command only
// checks they are positive.
//
// Example:
//
//	cmd, err := NewAssignDroneCommand(droneID, orderID)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrDroneNotFound):
//	    // no such drone
//	case errors.Is(err, services.ErrDroneBusy):
//	    // drone not Inactive
//	}
type AssignDroneCommand struct {
	droneID int
	orderID int

	guard guard.ConstructorGuard
}

// NewAssignDroneCommand creates a command to bind a drone to an order.
// Both identifiers must be positive.
func NewAssignDroneCommand(droneID, orderID int) (AssignDroneCommand, error) {
	command := AssignDroneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDroneID(droneID),
		command.setOrderID(orderID),
	); err != nil {
		return AssignDroneCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignDroneCommandIsNotConstructed if validation fails.
func (c AssignDroneCommand) Validate() error {
	return c.guard.Validate(ErrAssignDroneCommandIsNotConstructed)
}

// DroneID returns the drone identifier from the command.
func (c AssignDroneCommand) DroneID() int {
	return c.droneID
}

// OrderID returns the order identifier from the command.
func (c AssignDroneCommand) OrderID() int {
	return c.orderID
}

func (c *AssignDroneCommand) setDroneID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("droneID", fmt.Errorf("%d is not greater than 0", id))
	}

	c.droneID = id
	return nil
}

func (c *AssignDroneCommand) setOrderID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderID", fmt.Errorf("%d is not greater than 0", id))
	}

	c.orderID = id
	return nil
}
