package commands

import (
	"errors"
	"fmt"

	"dronedash/internal/core/domain/model/order"
	"dronedash/internal/pkg/errs"
	"dronedash/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)
)

// ChangeOrderStatusCommand represents a request to set an order's status.
// Transitions are unrestricted; entering Completed or Rejected additionally
// triggers the cascade release of a bound drone when the command is handled.
type ChangeOrderStatusCommand struct {
	orderID int
	status  order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to overwrite an order's status.
// The id must be positive and the status must be a valid order status.
func NewChangeOrderStatusCommand(orderID int, status order.Status) (ChangeOrderStatusCommand, error) {
	command := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setStatus(status),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeOrderStatusCommandIsNotConstructed if validation fails.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order identifier from the command.
func (c ChangeOrderStatusCommand) OrderID() int {
	return c.orderID
}

// Status returns the requested status from the command.
func (c ChangeOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c *ChangeOrderStatusCommand) setOrderID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderID", fmt.Errorf("%d is not greater than 0", id))
	}

	c.orderID = id
	return nil
}

func (c *ChangeOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
