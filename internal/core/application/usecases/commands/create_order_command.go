package commands

import (
	"errors"

	"dronedash/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to record a new customer order.
//
// The content (customer name pair, city, street) comes from the order-content
// generator collaborator and is treated as opaque valid input: no validation
// is applied beyond the constructor guard. The order's identifier and initial
// status are assigned when the command is handled.
type CreateOrderCommand struct {
	firstName string
	lastName  string
	city      string
	street    string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to record a new order.
// Content fields are accepted as given; creation never fails on content.
func NewCreateOrderCommand(firstName, lastName, city, street string) CreateOrderCommand {
	return CreateOrderCommand{
		firstName: firstName,
		lastName:  lastName,
		city:      city,
		street:    street,
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// FirstName returns the customer's first name from the command.
func (c CreateOrderCommand) FirstName() string {
	return c.firstName
}

// LastName returns the customer's last name from the command.
func (c CreateOrderCommand) LastName() string {
	return c.lastName
}

// City returns the delivery city from the command.
func (c CreateOrderCommand) City() string {
	return c.city
}

// Street returns the delivery street from the command.
func (c CreateOrderCommand) Street() string {
	return c.street
}
