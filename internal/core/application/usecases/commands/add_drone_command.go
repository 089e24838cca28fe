package commands

import (
	"errors"
	"strings"

	"dronedash/internal/pkg/errs"
	"dronedash/internal/pkg/guard"
)

var (
	ErrAddDroneCommandIsNotConstructed = errors.New(
		"AddDroneCommand must be created via NewAddDroneCommand constructor",
	)
	// ErrNameIsRequired is returned when the drone name is empty or blank
	// after trimming. It unwraps to errs.ErrValueIsRequired.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// AddDroneCommand represents a request to register a new drone in the fleet.
// The drone's identifier is not part of the command: the fleet registry hands
// it out when the command is handled.
//
// Example:
//
//	cmd, err := NewAddDroneCommand("Hermes")
//	if err != nil {
//	    return fmt.Errorf("invalid drone data: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to add drone: %w", err)
//	}
//	fmt.Printf("Added drone #%d", result.DroneID)
type AddDroneCommand struct {
	name string

	guard guard.ConstructorGuard
}

// NewAddDroneCommand creates a command to register a new drone.
// Fails with ErrNameIsRequired when the name is empty or whitespace-only;
// the original spelling of a valid name is kept as given.
func NewAddDroneCommand(name string) (AddDroneCommand, error) {
	if strings.TrimSpace(name) == "" {
		return AddDroneCommand{}, ErrNameIsRequired
	}

	return AddDroneCommand{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddDroneCommandIsNotConstructed if validation fails.
func (c AddDroneCommand) Validate() error {
	return c.guard.Validate(ErrAddDroneCommandIsNotConstructed)
}

// Name returns the drone name from the command.
func (c AddDroneCommand) Name() string {
	return c.name
}
