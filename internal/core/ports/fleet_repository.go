// Package ports defines repository interfaces for the dispatch domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"dronedash/internal/core/domain/model/drone"
)

// FleetRepository defines the registry contract for drone aggregates.
// The registry is the exclusive owner of drone identity and lifetime: it hands
// out the id sequence and keeps drones in creation order.
type FleetRepository interface {
	// NextID returns the next drone identifier and advances the sequence.
	// Identifiers are strictly increasing and never reused or reset for the
	// lifetime of the registry instance.
	NextID(ctx context.Context) (int, error)

	// Add persists a new drone aggregate in the registry.
	// The drone must be valid and its id must not already exist.
	Add(ctx context.Context, d *drone.Drone) error

	// Update persists changes to an existing drone aggregate.
	// Returns an ObjectNotFoundError when the id is unknown.
	Update(ctx context.Context, d *drone.Drone) error

	// Get retrieves a drone aggregate by its identifier.
	// Returns an ObjectNotFoundError when the id is unknown.
	Get(ctx context.Context, id int) (*drone.Drone, error)

	// GetAll retrieves drones in creation order. A nil filter returns every
	// drone; a non-nil filter returns only drones whose status matches.
	// The absence of a filter is an explicit variant, not a sentinel status.
	GetAll(ctx context.Context, filter *drone.Status) ([]*drone.Drone, error)
}
