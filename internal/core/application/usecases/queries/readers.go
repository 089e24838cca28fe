// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models shaped for display, never domain aggregates.
package queries

import (
	"context"

	"dronedash/internal/core/domain/model/drone"
	"dronedash/internal/core/domain/model/order"
)

type (
	// FleetReader is the read-side view of the fleet registry.
	FleetReader interface {
		Get(ctx context.Context, id int) (*drone.Drone, error)
		GetAll(ctx context.Context, filter *drone.Status) ([]*drone.Drone, error)
	}

	// OrderReader is the read-side view of the order ledger.
	OrderReader interface {
		Get(ctx context.Context, id int) (*order.Order, error)
		GetAll(ctx context.Context) ([]*order.Order, error)
	}
)

// DroneResponse represents drone information in the read model.
type DroneResponse struct {
	ID     int
	Name   string
	Status drone.Status
}

// OrderResponse represents order information in the read model.
// DroneID is nil when no drone is bound to the order.
type OrderResponse struct {
	ID       int
	Customer string
	City     string
	Street   string
	Status   order.Status
	DroneID  *int
}
