// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, registry access, and
// a structured result for the caller to render.
//
// The system runs as a single-actor interactive process: one command at a time,
// executed to completion. Handlers therefore talk to the registries directly —
// there is no transaction manager to coordinate, and atomicity from the
// caller's point of view follows from the serialized execution model.
package commands

import (
	"dronedash/internal/core/ports"
)

type (
	// FleetRegistry is the fleet-side registry contract consumed by command
	// handlers. It is the sole owner of drone identity and lifetime.
	FleetRegistry interface {
		ports.FleetRepository
	}

	// OrderLedger is the order-side registry contract consumed by command
	// handlers. It is the sole owner of order records and the order id sequence.
	OrderLedger interface {
		ports.OrderRepository
	}
)
