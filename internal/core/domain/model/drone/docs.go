// Package drone provides domain entities and business logic for fleet management
// in the dispatch system. It implements the Drone aggregate root with identity
// and availability tracking.
//
// The package includes:
//   - Drone: The aggregate root that manages drone identity and status
//   - Status: The availability state (Inactive, Active, Delivery)
//
// Key business rules:
//   - Drones must have a positive, registry-assigned identifier and a non-blank name
//   - Status overwrites are always allowed; assignability (Inactive only) is
//     enforced by the dispatch service, not the aggregate
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package drone
