// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the dispatch system. It implements the
// cross-entity rules that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - Dispatcher: The domain service binding drones to orders and applying the
//     cascade release when an order closes
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
