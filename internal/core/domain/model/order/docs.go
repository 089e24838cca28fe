// Package order provides domain entities and business logic for order management
// in the dispatch system. It implements the Order aggregate root with lifecycle
// management and the Customer value object.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, content, status,
//     and the optional non-owning drone binding
//   - Customer: An immutable name-pair value attached at creation
//   - Status: The lifecycle state (New, InDelivery, Completed, Rejected)
//
// Key business rules:
//   - Orders must have a positive, ledger-assigned identifier
//   - Status transitions are unrestricted by design; Completed/Rejected trigger
//     the cascade release of the bound drone (performed by the dispatch service)
//   - The drone binding is a lookup key only; the fleet registry owns the drone
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
