package ports

import (
	"context"

	"dronedash/internal/core/domain/model/order"
)

// OrderRepository defines the ledger contract for order aggregates.
// The ledger is the exclusive owner of order records and the order id
// sequence; orders are kept in creation order and never deleted.
type OrderRepository interface {
	// NextID returns the next order identifier and advances the sequence.
	// Identifiers are strictly increasing and never reused or reset for the
	// lifetime of the ledger instance.
	NextID(ctx context.Context) (int, error)

	// Add persists a new order aggregate in the ledger.
	// The order must be valid and its id must not already exist.
	Add(ctx context.Context, o *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Returns an ObjectNotFoundError when the id is unknown.
	Update(ctx context.Context, o *order.Order) error

	// Get retrieves an order aggregate by its identifier.
	// Returns an ObjectNotFoundError when the id is unknown.
	Get(ctx context.Context, id int) (*order.Order, error)

	// GetAll retrieves every order in creation order.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
