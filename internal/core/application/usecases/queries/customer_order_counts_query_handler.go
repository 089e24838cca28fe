package queries

import (
	"context"
)

// CustomerOrderCountsQueryHandler computes the per-customer order totals.
type CustomerOrderCountsQueryHandler struct {
	orders OrderReader
}

// NewCustomerOrderCountsQueryHandler creates a handler for the customer
// statistics query.
func NewCustomerOrderCountsQueryHandler(orders OrderReader) CustomerOrderCountsQueryHandler {
	return CustomerOrderCountsQueryHandler{orders: orders}
}

// Handle executes the query. Returns a map keyed by "First Last" full name
// with the number of orders that customer has placed, all statuses included.
func (h CustomerOrderCountsQueryHandler) Handle(
	ctx context.Context,
	query CustomerOrderCountsQuery,
) (map[string]int, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(orders))
	for _, o := range orders {
		counts[o.Customer().FullName()]++
	}

	return counts, nil
}
