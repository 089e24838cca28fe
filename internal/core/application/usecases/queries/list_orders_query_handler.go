package queries

import (
	"context"
)

// ListOrdersQueryHandler retrieves order read models from the order ledger
// in creation order, including the bound drone id when one is set.
type ListOrdersQueryHandler struct {
	orders OrderReader
}

// NewListOrdersQueryHandler creates a handler for order list queries.
func NewListOrdersQueryHandler(orders OrderReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders}
}

// Handle executes the query and converts every order into a read model.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, OrderResponse{
			ID:       o.ID(),
			Customer: o.Customer().FullName(),
			City:     o.City(),
			Street:   o.Street(),
			Status:   o.Status(),
			DroneID:  o.DroneID(),
		})
	}

	return response, nil
}
