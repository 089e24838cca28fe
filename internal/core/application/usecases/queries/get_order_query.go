package queries

import (
	"context"
	"errors"
	"fmt"

	"dronedash/internal/pkg/errs"
	"dronedash/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order read model by identifier.
type GetOrderQuery struct {
	orderID int

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order. The id must be positive.
func NewGetOrderQuery(orderID int) (GetOrderQuery, error) {
	if orderID <= 0 {
		return GetOrderQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"orderID", fmt.Errorf("%d is not greater than 0", orderID),
		)
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order identifier from the query.
func (q GetOrderQuery) OrderID() int {
	return q.orderID
}

// GetOrderQueryHandler resolves a single order lookup.
// An unknown id surfaces as an error unwrapping to errs.ErrObjectNotFound.
type GetOrderQueryHandler struct {
	orders OrderReader
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(orders OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

// Handle executes the lookup and converts the order into a read model.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	return OrderResponse{
		ID:       o.ID(),
		Customer: o.Customer().FullName(),
		City:     o.City(),
		Street:   o.Street(),
		Status:   o.Status(),
		DroneID:  o.DroneID(),
	}, nil
}
