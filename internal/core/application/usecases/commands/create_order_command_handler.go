package commands

import (
	"context"

	"dronedash/internal/core/domain/model/order"
)

// CreateOrderResult describes a successfully recorded order.
// It is the structured creation event the caller renders for display.
type CreateOrderResult struct {
	OrderID  int
	Customer string
	City     string
	Street   string
	Status   order.Status
}

// CreateOrderCommandHandler handles the business logic for order creation.
// Pulls the next identifier from the order ledger and records the order in
// the New status with no drone bound.
type CreateOrderCommandHandler struct {
	orders OrderLedger
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(orders OrderLedger) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orders: orders,
	}
}

// Handle processes the order creation command.
// Creation never fails on content; only an invalid command or a ledger
// failure can produce an error.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	id, err := h.orders.NextID(ctx)
	if err != nil {
		return CreateOrderResult{}, err
	}

	customer := order.NewCustomer(cmd.FirstName(), cmd.LastName())
	o, err := order.NewOrder(id, customer, cmd.City(), cmd.Street())
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = h.orders.Add(ctx, o); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{
		OrderID:  o.ID(),
		Customer: o.Customer().FullName(),
		City:     o.City(),
		Street:   o.Street(),
		Status:   o.Status(),
	}, nil
}
