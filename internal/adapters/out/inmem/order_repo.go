package inmem

import (
	"context"
	"fmt"
	"sync"

	"dronedash/internal/core/domain/model/order"
	"dronedash/internal/pkg/errs"
)

// OrderRepo is the in-memory order ledger. It owns the order id sequence,
// starting at 1, and keeps orders in creation order; orders are never
// deleted. A fresh instance starts empty and resets the sequence.
//
// All methods are safe for concurrent use.
type OrderRepo struct {
	mu     sync.Mutex
	orders []*order.Order
	index  map[int]*order.Order
	nextID int
}

// NewOrderRepo creates an empty order ledger.
func NewOrderRepo() *OrderRepo {
	return &OrderRepo{
		index:  make(map[int]*order.Order),
		nextID: 1,
	}
}

// NextID returns the next order identifier and advances the sequence.
// Drawn ids are never reissued.
func (r *OrderRepo) NextID(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	return id, nil
}

// Add appends an order to the ledger.
// Fails when the order is invalid or its id is already present.
func (r *OrderRepo) Add(_ context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[o.ID()]; exists {
		return errs.NewValueIsInvalidErrorWithCause("order", fmt.Errorf("id %d already exists", o.ID()))
	}

	r.orders = append(r.orders, o)
	r.index[o.ID()] = o
	return nil
}

// Update persists changes to an existing order.
// An unknown id yields an ObjectNotFoundError.
func (r *OrderRepo) Update(_ context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, exists := r.index[o.ID()]
	if !exists {
		return errs.NewObjectNotFoundError("orderId", o.ID())
	}

	if stored != o {
		r.index[o.ID()] = o
		for i, existing := range r.orders {
			if existing.ID() == o.ID() {
				r.orders[i] = o
				break
			}
		}
	}

	return nil
}

// Get retrieves an order by id, or an ObjectNotFoundError when absent.
func (r *OrderRepo) Get(_ context.Context, id int) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, exists := r.index[id]
	if !exists {
		return nil, errs.NewObjectNotFoundError("orderId", id)
	}
	return o, nil
}

// GetAll returns every order in creation order.
func (r *OrderRepo) GetAll(_ context.Context) ([]*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*order.Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}
