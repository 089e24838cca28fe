package commands_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"dronedash/internal/core/domain/model/drone"
	"dronedash/internal/core/domain/model/order"
)

// Mock implementations for testing.
type MockFleetRegistry struct {
	mock.Mock
}

func (m *MockFleetRegistry) NextID(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockFleetRegistry) Add(ctx context.Context, d *drone.Drone) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockFleetRegistry) Update(ctx context.Context, d *drone.Drone) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockFleetRegistry) Get(ctx context.Context, id int) (*drone.Drone, error) {
	args := m.Called(ctx, id)
	if d, ok := args.Get(0).(*drone.Drone); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFleetRegistry) GetAll(ctx context.Context, filter *drone.Status) ([]*drone.Drone, error) {
	args := m.Called(ctx, filter)
	if drones, ok := args.Get(0).([]*drone.Drone); ok {
		return drones, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockOrderLedger struct {
	mock.Mock
}

func (m *MockOrderLedger) NextID(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockOrderLedger) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderLedger) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderLedger) Get(ctx context.Context, id int) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderLedger) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if orders, ok := args.Get(0).([]*order.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}
