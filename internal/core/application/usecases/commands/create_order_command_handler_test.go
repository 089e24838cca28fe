package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dronedash/internal/core/application/usecases/commands"
	"dronedash/internal/core/domain/model/order"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	cmd := commands.NewCreateOrderCommand("Jan", "Kowalski", "Warszawa", "ul.Lipowa")

	mockOrders := new(MockOrderLedger)
	mockOrders.On("NextID", ctx).Return(1, nil).Once()
	mockOrders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	handler := commands.NewCreateOrderCommandHandler(mockOrders)

	// Act
	result, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, result.OrderID)
	assert.Equal(t, "Jan Kowalski", result.Customer)
	assert.Equal(t, "Warszawa", result.City)
	assert.Equal(t, "ul.Lipowa", result.Street)
	assert.Equal(t, order.New, result.Status)
	mockOrders.AssertExpectations(t)

	added := mockOrders.Calls[1].Arguments.Get(1).(*order.Order)
	assert.Equal(t, order.New, added.Status())
	assert.False(t, added.HasDrone())
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	// Arrange
	ctx := context.Background()
	cmd := commands.NewCreateOrderCommand("Jan", "Kowalski", "Warszawa", "ul.Lipowa")

	wantErr := errors.New("ledger unavailable")
	mockOrders := new(MockOrderLedger)
	mockOrders.On("NextID", ctx).Return(1, nil).Once()
	mockOrders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(wantErr).Once()

	handler := commands.NewCreateOrderCommandHandler(mockOrders)

	// Act
	_, err := handler.Handle(ctx, cmd)

	// Assert
	assert.ErrorIs(t, err, wantErr)
	mockOrders.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	handler := commands.NewCreateOrderCommandHandler(new(MockOrderLedger))

	// Act
	_, err := handler.Handle(context.Background(), commands.CreateOrderCommand{})

	// Assert
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
