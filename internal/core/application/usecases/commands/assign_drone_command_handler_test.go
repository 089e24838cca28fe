package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dronedash/internal/core/application/usecases/commands"
	"dronedash/internal/core/domain/model/drone"
	"dronedash/internal/core/domain/model/order"
	"dronedash/internal/core/domain/services"
	"dronedash/internal/pkg/errs"
)

func newDrone(t *testing.T, id int, name string) *drone.Drone {
	t.Helper()
	d, err := drone.NewDrone(id, name)
	require.NoError(t, err)
	return d
}

func newOrder(t *testing.T, id int) *order.Order {
	t.Helper()
	o, err := order.NewOrder(id, order.NewCustomer("Jan", "Kowalski"), "Warszawa", "ul.Lipowa")
	require.NoError(t, err)
	return o
}

func TestAssignDroneCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	cmd, err := commands.NewAssignDroneCommand(1, 1)
	require.NoError(t, err)

	d := newDrone(t, 1, "Bob")
	o := newOrder(t, 1)

	mockFleet := new(MockFleetRegistry)
	mockOrders := new(MockOrderLedger)
	mockFleet.On("Get", ctx, 1).Return(d, nil).Once()
	mockOrders.On("Get", ctx, 1).Return(o, nil).Once()
	mockOrders.On("Update", ctx, o).Return(nil).Once()
	mockFleet.On("Update", ctx, d).Return(nil).Once()

	handler := commands.NewAssignDroneCommandHandler(mockFleet, mockOrders)

	// Act
	result, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, result.DroneID)
	assert.Equal(t, "Bob", result.DroneName)
	assert.Equal(t, 1, result.OrderID)

	assert.Equal(t, drone.Delivery, d.Status())
	require.NotNil(t, o.DroneID())
	assert.Equal(t, 1, *o.DroneID())
	assert.Equal(t, order.New, o.Status())
	mockFleet.AssertExpectations(t)
	mockOrders.AssertExpectations(t)
}

func TestAssignDroneCommandHandler_Handle_DroneNotFound(t *testing.T) {
	// Arrange
	ctx := context.Background()
	cmd, err := commands.NewAssignDroneCommand(99, 1)
	require.NoError(t, err)

	mockFleet := new(MockFleetRegistry)
	mockOrders := new(MockOrderLedger)
	mockFleet.On("Get", ctx, 99).Return(nil, errs.NewObjectNotFoundError("droneId", 99)).Once()

	handler := commands.NewAssignDroneCommandHandler(mockFleet, mockOrders)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	assert.ErrorIs(t, err, commands.ErrDroneNotFound)
	mockOrders.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestAssignDroneCommandHandler_Handle_OrderNotFound(t *testing.T) {
	// Arrange
	ctx := context.Background()
	cmd, err := commands.NewAssignDroneCommand(1, 55)
	require.NoError(t, err)

	mockFleet := new(MockFleetRegistry)
	mockOrders := new(MockOrderLedger)
	mockFleet.On("Get", ctx, 1).Return(newDrone(t, 1, "Bob"), nil).Once()
	mockOrders.On("Get", ctx, 55).Return(nil, errs.NewObjectNotFoundError("orderId", 55)).Once()

	handler := commands.NewAssignDroneCommandHandler(mockFleet, mockOrders)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	assert.ErrorIs(t, err, commands.ErrOrderNotFound)
	mockFleet.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAssignDroneCommandHandler_Handle_DroneBusy(t *testing.T) {
	// Arrange
	ctx := context.Background()
	cmd, err := commands.NewAssignDroneCommand(1, 1)
	require.NoError(t, err)

	d := newDrone(t, 1, "Bob")
	require.NoError(t, d.SetStatus(drone.Delivery))
	o := newOrder(t, 1)

	mockFleet := new(MockFleetRegistry)
	mockOrders := new(MockOrderLedger)
	mockFleet.On("Get", ctx, 1).Return(d, nil).Once()
	mockOrders.On("Get", ctx, 1).Return(o, nil).Once()

	handler := commands.NewAssignDroneCommandHandler(mockFleet, mockOrders)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	assert.ErrorIs(t, err, services.ErrDroneBusy)
	assert.False(t, o.HasDrone())
	mockOrders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	mockFleet.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
