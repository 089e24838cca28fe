package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dronedash/internal/core/domain/model/drone"
	"dronedash/internal/core/domain/model/order"
	"dronedash/internal/core/domain/services"
)

func createValidDrone(t *testing.T) *drone.Drone {
	t.Helper()
	d, err := drone.NewDrone(1, "Bob")
	require.NoError(t, err)
	return d
}

func createValidOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(1, order.NewCustomer("Jan", "Kowalski"), "Warszawa", "ul.Lipowa")
	require.NoError(t, err)
	return o
}

func TestDispatcher_Assign(t *testing.T) {
	t.Run("should bind an inactive drone", func(t *testing.T) {
		dispatcher := services.NewDispatcher()
		d := createValidDrone(t)
		o := createValidOrder(t)

		err := dispatcher.Assign(d, o)

		require.NoError(t, err)
		assert.Equal(t, drone.Delivery, d.Status())
		require.NotNil(t, o.DroneID())
		assert.Equal(t, d.ID(), *o.DroneID())
	})

	t.Run("should not change the order status", func(t *testing.T) {
		dispatcher := services.NewDispatcher()
		d := createValidDrone(t)
		o := createValidOrder(t)
		require.NoError(t, o.SetStatus(order.InDelivery))

		require.NoError(t, dispatcher.Assign(d, o))

		assert.Equal(t, order.InDelivery, o.Status())
	})

	t.Run("should reject a busy drone", func(t *testing.T) {
		for _, status := range []drone.Status{drone.Active, drone.Delivery} {
			dispatcher := services.NewDispatcher()
			d := createValidDrone(t)
			require.NoError(t, d.SetStatus(status))
			o := createValidOrder(t)

			err := dispatcher.Assign(d, o)

			require.Error(t, err)
			assert.ErrorIs(t, err, services.ErrDroneBusy)
			assert.Equal(t, status, d.Status())
			assert.False(t, o.HasDrone())
		}
	})

	t.Run("repeat assignment of the same drone fails", func(t *testing.T) {
		dispatcher := services.NewDispatcher()
		d := createValidDrone(t)
		first := createValidOrder(t)
		second, err := order.NewOrder(2, order.NewCustomer("Anna", "Nowak"), "Sopot", "ul.Polna")
		require.NoError(t, err)

		require.NoError(t, dispatcher.Assign(d, first))
		err = dispatcher.Assign(d, second)

		assert.ErrorIs(t, err, services.ErrDroneBusy)
		assert.False(t, second.HasDrone())
	})

	t.Run("should reject unconstructed aggregates", func(t *testing.T) {
		dispatcher := services.NewDispatcher()

		assert.Error(t, dispatcher.Assign(&drone.Drone{}, createValidOrder(t)))
		assert.Error(t, dispatcher.Assign(createValidDrone(t), &order.Order{}))
	})
}

func TestDispatcher_Close(t *testing.T) {
	t.Run("terminal status releases the bound drone", func(t *testing.T) {
		for _, status := range []order.Status{order.Completed, order.Rejected} {
			dispatcher := services.NewDispatcher()
			d := createValidDrone(t)
			o := createValidOrder(t)
			require.NoError(t, dispatcher.Assign(d, o))

			released, err := dispatcher.Close(o, d, status)

			require.NoError(t, err)
			assert.True(t, released)
			assert.Equal(t, status, o.Status())
			assert.Equal(t, drone.Inactive, d.Status())
		}
	})

	t.Run("release happens whatever state the drone is in", func(t *testing.T) {
		dispatcher := services.NewDispatcher()
		d := createValidDrone(t)
		o := createValidOrder(t)
		require.NoError(t, dispatcher.Assign(d, o))
		require.NoError(t, d.SetStatus(drone.Active))

		released, err := dispatcher.Close(o, d, order.Completed)

		require.NoError(t, err)
		assert.True(t, released)
		assert.Equal(t, drone.Inactive, d.Status())
	})

	t.Run("non-terminal status never touches the drone", func(t *testing.T) {
		for _, status := range []order.Status{order.New, order.InDelivery} {
			dispatcher := services.NewDispatcher()
			d := createValidDrone(t)
			o := createValidOrder(t)
			require.NoError(t, dispatcher.Assign(d, o))

			released, err := dispatcher.Close(o, d, status)

			require.NoError(t, err)
			assert.False(t, released)
			assert.Equal(t, status, o.Status())
			assert.Equal(t, drone.Delivery, d.Status())
		}
	})

	t.Run("terminal status without a binding releases nothing", func(t *testing.T) {
		dispatcher := services.NewDispatcher()
		o := createValidOrder(t)

		released, err := dispatcher.Close(o, nil, order.Rejected)

		require.NoError(t, err)
		assert.False(t, released)
		assert.Equal(t, order.Rejected, o.Status())
	})

	t.Run("released drone is assignable again", func(t *testing.T) {
		dispatcher := services.NewDispatcher()
		d := createValidDrone(t)
		first := createValidOrder(t)
		second, err := order.NewOrder(2, order.NewCustomer("Anna", "Nowak"), "Sopot", "ul.Polna")
		require.NoError(t, err)

		require.NoError(t, dispatcher.Assign(d, first))
		_, err = dispatcher.Close(first, d, order.Rejected)
		require.NoError(t, err)

		require.NoError(t, dispatcher.Assign(d, second))
		assert.Equal(t, drone.Delivery, d.Status())
		assert.Equal(t, d.ID(), *second.DroneID())
	})

	t.Run("invalid status leaves the order untouched", func(t *testing.T) {
		dispatcher := services.NewDispatcher()
		o := createValidOrder(t)

		_, err := dispatcher.Close(o, nil, order.Unknown)

		require.Error(t, err)
		assert.Equal(t, order.New, o.Status())
	})
}
