package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dronedash/internal/core/domain/model/order"
	"dronedash/internal/pkg/errs"
)

func createValidOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(1, order.NewCustomer("Jan", "Kowalski"), "Warszawa", "ul.Lipowa")
	require.NoError(t, err)
	require.NotNil(t, o)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order with valid parameters", func(t *testing.T) {
		customer := order.NewCustomer("Anna", "Nowak")

		o, err := order.NewOrder(7, customer, "Kraków", "ul.Długa")

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.Equal(t, 7, o.ID())
		assert.True(t, customer.IsEqual(o.Customer()))
		assert.Equal(t, "Kraków", o.City())
		assert.Equal(t, "ul.Długa", o.Street())
		assert.Equal(t, order.New, o.Status())
		assert.Nil(t, o.DroneID())
		assert.False(t, o.HasDrone())
	})

	t.Run("should return error for non-positive id", func(t *testing.T) {
		for _, id := range []int{0, -5} {
			o, err := order.NewOrder(id, order.NewCustomer("Jan", "Kowalski"), "Warszawa", "ul.Lipowa")

			require.Error(t, err)
			assert.Nil(t, o)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("content fields are stored as given", func(t *testing.T) {
		o, err := order.NewOrder(1, order.NewCustomer("", ""), "", "")

		require.NoError(t, err)
		assert.Equal(t, "", o.City())
		assert.Equal(t, "", o.Street())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("constructed order is valid", func(t *testing.T) {
		assert.NoError(t, createValidOrder(t).Validate())
	})

	t.Run("zero value order is invalid", func(t *testing.T) {
		var o order.Order
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil order is invalid", func(t *testing.T) {
		var o *order.Order
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_BindDrone(t *testing.T) {
	t.Run("should record the drone id", func(t *testing.T) {
		o := createValidOrder(t)

		require.NoError(t, o.BindDrone(4))

		require.NotNil(t, o.DroneID())
		assert.Equal(t, 4, *o.DroneID())
		assert.True(t, o.HasDrone())
	})

	t.Run("binding does not change the order status", func(t *testing.T) {
		o := createValidOrder(t)

		require.NoError(t, o.BindDrone(4))

		assert.Equal(t, order.New, o.Status())
	})

	t.Run("should overwrite an existing binding", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.BindDrone(4))

		require.NoError(t, o.BindDrone(9))

		assert.Equal(t, 9, *o.DroneID())
	})

	t.Run("should reject non-positive drone ids", func(t *testing.T) {
		o := createValidOrder(t)

		err := o.BindDrone(0)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.False(t, o.HasDrone())
	})

	t.Run("returned pointer is a copy", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.BindDrone(4))

		id := o.DroneID()
		*id = 99

		assert.Equal(t, 4, *o.DroneID())
	})
}

func TestOrder_SetStatus(t *testing.T) {
	t.Run("any valid status is reachable from any other", func(t *testing.T) {
		o := createValidOrder(t)

		transitions := []order.Status{
			order.InDelivery, order.Completed, order.New, order.Rejected, order.InDelivery,
		}
		for _, status := range transitions {
			require.NoError(t, o.SetStatus(status))
			assert.Equal(t, status, o.Status())
		}
	})

	t.Run("closing does not clear the binding", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.BindDrone(4))

		require.NoError(t, o.SetStatus(order.Completed))

		assert.True(t, o.HasDrone())
		assert.Equal(t, 4, *o.DroneID())
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		o := createValidOrder(t)

		err := o.SetStatus(order.Unknown)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.New, o.Status())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	a, err := order.NewOrder(1, order.NewCustomer("Jan", "Kowalski"), "Warszawa", "ul.Lipowa")
	require.NoError(t, err)
	b, err := order.NewOrder(1, order.NewCustomer("Anna", "Nowak"), "Sopot", "ul.Polna")
	require.NoError(t, err)
	c, err := order.NewOrder(2, order.NewCustomer("Jan", "Kowalski"), "Warszawa", "ul.Lipowa")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
