package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dronedash/internal/core/application/usecases/commands"
	"dronedash/internal/pkg/errs"
)

func TestNewAssignDroneCommand(t *testing.T) {
	t.Run("should create command with positive ids", func(t *testing.T) {
		cmd, err := commands.NewAssignDroneCommand(2, 7)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, 2, cmd.DroneID())
		assert.Equal(t, 7, cmd.OrderID())
	})

	t.Run("should return error for non-positive drone id", func(t *testing.T) {
		for _, id := range []int{0, -1} {
			_, err := commands.NewAssignDroneCommand(id, 7)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should return error for non-positive order id", func(t *testing.T) {
		for _, id := range []int{0, -1} {
			_, err := commands.NewAssignDroneCommand(2, id)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.AssignDroneCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrAssignDroneCommandIsNotConstructed)
	})
}
