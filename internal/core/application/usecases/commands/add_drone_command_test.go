package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dronedash/internal/core/application/usecases/commands"
	"dronedash/internal/core/domain/model/drone"
)

func TestNewAddDroneCommand(t *testing.T) {
	t.Run("should create command with valid name", func(t *testing.T) {
		cmd, err := commands.NewAddDroneCommand("Hermes")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "Hermes", cmd.Name())
	})

	t.Run("should return error for blank name", func(t *testing.T) {
		for _, name := range []string{"", "   ", "\t"} {
			_, err := commands.NewAddDroneCommand(name)

			require.Error(t, err)
			assert.ErrorIs(t, err, drone.ErrNameIsRequired)
		}
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.AddDroneCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrAddDroneCommandIsNotConstructed)
	})
}
