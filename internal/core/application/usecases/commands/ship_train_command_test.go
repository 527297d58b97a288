package commands_test

import (
	"testing"

	"railmail/internal/core/application/usecases/commands"
	"railmail/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShipTrainCommand(t *testing.T) {
	t.Run("creates_command_without_rate_override", func(t *testing.T) {
		trainID := kernel.NewUUID()
		lineID := kernel.NewUUID()

		cmd, err := commands.NewShipTrainCommand(trainID, lineID, nil)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.TrainID().IsEqual(trainID))
		assert.True(t, cmd.LineID().IsEqual(lineID))
		assert.Nil(t, cmd.CostPerWeight())
	})

	t.Run("creates_command_with_rate_override", func(t *testing.T) {
		rate := 5.5

		cmd, err := commands.NewShipTrainCommand(kernel.NewUUID(), kernel.NewUUID(), &rate)

		require.NoError(t, err)
		require.NotNil(t, cmd.CostPerWeight())
		assert.InDelta(t, 5.5, *cmd.CostPerWeight(), 0)
	})

	t.Run("rejects_non_positive_rate_override", func(t *testing.T) {
		rate := 0.0

		_, err := commands.NewShipTrainCommand(kernel.NewUUID(), kernel.NewUUID(), &rate)

		require.ErrorIs(t, err, commands.ErrCostPerWeightIsInvalid)
	})

	t.Run("rejects_zero_value_ids", func(t *testing.T) {
		var empty kernel.UUID

		_, err := commands.NewShipTrainCommand(empty, kernel.NewUUID(), nil)
		require.Error(t, err)

		_, err = commands.NewShipTrainCommand(kernel.NewUUID(), empty, nil)
		require.Error(t, err)
	})

	t.Run("zero_value_command_is_invalid", func(t *testing.T) {
		var cmd commands.ShipTrainCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrShipTrainCommandIsNotConstructed)
	})
}
