package commands_test

import (
	"testing"

	"railmail/internal/core/application/usecases/commands"
	"railmail/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithdrawParcelCommand(t *testing.T) {
	t.Run("creates_command_with_valid_id", func(t *testing.T) {
		parcelID := kernel.NewUUID()

		cmd, err := commands.NewWithdrawParcelCommand(parcelID)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.ParcelID().IsEqual(parcelID))
	})

	t.Run("rejects_invalid_id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewWithdrawParcelCommand(invalidID)

		require.Error(t, err)
	})

	t.Run("zero_value_command_is_invalid", func(t *testing.T) {
		var cmd commands.WithdrawParcelCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrWithdrawParcelCommandIsNotConstructed)
	})
}
