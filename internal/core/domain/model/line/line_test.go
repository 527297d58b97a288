package line_test

import (
	"testing"

	"railmail/internal/core/domain/model/kernel"
	"railmail/internal/core/domain/model/line"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLine(t *testing.T) {
	t.Run("creates_line_with_valid_params", func(t *testing.T) {
		id := kernel.NewUUID()

		l, err := line.NewLine(id, "Northern", "coastal route")

		require.NoError(t, err)
		require.NoError(t, l.Validate())
		assert.True(t, l.ID().IsEqual(id))
		assert.Equal(t, "Northern", l.Name())
		assert.Equal(t, "coastal route", l.Description())
	})

	t.Run("allows_empty_description", func(t *testing.T) {
		l, err := line.NewLine(kernel.NewUUID(), "Southern", "")

		require.NoError(t, err)
		assert.Empty(t, l.Description())
	})

	t.Run("rejects_empty_name", func(t *testing.T) {
		_, err := line.NewLine(kernel.NewUUID(), "", "")

		require.Error(t, err)
	})

	t.Run("rejects_zero_value_id", func(t *testing.T) {
		var id kernel.UUID
		_, err := line.NewLine(id, "Northern", "")

		require.Error(t, err)
	})
}

func TestLine_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var l line.Line
		require.ErrorIs(t, l.Validate(), line.ErrLineIsNotConstructed)
	})

	t.Run("nil_is_invalid", func(t *testing.T) {
		var l *line.Line
		require.ErrorIs(t, l.Validate(), line.ErrLineIsNotConstructed)
	})
}

func TestLine_ChangeDescription(t *testing.T) {
	l, err := line.NewLine(kernel.NewUUID(), "Northern", "old")
	require.NoError(t, err)

	l.ChangeDescription("new")

	assert.Equal(t, "new", l.Description())
}

func TestLine_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	a, err := line.RestoreLine(id, "Northern", "")
	require.NoError(t, err)
	b, err := line.RestoreLine(id, "Renamed", "different attributes, same identity")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(nil))
}
