package errs_test

import (
	"errors"
	"testing"

	"railmail/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without_cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("trainId", "abc-123")

		assert.Equal(t, "trainId", err.ParamName)
		assert.Equal(t, "abc-123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: abc-123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("with_cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewObjectNotFoundErrorWithCause("lineId", "456", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: lineId, ID is: 456 (cause: connection refused)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("without_cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("weight")

		assert.Equal(t, "weight", err.ParamName)
		assert.Equal(t, "value is invalid: weight", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("with_cause", func(t *testing.T) {
		cause := errors.New("-3 is not greater than 0")
		err := errs.NewValueIsInvalidErrorWithCause("weight", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: weight (cause: -3 is not greater than 0)", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("formats_bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("margin", -0.5, 0, 1)

		assert.Equal(t, "value is invalid: -0.5 is margin, min value is 0, max value is 1", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("sanitizes_newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("label", "mail\nbag", 0, 10)

		assert.Contains(t, err.Error(), "mail bag")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("name")

	assert.Equal(t, "value is required: name", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	withCause := errs.NewValueIsRequiredErrorWithCause("name", errors.New("empty payload"))
	assert.Equal(t, "value is required: name (cause: empty payload)", withCause.Error())
}

func TestVersionIsInvalidError(t *testing.T) {
	cause := errors.New("stale aggregate")
	err := errs.NewVersionIsInvalidError("train", cause)

	assert.Equal(t, "version is invalid: train (cause: stale aggregate)", err.Error())
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "version is invalid", errs.ErrVersionIsInvalid.Error())
}
