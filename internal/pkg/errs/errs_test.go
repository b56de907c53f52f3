package errs_test

import (
	"errors"
	"testing"

	"shift/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("driver", "alice")

		assert.Equal(t, "driver", err.ParamName)
		assert.Equal(t, "alice", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: alice", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("registry is closed")
		err := errs.NewObjectNotFoundErrorWithCause("driver", "alice", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: driver, ID is: alice (cause: registry is closed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("non string ids keep fmt formatting", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestObjectAlreadyExistsError(t *testing.T) {
	t.Run("NewObjectAlreadyExistsError", func(t *testing.T) {
		err := errs.NewObjectAlreadyExistsError("driver", "alice")

		assert.Equal(t, "driver", err.ParamName)
		assert.Equal(t, "alice", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object already exists: alice", err.Error())
		assert.Equal(t, errs.ErrObjectAlreadyExists, err.Unwrap())
	})

	t.Run("NewObjectAlreadyExistsErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicate key")
		err := errs.NewObjectAlreadyExistsErrorWithCause("driver", "alice", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object already exists: param is: driver, ID is: alice (cause: duplicate key)",
			err.Error())
	})

	t.Run("multiline id is flattened", func(t *testing.T) {
		err := errs.NewObjectAlreadyExistsError("driver", "ali\nce")
		assert.Equal(t, "object already exists: ali ce", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("instant")

		assert.Equal(t, "instant", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: instant", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("not RFC 3339")
		err := errs.NewValueIsInvalidErrorWithCause("instant", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: instant (cause: not RFC 3339)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("tip", -2.5, 0, "+Inf")

		assert.Equal(t, "tip", err.ParamName)
		assert.InDelta(t, -2.5, err.Value, 0)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, "+Inf", err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: -2.5 is tip, min value is 0, max value is +Inf", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("tips are never refunded")
		err := errs.NewValueIsOutOfRangeErrorWithCause("tip", -1, 0, 100, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -1 is tip, min value is 0, max value is 100 (cause: tips are never refunded)",
			err.Error())
	})

	t.Run("newlines in values are replaced", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("description", "two\npepperoni", 1, 80)
		assert.Contains(t, err.Error(), "two pepperoni")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("name")

		assert.Equal(t, "name", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: name", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("blank after trimming")
		err := errs.NewValueIsRequiredErrorWithCause("name", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: name (cause: blank after trimming)", err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{errs.ErrObjectNotFound, "object not found"},
		{errs.ErrObjectAlreadyExists, "object already exists"},
		{errs.ErrValueIsInvalid, "value is invalid"},
		{errs.ErrValueIsOutOfRange, "value is out of range"},
		{errs.ErrValueIsRequired, "value is required"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Error(t, tt.err)
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("driver", "bob"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewObjectAlreadyExistsError("driver", "bob"), errs.ErrObjectAlreadyExists)
	require.ErrorIs(t, errs.NewValueIsInvalidError("instant"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("tip", -1, 0, 100), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)

	joined := errors.Join(errs.NewValueIsRequiredError("name"), errs.NewValueIsInvalidError("instant"))
	require.ErrorIs(t, joined, errs.ErrValueIsRequired)
	require.ErrorIs(t, joined, errs.ErrValueIsInvalid)
}
