package parcel_test

import (
	"testing"

	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStatus(t *testing.T) {
	testCases := []struct {
		current  parcel.Status
		expected parcel.Status
	}{
		{parcel.StatusPending, parcel.StatusPickedUp},
		{parcel.StatusPickedUp, parcel.StatusInTransit},
		{parcel.StatusInTransit, parcel.StatusOutForDelivery},
		{parcel.StatusOutForDelivery, parcel.StatusDelivered},
		{parcel.StatusDelivered, parcel.StatusDelivered},
		{parcel.StatusCancelled, parcel.StatusPending},
		{parcel.StatusUnknown, parcel.StatusUnknown},
		{parcel.Status(42), parcel.Status(42)},
	}

	for _, tc := range testCases {
		t.Run(tc.current.String(), func(t *testing.T) {
			assert.Equal(t, tc.expected, parcel.NextStatus(tc.current))
		})
	}
}

func TestNextStatus_DeliveredIsIdempotent(t *testing.T) {
	s := parcel.StatusDelivered
	for range 3 {
		s = parcel.NextStatus(s)
	}

	assert.Equal(t, parcel.StatusDelivered, s)
}

func TestParseStatus(t *testing.T) {
	for _, s := range parcel.AllStatuses() {
		parsed, err := parcel.ParseStatus(s.String())

		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := parcel.ParseStatus("lost")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = parcel.ParseStatus("unknown")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range parcel.AllStatuses() {
		assert.NoError(t, s.Validate())
	}

	assert.IsType(t, &errs.ValueIsInvalidError{}, parcel.StatusUnknown.Validate())
	assert.IsType(t, &errs.ValueIsInvalidError{}, parcel.Status(99).Validate())
}

func TestStatus_Advance(t *testing.T) {
	t.Run("follows the delivery path", func(t *testing.T) {
		next, err := parcel.StatusOutForDelivery.Advance()

		require.NoError(t, err)
		assert.Equal(t, parcel.StatusDelivered, next)
	})

	t.Run("delivered stays delivered", func(t *testing.T) {
		next, err := parcel.StatusDelivered.Advance()

		require.NoError(t, err)
		assert.Equal(t, parcel.StatusDelivered, next)
	})

	t.Run("cancelled must be resumed instead", func(t *testing.T) {
		_, err := parcel.StatusCancelled.Advance()

		require.ErrorIs(t, err, errs.ErrInvalidStateTransfer)
	})

	t.Run("unknown is rejected", func(t *testing.T) {
		_, err := parcel.StatusUnknown.Advance()

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Cancel(t *testing.T) {
	for _, s := range []parcel.Status{
		parcel.StatusPending,
		parcel.StatusPickedUp,
		parcel.StatusInTransit,
		parcel.StatusOutForDelivery,
	} {
		next, err := s.Cancel()

		require.NoError(t, err, s.String())
		assert.Equal(t, parcel.StatusCancelled, next)
	}

	for _, s := range []parcel.Status{parcel.StatusDelivered, parcel.StatusCancelled} {
		_, err := s.Cancel()

		require.ErrorIs(t, err, errs.ErrInvalidStateTransfer, s.String())
	}
}

func TestStatus_Resume(t *testing.T) {
	next, err := parcel.StatusCancelled.Resume()

	require.NoError(t, err)
	assert.Equal(t, parcel.StatusPending, next)

	for _, s := range []parcel.Status{parcel.StatusPending, parcel.StatusDelivered, parcel.StatusInTransit} {
		_, err = s.Resume()

		require.ErrorIs(t, err, errs.ErrInvalidStateTransfer, s.String())
	}
}

func TestParseSize(t *testing.T) {
	for _, name := range []string{"small", "medium", "large", "extra_large"} {
		size, err := parcel.ParseSize(name)

		require.NoError(t, err)
		assert.Equal(t, name, size.String())
		assert.NoError(t, size.Validate())
	}

	size, err := parcel.ParseSize("huge")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, parcel.SizeUnknown, size)
	assert.Error(t, size.Validate())
}
