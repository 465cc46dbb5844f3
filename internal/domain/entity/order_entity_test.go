package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus_Valid(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"Pending", "Processing", "Shipped", "Delivered", "Cancelled"} {
		got, err := ParseStatus(s)
		require.NoError(t, err, s)
		assert.Equal(t, Status(s), got)
	}
}

func TestParseStatus_Invalid(t *testing.T) {
	t.Parallel()

	cases := []string{"", "pending", "PENDING", "Delivered-ish", "Shipped ", "Done"}
	for _, s := range cases {
		_, err := ParseStatus(s)
		require.Error(t, err, "%q should not parse", s)

		var invalid *InvalidStatusError
		require.True(t, errors.As(err, &invalid))
		assert.Equal(t, s, invalid.Value)
		// the error message lists the allowed set
		for _, name := range StatusNames() {
			assert.Contains(t, invalid.Error(), name)
		}
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Parallel()

	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusProcessing.IsTerminal())
	assert.False(t, StatusShipped.IsTerminal())
	assert.True(t, StatusDelivered.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

func TestStatus_CanTransition(t *testing.T) {
	t.Parallel()

	cases := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusProcessing, true},
		{StatusProcessing, StatusShipped, true},
		{StatusShipped, StatusDelivered, true},
		{StatusPending, StatusShipped, false},
		{StatusPending, StatusDelivered, false},
		{StatusDelivered, StatusPending, false},
		{StatusShipped, StatusProcessing, false},
		{StatusPending, StatusCancelled, true},
		{StatusProcessing, StatusCancelled, true},
		{StatusShipped, StatusCancelled, true},
		{StatusDelivered, StatusCancelled, false},
		{StatusCancelled, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}
