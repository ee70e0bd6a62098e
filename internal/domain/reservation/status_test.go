//go:build unit

package reservation_test

import (
	"testing"

	"toolshed/internal/domain/reservation"
	"toolshed/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDecision(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  reservation.Status
		errIs error
	}{
		{name: "approved", input: "approved", want: reservation.StatusApproved},
		{name: "rejected", input: "rejected", want: reservation.StatusRejected},
		{name: "active", input: "active", want: reservation.StatusActive},
		{name: "closed", input: "closed", want: reservation.StatusClosed},
		{name: "pending is not a decision", input: "pending", errIs: errs.ErrInvalidDecision},
		{name: "unknown", input: "cancelled", errIs: errs.ErrInvalidDecision},
		{name: "empty", input: "", errIs: errs.ErrInvalidDecision},
		{name: "case sensitive", input: "Approved", errIs: errs.ErrInvalidDecision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reservation.NewDecision(tt.input)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatusBlocks(t *testing.T) {
	assert.True(t, reservation.StatusApproved.Blocks())
	assert.True(t, reservation.StatusActive.Blocks())
	assert.False(t, reservation.StatusPending.Blocks())
	assert.False(t, reservation.StatusRejected.Blocks())
	assert.False(t, reservation.StatusClosed.Blocks())
}

func TestStatusCloseable(t *testing.T) {
	assert.True(t, reservation.StatusApproved.Closeable())
	assert.True(t, reservation.StatusActive.Closeable())
	assert.False(t, reservation.StatusPending.Closeable())
	assert.False(t, reservation.StatusRejected.Closeable())
	assert.False(t, reservation.StatusClosed.Closeable())
}
