//go:build unit

package reservation_test

import (
	"testing"

	"toolshed/internal/domain/reservation"
	"toolshed/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	dates := mustRange(t, "2026-06-10", "2026-06-15")
	tool := reservation.ToolSpec{ID: 7, AdminID: 1}

	t.Run("member request yields pending reservation", func(t *testing.T) {
		res, err := reservation.NewRequest(tool, 42, dates)
		require.NoError(t, err)

		assert.Equal(t, int64(7), res.ToolID())
		assert.Equal(t, int64(42), res.UserID())
		assert.Equal(t, reservation.StatusPending, res.Status())
		assert.Equal(t, dates, res.Dates())
		assert.Nil(t, res.ApprovedAt())
		assert.Nil(t, res.ApprovedBy())
	})

	t.Run("owner cannot reserve own tool", func(t *testing.T) {
		res, err := reservation.NewRequest(tool, 1, dates)
		assert.ErrorIs(t, err, errs.ErrOwnTool)
		assert.Nil(t, res)
	})
}
