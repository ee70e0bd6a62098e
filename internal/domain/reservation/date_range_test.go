//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"toolshed/internal/domain/reservation"
	"toolshed/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func mustRange(t *testing.T, start, end string) reservation.DateRange {
	t.Helper()
	r, err := reservation.ParseDateRange(start, end)
	require.NoError(t, err)
	return r
}

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		errIs error
	}{
		{name: "valid range", start: "2026-06-01", end: "2026-06-05"},
		{name: "single night", start: "2026-06-01", end: "2026-06-02"},
		{name: "start equals end", start: "2026-06-01", end: "2026-06-01", errIs: errs.ErrInvalidDates},
		{name: "start after end", start: "2026-06-05", end: "2026-06-01", errIs: errs.ErrInvalidDates},
		{name: "garbage start", start: "not-a-date", end: "2026-06-01", errIs: errs.ErrInvalidDates},
		{name: "garbage end", start: "2026-06-01", end: "06/05/2026", errIs: errs.ErrInvalidDates},
		{name: "empty", start: "", end: "", errIs: errs.ErrInvalidDates},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := reservation.ParseDateRange(tt.start, tt.end)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.start, r.Start().Format(reservation.DateLayout))
			assert.Equal(t, tt.end, r.End().Format(reservation.DateLayout))
		})
	}
}

func TestNewDateRangeTruncatesTime(t *testing.T) {
	start := time.Date(2026, 6, 1, 15, 30, 0, 0, time.UTC)
	end := time.Date(2026, 6, 3, 9, 0, 0, 0, time.UTC)

	r, err := reservation.NewDateRange(start, end)
	require.NoError(t, err)

	assert.Equal(t, date("2026-06-01"), r.Start())
	assert.Equal(t, date("2026-06-03"), r.End())
}

func TestDateRangeOverlaps(t *testing.T) {
	base := mustRange(t, "2026-06-10", "2026-06-15")

	tests := []struct {
		name    string
		other   reservation.DateRange
		overlap bool
	}{
		{name: "identical", other: mustRange(t, "2026-06-10", "2026-06-15"), overlap: true},
		{name: "contained", other: mustRange(t, "2026-06-11", "2026-06-14"), overlap: true},
		{name: "containing", other: mustRange(t, "2026-06-01", "2026-06-30"), overlap: true},
		{name: "partial left", other: mustRange(t, "2026-06-05", "2026-06-10"), overlap: true},
		{name: "partial right", other: mustRange(t, "2026-06-15", "2026-06-20"), overlap: true},
		{name: "touching start boundary", other: mustRange(t, "2026-06-08", "2026-06-10"), overlap: true},
		{name: "touching end boundary", other: mustRange(t, "2026-06-15", "2026-06-18"), overlap: true},
		{name: "before", other: mustRange(t, "2026-06-01", "2026-06-09"), overlap: false},
		{name: "after", other: mustRange(t, "2026-06-16", "2026-06-20"), overlap: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlap, base.Overlaps(tt.other))
			// Overlap is symmetric
			assert.Equal(t, tt.overlap, tt.other.Overlaps(base))
		})
	}
}

func TestDateRangeContains(t *testing.T) {
	r := mustRange(t, "2026-06-10", "2026-06-15")

	assert.True(t, r.Contains(date("2026-06-10")), "start day is included")
	assert.True(t, r.Contains(date("2026-06-15")), "end day is included")
	assert.True(t, r.Contains(date("2026-06-12")))
	assert.False(t, r.Contains(date("2026-06-09")))
	assert.False(t, r.Contains(date("2026-06-16")))
}

func TestDateRangeString(t *testing.T) {
	r := mustRange(t, "2026-06-10", "2026-06-15")
	assert.Equal(t, "2026-06-10/2026-06-15", r.String())
}
