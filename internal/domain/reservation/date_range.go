package reservation

import (
	"fmt"
	"time"

	"toolshed/internal/pkg/errs"
)

// DateLayout is the wire format for reservation dates. Reservations carry
// date-only granularity; no time of day.
const DateLayout = "2006-01-02"

// DateRange is a calendar date range with start strictly before end.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	start = truncateToDate(start)
	end = truncateToDate(end)
	if !start.Before(end) {
		return DateRange{}, errs.ErrInvalidDates
	}
	return DateRange{start: start, end: end}, nil
}

// ParseDateRange builds a range from wire-format date strings.
func ParseDateRange(startStr, endStr string) (DateRange, error) {
	start, err := time.Parse(DateLayout, startStr)
	if err != nil {
		return DateRange{}, errs.ErrInvalidDates
	}
	end, err := time.Parse(DateLayout, endStr)
	if err != nil {
		return DateRange{}, errs.ErrInvalidDates
	}
	return NewDateRange(start, end)
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }

// Overlaps reports whether two ranges compete for the same tool days:
// NOT (a.end < b.start OR a.start > b.end).
func (r DateRange) Overlaps(other DateRange) bool {
	return !(r.end.Before(other.start) || r.start.After(other.end))
}

// Contains reports whether the given day falls inside the range,
// boundaries included.
func (r DateRange) Contains(day time.Time) bool {
	day = truncateToDate(day)
	return !day.Before(r.start) && !day.After(r.end)
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s/%s", r.start.Format(DateLayout), r.end.Format(DateLayout))
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
