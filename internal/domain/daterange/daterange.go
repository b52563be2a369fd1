package daterange

import (
	"errors"
	"time"
)

const Layout = "2006-01-02"

var (
	ErrInvalidRange       = errors.New("end date must not be before start date")
	ErrMissingDate        = errors.New("start and end dates are required")
	ErrDateInPast         = errors.New("date is before today")
	ErrDayCountOutOfRange = errors.New("rental length is outside the allowed range")
	ErrRangeUnavailable   = errors.New("range overlaps an existing booking")
	ErrMalformedDate      = errors.New("date must be formatted as YYYY-MM-DD")
)

// Date truncates t to a UTC calendar date. All calculators compare dates
// produced by this function only.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func NewDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, ErrMalformedDate
	}
	return t, nil
}

func Format(t time.Time) string {
	return t.Format(Layout)
}

// DaysBetween counts whole days from a to b, both taken as calendar dates.
func DaysBetween(a, b time.Time) int {
	return int(Date(b).Sub(Date(a)).Hours() / 24)
}

// Range is an inclusive span of calendar dates.
type Range struct {
	Start time.Time
	End   time.Time
}

func New(start, end time.Time) (Range, error) {
	if start.IsZero() || end.IsZero() {
		return Range{}, ErrMissingDate
	}
	r := Range{Start: Date(start), End: Date(end)}
	if r.End.Before(r.Start) {
		return Range{}, ErrInvalidRange
	}
	return r, nil
}

// DayCount is inclusive: a same-day rental counts as one day.
func (r Range) DayCount() int {
	return DaysBetween(r.Start, r.End) + 1
}

func (r Range) Contains(t time.Time) bool {
	d := Date(t)
	return !d.Before(r.Start) && !d.After(r.End)
}

func (r Range) Equal(other Range) bool {
	return r.Start.Equal(other.Start) && r.End.Equal(other.End)
}

func (r Range) Overlaps(other Range) bool {
	return !r.End.Before(other.Start) && !other.End.Before(r.Start)
}

// Days lists every date in the range in order.
func (r Range) Days() []time.Time {
	days := make([]time.Time, 0, r.DayCount())
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func (r Range) String() string {
	return Format(r.Start) + ".." + Format(r.End)
}
