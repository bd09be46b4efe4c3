// Package workdays counts working days in inclusive calendar date ranges,
// excluding a configurable weekend set.
package workdays

import (
	"errors"
	"time"
)

var ErrInvalidRange = errors.New("start date is after end date")

// DefaultWeekend is the Saudi working week: Friday and Saturday off.
var DefaultWeekend = []time.Weekday{time.Friday, time.Saturday}

// Calculator counts working days between calendar dates. The zero value is
// not usable; construct with NewCalculator.
type Calculator struct {
	weekend map[time.Weekday]bool
}

// NewCalculator returns a Calculator excluding the given weekend days.
// An empty weekendDays falls back to DefaultWeekend.
func NewCalculator(weekendDays []time.Weekday) *Calculator {
	if len(weekendDays) == 0 {
		weekendDays = DefaultWeekend
	}
	weekend := make(map[time.Weekday]bool, len(weekendDays))
	for _, day := range weekendDays {
		weekend[day] = true
	}
	return &Calculator{weekend: weekend}
}

// IsWeekend reports whether day belongs to the configured weekend.
func (c *Calculator) IsWeekend(day time.Weekday) bool {
	return c.weekend[day]
}

// Count returns the number of days in [start, end] inclusive whose weekday is
// not part of the weekend set. Time-of-day and timezone on the inputs carry no
// significance; only the calendar date is considered. Returns ErrInvalidRange
// when start is after end.
func (c *Calculator) Count(start, end time.Time) (int, error) {
	start = truncateToDate(start)
	end = truncateToDate(end)

	if start.After(end) {
		return 0, ErrInvalidRange
	}

	// Leave ranges are bounded to at most a few hundred days, so walking the
	// range day by day is fine.
	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if !c.weekend[d.Weekday()] {
			count++
		}
	}
	return count, nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
