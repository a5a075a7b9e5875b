package summaries

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidPeriod = errors.New("invalid period")

// WeeksInMonth splits the month into Monday-start weeks, clipped to the
// month. The last week ends on the first day of the next month. All
// boundaries are midnight UTC.
func WeeksInMonth(year, month int) ([]Week, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be in 1..12, got %d", ErrInvalidPeriod, month)
	}
	if year < 1 || year > 9999 {
		return nil, fmt.Errorf("%w: year must be in 1..9999, got %d", ErrInvalidPeriod, year)
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	weeks := make([]Week, 0, 6)
	for start := first; start.Before(next); {
		end := start.AddDate(0, 0, daysToNextMonday(start))
		if end.After(next) {
			end = next
		}
		weeks = append(weeks, Week{Start: start, End: end})
		start = end
	}

	return weeks, nil
}

// WeekFrom returns the seven day range starting at the given day.
func WeekFrom(start time.Time) Week {
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	return Week{Start: start, End: start.AddDate(0, 0, 7)}
}

func daysToNextMonday(t time.Time) int {
	// days since monday: mon=0 ... sun=6
	sinceMonday := (int(t.Weekday()) + 6) % 7
	return 7 - sinceMonday
}
