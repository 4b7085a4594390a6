// Package timesheet holds the pure date/time math for time logs: duration
// derivation from form-style date and time strings, and the canonical display
// rendering. Everything here is referentially transparent and safe for
// concurrent use.
package timesheet

import (
	"math"
	"time"
)

const (
	dateLayout    = "2006-01-02"
	timeLayout    = "15:04"
	displayLayout = "02/01/2006 03:04 PM"

	// DisplayPlaceholder is rendered when the date part is missing or unparseable.
	DisplayPlaceholder = "-"
)

// CombineDateTime merges an ISO calendar date and a 24h clock time into one
// instant. An empty time is treated as midnight. An empty or malformed date
// is an error; the caller decides whether that is fatal.
func CombineDateTime(date, clock string) (time.Time, error) {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, err
	}

	if clock == "" {
		return d, nil
	}

	t, err := time.Parse(timeLayout, clock)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), nil
}

// ComputeDurationHours returns the elapsed interval between the two combined
// instants, rounded to whole hours. A malformed input or an end instant that
// does not strictly exceed the start yields 0 — bad intervals are a
// data-quality signal, not an error.
func ComputeDurationHours(startDate, startTime, endDate, endTime string) int {
	start, err := CombineDateTime(startDate, startTime)
	if err != nil {
		return 0
	}

	end, err := CombineDateTime(endDate, endTime)
	if err != nil {
		return 0
	}

	if !end.After(start) {
		return 0
	}

	return int(math.Round(end.Sub(start).Hours()))
}

// FormatDisplay renders a date+time pair as DD/MM/YYYY hh:mm AM/PM. A missing
// date yields the fixed placeholder; a missing time is treated as midnight.
func FormatDisplay(date, clock string) string {
	instant, err := CombineDateTime(date, clock)
	if err != nil {
		return DisplayPlaceholder
	}

	return instant.Format(displayLayout)
}

// FormatInstant renders an optional instant in the same display format,
// falling back to the placeholder when absent.
func FormatInstant(t *time.Time) string {
	if t == nil {
		return DisplayPlaceholder
	}
	return t.Format(displayLayout)
}
