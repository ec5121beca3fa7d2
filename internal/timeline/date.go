// Package timeline holds the pure calendar computations behind the itinerary
// and calendar views: day grouping and lane assignment.
// All arithmetic is done on UTC calendar dates so time-of-day and DST never
// shift a stop onto a neighbouring day.
package timeline

import "time"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// CalendarDate truncates t to midnight UTC of its UTC calendar day.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from a to b.
// It is negative when b is before a.
func DaysBetween(a, b time.Time) int {
	// Both operands are UTC midnights, so the difference is an exact
	// multiple of 24h.
	return int(CalendarDate(b).Sub(CalendarDate(a)).Hours() / 24)
}

// FormatDate renders t's UTC calendar date as "2006-01-02".
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
