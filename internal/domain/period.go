package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// PeriodWildcard is the filter value meaning "no filtering on this axis".
const PeriodWildcard = "All"

// Period is a (year, month) filter. A nil component is the wildcard.
type Period struct {
	Year  *int
	Month *int
}

// AllTime is the period with both axes unfiltered.
var AllTime = Period{}

// ParsePeriod builds a Period from raw query values. An empty string or
// "All" (any casing) leaves that axis unfiltered. Anything else must be a
// year in 1..9999 or a month in 1..12; otherwise ErrValidation is returned.
func ParsePeriod(year, month string) (Period, error) {
	var p Period
	y, err := parsePeriodPart(year, "year", 1, 9999)
	if err != nil {
		return Period{}, err
	}
	m, err := parsePeriodPart(month, "month", 1, 12)
	if err != nil {
		return Period{}, err
	}
	p.Year, p.Month = y, m
	return p, nil
}

func parsePeriodPart(raw, name string, lo, hi int) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, PeriodWildcard) {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a number or %q", ErrValidation, name, PeriodWildcard)
	}
	if n < lo || n > hi {
		return nil, fmt.Errorf("%w: %s must be between %d and %d", ErrValidation, name, lo, hi)
	}
	return &n, nil
}

// IsAll reports whether neither axis is filtered.
func (p Period) IsAll() bool {
	return p.Year == nil && p.Month == nil
}

// Contains reports whether t falls in the period, using t's UTC calendar date.
// A nil t only matches the unfiltered period.
func (p Period) Contains(t *time.Time) bool {
	if p.IsAll() {
		return true
	}
	if t == nil {
		return false
	}
	u := t.UTC()
	if p.Year != nil && u.Year() != *p.Year {
		return false
	}
	if p.Month != nil && int(u.Month()) != *p.Month {
		return false
	}
	return true
}
