package domain

import "time"

// ExportRow is a single row in the itinerary export.
// It is a flat, denormalized view: one row per activity, with trip and stop
// fields repeated. A trip with no stops yields one row with empty stop and
// activity fields; a stop with no activities yields one row with empty
// activity fields.
type ExportRow struct {
	TripID        string
	TripTitle     string
	TripStartDate string // "2006-01-02", empty when unset
	TripEndDate   string

	StopPosition string
	StopLocation string
	ArrivalAt    *time.Time
	DepartureAt  *time.Time

	ActivityTitle    string
	ActivityCategory string
	ActivityCost     string // fixed two decimals, empty when unset
}
