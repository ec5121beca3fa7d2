package domain

import (
	"time"

	"github.com/google/uuid"
)

// DayGroup is one calendar day of a trip's itinerary.
// DayNumber is 1 on the trip's start date.
type DayGroup struct {
	DayNumber int
	Date      time.Time
	Stops     []StopWithActivities
}

// LaneAssignment maps dated trips to non-overlapping display lanes.
// Trips missing a start or end date have no entry in LaneOf.
type LaneAssignment struct {
	LaneOf    map[uuid.UUID]int
	LaneCount int
}
