package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Stop is an ordered waypoint within a trip.
// Position is user-controlled and unique per trip.
// ArrivalAt and DepartureAt are nil until the traveller schedules them.
type Stop struct {
	ID           uuid.UUID
	TripID       uuid.UUID
	Position     int
	LocationName string
	ArrivalAt    *time.Time
	DepartureAt  *time.Time
	Budget       decimal.NullDecimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// StopWithActivities pairs a stop with its activities in persisted order.
type StopWithActivities struct {
	Stop       Stop
	Activities []Activity
}
