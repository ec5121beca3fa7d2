// Package domain contains the core data types for the travel planner.
// It is imported by every other internal package (repo, service, handler)
// and depends only on uuid and decimal.
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Trip is the top-level travel plan owned by a single user.
// Stops belong to a trip; deleting a trip cascades to its stops.
//
// StartDate and EndDate are calendar dates and may be nil while the
// trip is still being planned. Budget is advisory and never enforced.
type Trip struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description string
	StartDate   *time.Time
	EndDate     *time.Time
	Budget      decimal.NullDecimal
	IsPublic    bool
	Latitude    *float64
	Longitude   *float64
	Likes       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
