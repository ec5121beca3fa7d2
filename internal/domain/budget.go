package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetOverview is the per-period spending summary across a user's trips.
type BudgetOverview struct {
	TotalSpent decimal.Decimal
	TripCount  int
	Trips      []TripSpend
}

// TripSpend is one pertinent trip in a BudgetOverview.
type TripSpend struct {
	TripID     uuid.UUID
	Title      string
	StartDate  *time.Time
	EndDate    *time.Time
	TotalSpent decimal.Decimal
}

// BudgetBreakdown splits a single trip's in-period spend by category and day.
type BudgetBreakdown struct {
	ByCategory []CategoryAmount
	ByDay      []DayAmount
}

// CategoryAmount is the summed cost for one activity category.
type CategoryAmount struct {
	Category string
	Amount   decimal.Decimal
}

// DayAmount is the summed cost for one calendar day ("2006-01-02" or UndatedLabel).
type DayAmount struct {
	Date   string
	Amount decimal.Decimal
}

// UndatedLabel is the day key used for stops without an arrival date.
const UndatedLabel = "Undated"
