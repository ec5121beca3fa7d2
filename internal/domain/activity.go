package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UncategorizedLabel is the category reported for activities with no category.
const UncategorizedLabel = "Uncategorized"

// Activity is a costed, categorized item nested under a stop.
// An invalid Cost means free or unknown and counts as zero in sums.
type Activity struct {
	ID        uuid.UUID
	StopID    uuid.UUID
	Title     string
	Cost      decimal.NullDecimal
	Category  string
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CostOrZero returns the activity cost, or zero when it is unset.
func (a Activity) CostOrZero() decimal.Decimal {
	if !a.Cost.Valid {
		return decimal.Zero
	}
	return a.Cost.Decimal
}

// CategoryOrDefault returns the trimmed category or UncategorizedLabel.
func (a Activity) CategoryOrDefault() string {
	if c := strings.TrimSpace(a.Category); c != "" {
		return c
	}
	return UncategorizedLabel
}
