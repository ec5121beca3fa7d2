package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pkordes/travel-planner/internal/domain"
	"github.com/pkordes/travel-planner/internal/repo"
	"github.com/pkordes/travel-planner/internal/timeline"
)

// BudgetService aggregates activity costs across a user's trips.
//
// Each call reads trips, then stops, then activities with independent
// queries and keeps no state between calls. Read errors are returned as-is;
// database reads are never retried.
type BudgetService struct {
	trips      repo.TripRepo
	stops      repo.StopRepo
	activities repo.ActivityRepo
}

// NewBudgetService constructs a BudgetService backed by the provided repos.
func NewBudgetService(trips repo.TripRepo, stops repo.StopRepo, activities repo.ActivityRepo) *BudgetService {
	return &BudgetService{trips: trips, stops: stops, activities: activities}
}

// Overview sums the user's spending for the period.
//
// A trip is pertinent when at least one of its in-period stops has
// activities, or when its own start date is in the period. The second rule
// keeps zero-spend trips that started in the period visible. Trips are
// returned by start date descending, undated trips last.
func (s *BudgetService) Overview(ctx context.Context, userID uuid.UUID, period domain.Period) (domain.BudgetOverview, error) {
	trips, err := s.trips.ListByUser(ctx, userID)
	if err != nil {
		return domain.BudgetOverview{}, fmt.Errorf("service.BudgetService.Overview: %w", err)
	}

	overview := domain.BudgetOverview{TotalSpent: decimal.Zero, Trips: []domain.TripSpend{}}
	for _, trip := range trips {
		spent, hasActivities, err := s.tripSpend(ctx, trip.ID, period)
		if err != nil {
			return domain.BudgetOverview{}, fmt.Errorf("service.BudgetService.Overview: trip %s: %w", trip.ID, err)
		}
		if !hasActivities && !period.Contains(trip.StartDate) {
			continue
		}
		overview.Trips = append(overview.Trips, domain.TripSpend{
			TripID:     trip.ID,
			Title:      trip.Title,
			StartDate:  trip.StartDate,
			EndDate:    trip.EndDate,
			TotalSpent: spent,
		})
		overview.TotalSpent = overview.TotalSpent.Add(spent)
	}

	sort.SliceStable(overview.Trips, func(i, j int) bool {
		return startOrEpoch(overview.Trips[i].StartDate).After(startOrEpoch(overview.Trips[j].StartDate))
	})
	overview.TripCount = len(overview.Trips)
	return overview, nil
}

// tripSpend sums the activity costs of a trip's in-period stops and reports
// whether any such stop had activities at all.
func (s *BudgetService) tripSpend(ctx context.Context, tripID uuid.UUID, period domain.Period) (decimal.Decimal, bool, error) {
	stops, err := s.stops.ListByTripID(ctx, tripID)
	if err != nil {
		return decimal.Zero, false, err
	}

	total := decimal.Zero
	hasActivities := false
	for _, stop := range stops {
		if !period.Contains(stop.ArrivalAt) {
			continue
		}
		activities, err := s.activities.ListByStopID(ctx, stop.ID)
		if err != nil {
			return decimal.Zero, false, err
		}
		if len(activities) > 0 {
			hasActivities = true
		}
		for _, a := range activities {
			total = total.Add(a.CostOrZero())
		}
	}
	return total, hasActivities, nil
}

// TripBreakdown splits a trip's in-period spending by category and by day.
//
// Only activities with a positive cost contribute, so a category or day made
// up of free activities does not appear. ByCategory is ordered by amount
// descending and ByDay by date ascending, with undated stops last.
func (s *BudgetService) TripBreakdown(ctx context.Context, userID, tripID uuid.UUID, period domain.Period) (domain.BudgetBreakdown, error) {
	if _, err := s.trips.GetByID(ctx, userID, tripID); err != nil {
		return domain.BudgetBreakdown{}, fmt.Errorf("service.BudgetService.TripBreakdown: %w", err)
	}
	stops, err := s.stops.ListByTripID(ctx, tripID)
	if err != nil {
		return domain.BudgetBreakdown{}, fmt.Errorf("service.BudgetService.TripBreakdown: %w", err)
	}

	byCategory := map[string]decimal.Decimal{}
	byDay := map[string]decimal.Decimal{}
	for _, stop := range stops {
		if !period.Contains(stop.ArrivalAt) {
			continue
		}
		activities, err := s.activities.ListByStopID(ctx, stop.ID)
		if err != nil {
			return domain.BudgetBreakdown{}, fmt.Errorf("service.BudgetService.TripBreakdown: stop %s: %w", stop.ID, err)
		}

		day := domain.UndatedLabel
		if stop.ArrivalAt != nil {
			day = timeline.FormatDate(*stop.ArrivalAt)
		}
		for _, a := range activities {
			cost := a.CostOrZero()
			if !cost.IsPositive() {
				continue
			}
			cat := a.CategoryOrDefault()
			byCategory[cat] = byCategory[cat].Add(cost)
			byDay[day] = byDay[day].Add(cost)
		}
	}

	breakdown := domain.BudgetBreakdown{
		ByCategory: make([]domain.CategoryAmount, 0, len(byCategory)),
		ByDay:      make([]domain.DayAmount, 0, len(byDay)),
	}
	for cat, amount := range byCategory {
		breakdown.ByCategory = append(breakdown.ByCategory, domain.CategoryAmount{Category: cat, Amount: amount})
	}
	for day, amount := range byDay {
		breakdown.ByDay = append(breakdown.ByDay, domain.DayAmount{Date: day, Amount: amount})
	}

	sort.Slice(breakdown.ByCategory, func(i, j int) bool {
		a, b := breakdown.ByCategory[i], breakdown.ByCategory[j]
		if c := a.Amount.Cmp(b.Amount); c != 0 {
			return c > 0
		}
		return a.Category < b.Category
	})
	// "2006-01-02" keys order correctly as strings, and "Undated" sorts
	// after every digit-led key.
	sort.Slice(breakdown.ByDay, func(i, j int) bool {
		return breakdown.ByDay[i].Date < breakdown.ByDay[j].Date
	})
	return breakdown, nil
}

func startOrEpoch(t *time.Time) time.Time {
	if t == nil {
		return time.Unix(0, 0).UTC()
	}
	return *t
}
