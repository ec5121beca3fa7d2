package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/travel-planner/internal/domain"
	"github.com/pkordes/travel-planner/internal/repo"
	"github.com/pkordes/travel-planner/internal/timeline"
)

// ItineraryService builds the day-by-day timeline of a trip.
type ItineraryService struct {
	trips      repo.TripRepo
	stops      repo.StopRepo
	activities repo.ActivityRepo
}

// NewItineraryService constructs an ItineraryService backed by the provided repos.
func NewItineraryService(trips repo.TripRepo, stops repo.StopRepo, activities repo.ActivityRepo) *ItineraryService {
	return &ItineraryService{trips: trips, stops: stops, activities: activities}
}

// Timeline returns the trip's dated stops grouped by calendar day, each with
// its activities nested in position order. Undated stops are not part of the
// timeline.
func (s *ItineraryService) Timeline(ctx context.Context, userID, tripID uuid.UUID) (domain.Trip, []domain.DayGroup, error) {
	trip, err := s.trips.GetByID(ctx, userID, tripID)
	if err != nil {
		return domain.Trip{}, nil, fmt.Errorf("service.ItineraryService.Timeline: %w", err)
	}
	stops, err := loadStops(ctx, s.stops, s.activities, tripID)
	if err != nil {
		return domain.Trip{}, nil, fmt.Errorf("service.ItineraryService.Timeline: %w", err)
	}
	return trip, timeline.GroupByDay(stops, trip.StartDate), nil
}

// loadStops reads a trip's stops and each stop's activities, both in
// persisted order.
func loadStops(ctx context.Context, stops repo.StopRepo, activities repo.ActivityRepo, tripID uuid.UUID) ([]domain.StopWithActivities, error) {
	list, err := stops.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.StopWithActivities, 0, len(list))
	for _, st := range list {
		acts, err := activities.ListByStopID(ctx, st.ID)
		if err != nil {
			return nil, fmt.Errorf("stop %s: %w", st.ID, err)
		}
		if acts == nil {
			acts = []domain.Activity{}
		}
		out = append(out, domain.StopWithActivities{Stop: st, Activities: acts})
	}
	return out, nil
}
