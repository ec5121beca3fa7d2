package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/travel-planner/internal/domain"
	"github.com/pkordes/travel-planner/internal/repo"
	"github.com/pkordes/travel-planner/internal/timeline"
)

// CalendarService lays a user's trips out for the multi-trip calendar grid.
type CalendarService struct {
	trips repo.TripRepo
}

// NewCalendarService constructs a CalendarService backed by the provided TripRepo.
func NewCalendarService(trips repo.TripRepo) *CalendarService {
	return &CalendarService{trips: trips}
}

// Lanes returns the user's trips together with their lane assignment.
// Trips without both dates are returned but have no lane.
func (s *CalendarService) Lanes(ctx context.Context, userID uuid.UUID) ([]domain.Trip, domain.LaneAssignment, error) {
	trips, err := s.trips.ListByUser(ctx, userID)
	if err != nil {
		return nil, domain.LaneAssignment{}, fmt.Errorf("service.CalendarService.Lanes: %w", err)
	}
	return trips, timeline.AssignLanes(trips), nil
}
