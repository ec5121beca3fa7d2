package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/travel-planner/internal/domain"
	"github.com/pkordes/travel-planner/internal/repo"
)

// ActivityService implements business logic for Activity operations.
// Each call walks the ownership chain user → trip → stop before touching
// activities.
type ActivityService struct {
	trips      repo.TripRepo
	stops      repo.StopRepo
	activities repo.ActivityRepo
}

// NewActivityService constructs an ActivityService backed by the provided repos.
func NewActivityService(trips repo.TripRepo, stops repo.StopRepo, activities repo.ActivityRepo) *ActivityService {
	return &ActivityService{trips: trips, stops: stops, activities: activities}
}

// Create validates and persists a new activity under a stop of a trip owned by userID.
func (s *ActivityService) Create(ctx context.Context, userID, tripID uuid.UUID, a domain.Activity) (domain.Activity, error) {
	if err := s.checkStop(ctx, userID, tripID, a.StopID); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	a = normalizeActivity(a)
	if err := validateActivity(a); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	result, err := s.activities.Create(ctx, a)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single activity.
func (s *ActivityService) GetByID(ctx context.Context, userID, tripID, stopID, activityID uuid.UUID) (domain.Activity, error) {
	if err := s.checkStop(ctx, userID, tripID, stopID); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.GetByID: %w", err)
	}
	result, err := s.activities.GetByID(ctx, stopID, activityID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.GetByID: %w", err)
	}
	return result, nil
}

// ListByStopID returns the activities of a stop in position order, never nil.
func (s *ActivityService) ListByStopID(ctx context.Context, userID, tripID, stopID uuid.UUID) ([]domain.Activity, error) {
	if err := s.checkStop(ctx, userID, tripID, stopID); err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByStopID: %w", err)
	}
	activities, err := s.activities.ListByStopID(ctx, stopID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByStopID: %w", err)
	}
	if activities == nil {
		return []domain.Activity{}, nil
	}
	return activities, nil
}

// Update validates and persists changes to an existing activity.
func (s *ActivityService) Update(ctx context.Context, userID, tripID uuid.UUID, a domain.Activity) (domain.Activity, error) {
	if err := s.checkStop(ctx, userID, tripID, a.StopID); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}
	a = normalizeActivity(a)
	if err := validateActivity(a); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}
	result, err := s.activities.Update(ctx, a)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}
	return result, nil
}

// Delete removes an activity.
func (s *ActivityService) Delete(ctx context.Context, userID, tripID, stopID, activityID uuid.UUID) error {
	if err := s.checkStop(ctx, userID, tripID, stopID); err != nil {
		return fmt.Errorf("service.ActivityService.Delete: %w", err)
	}
	if err := s.activities.Delete(ctx, stopID, activityID); err != nil {
		return fmt.Errorf("service.ActivityService.Delete: %w", err)
	}
	return nil
}

// checkStop verifies the trip belongs to userID and the stop belongs to the trip.
func (s *ActivityService) checkStop(ctx context.Context, userID, tripID, stopID uuid.UUID) error {
	if _, err := s.trips.GetByID(ctx, userID, tripID); err != nil {
		return err
	}
	if _, err := s.stops.GetByID(ctx, tripID, stopID); err != nil {
		return err
	}
	return nil
}

func normalizeActivity(a domain.Activity) domain.Activity {
	a.Title = strings.TrimSpace(a.Title)
	a.Category = strings.TrimSpace(a.Category)
	return a
}

// validateActivity requires a title and rejects negative costs and positions.
func validateActivity(a domain.Activity) error {
	if a.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if a.Cost.Valid && a.Cost.Decimal.IsNegative() {
		return fmt.Errorf("%w: cost must not be negative", domain.ErrValidation)
	}
	if a.Position < 0 {
		return fmt.Errorf("%w: position must not be negative", domain.ErrValidation)
	}
	return nil
}
