package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/travel-planner/internal/domain"
	"github.com/pkordes/travel-planner/internal/repo"
)

// StopService implements business logic for Stop operations.
// It holds the trips repo because every stop operation first verifies that
// the parent trip belongs to the calling user.
type StopService struct {
	trips repo.TripRepo
	stops repo.StopRepo
}

// NewStopService constructs a StopService backed by the provided repos.
func NewStopService(trips repo.TripRepo, stops repo.StopRepo) *StopService {
	return &StopService{trips: trips, stops: stops}
}

// Create validates the stop, verifies the parent trip is owned by userID,
// then persists.
// Returns domain.ErrValidation if input violates business rules.
// Returns domain.ErrNotFound if the parent trip does not exist for the user.
func (s *StopService) Create(ctx context.Context, userID uuid.UUID, stop domain.Stop) (domain.Stop, error) {
	if _, err := s.trips.GetByID(ctx, userID, stop.TripID); err != nil {
		return domain.Stop{}, fmt.Errorf("service.StopService.Create: %w", err)
	}
	stop.LocationName = strings.TrimSpace(stop.LocationName)
	if err := validateStop(stop); err != nil {
		return domain.Stop{}, fmt.Errorf("service.StopService.Create: %w", err)
	}
	result, err := s.stops.Create(ctx, stop)
	if err != nil {
		return domain.Stop{}, fmt.Errorf("service.StopService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single stop scoped to a trip owned by userID.
func (s *StopService) GetByID(ctx context.Context, userID, tripID, stopID uuid.UUID) (domain.Stop, error) {
	if _, err := s.trips.GetByID(ctx, userID, tripID); err != nil {
		return domain.Stop{}, fmt.Errorf("service.StopService.GetByID: %w", err)
	}
	result, err := s.stops.GetByID(ctx, tripID, stopID)
	if err != nil {
		return domain.Stop{}, fmt.Errorf("service.StopService.GetByID: %w", err)
	}
	return result, nil
}

// ListByTripID returns all stops of a trip owned by userID, in position order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *StopService) ListByTripID(ctx context.Context, userID, tripID uuid.UUID) ([]domain.Stop, error) {
	if _, err := s.trips.GetByID(ctx, userID, tripID); err != nil {
		return nil, fmt.Errorf("service.StopService.ListByTripID: %w", err)
	}
	stops, err := s.stops.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.StopService.ListByTripID: %w", err)
	}
	if stops == nil {
		return []domain.Stop{}, nil
	}
	return stops, nil
}

// Update validates and persists changes to an existing stop.
func (s *StopService) Update(ctx context.Context, userID uuid.UUID, stop domain.Stop) (domain.Stop, error) {
	if _, err := s.trips.GetByID(ctx, userID, stop.TripID); err != nil {
		return domain.Stop{}, fmt.Errorf("service.StopService.Update: %w", err)
	}
	stop.LocationName = strings.TrimSpace(stop.LocationName)
	if err := validateStop(stop); err != nil {
		return domain.Stop{}, fmt.Errorf("service.StopService.Update: %w", err)
	}
	result, err := s.stops.Update(ctx, stop)
	if err != nil {
		return domain.Stop{}, fmt.Errorf("service.StopService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a stop and its activities.
func (s *StopService) Delete(ctx context.Context, userID, tripID, stopID uuid.UUID) error {
	if _, err := s.trips.GetByID(ctx, userID, tripID); err != nil {
		return fmt.Errorf("service.StopService.Delete: %w", err)
	}
	if err := s.stops.Delete(ctx, tripID, stopID); err != nil {
		return fmt.Errorf("service.StopService.Delete: %w", err)
	}
	return nil
}

// validateStop enforces business rules common to both Create and Update.
//   - LocationName must be non-empty.
//   - Position must be positive.
//   - DepartureAt, if both are set, must not be before ArrivalAt.
//   - Budget, if set, must not be negative.
func validateStop(stop domain.Stop) error {
	if stop.LocationName == "" {
		return fmt.Errorf("%w: location_name is required", domain.ErrValidation)
	}
	if stop.Position < 1 {
		return fmt.Errorf("%w: position must be at least 1", domain.ErrValidation)
	}
	if stop.ArrivalAt != nil && stop.DepartureAt != nil && stop.DepartureAt.Before(*stop.ArrivalAt) {
		return fmt.Errorf("%w: departure_at must not be before arrival_at", domain.ErrValidation)
	}
	if stop.Budget.Valid && stop.Budget.Decimal.IsNegative() {
		return fmt.Errorf("%w: budget must not be negative", domain.ErrValidation)
	}
	return nil
}
