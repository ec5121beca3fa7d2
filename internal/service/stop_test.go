package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-planner/internal/domain"
	"github.com/pkordes/travel-planner/internal/service"
)

func validStop(tripID uuid.UUID) domain.Stop {
	arrive := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	leave := arrive.Add(48 * time.Hour)
	return domain.Stop{
		TripID:       tripID,
		Position:     1,
		LocationName: "Porto",
		ArrivalAt:    &arrive,
		DepartureAt:  &leave,
	}
}

func echoStopRepo() *mockStopRepo {
	return &mockStopRepo{
		create: func(_ context.Context, s domain.Stop) (domain.Stop, error) { return s, nil },
		update: func(_ context.Context, s domain.Stop) (domain.Stop, error) { return s, nil },
	}
}

func TestStopService_Create_Valid(t *testing.T) {
	svc := service.NewStopService(&mockTripRepo{getByID: ownedTrip}, echoStopRepo())

	stop := validStop(uuid.New())
	stop.LocationName = " Porto "
	got, err := svc.Create(context.Background(), uuid.New(), stop)

	require.NoError(t, err)
	assert.Equal(t, "Porto", got.LocationName)
}

func TestStopService_Create_Invalid(t *testing.T) {
	cases := map[string]func(*domain.Stop){
		"blank location":  func(s *domain.Stop) { s.LocationName = "" },
		"zero position":   func(s *domain.Stop) { s.Position = 0 },
		"departs early":   func(s *domain.Stop) { d := s.ArrivalAt.Add(-time.Hour); s.DepartureAt = &d },
		"negative budget": func(s *domain.Stop) { s.Budget = decimal.NewNullDecimal(decimal.NewFromInt(-5)) },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			svc := service.NewStopService(&mockTripRepo{getByID: ownedTrip}, echoStopRepo())
			stop := validStop(uuid.New())
			mutate(&stop)

			_, err := svc.Create(context.Background(), uuid.New(), stop)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestStopService_Create_TripNotOwned(t *testing.T) {
	trips := &mockTripRepo{
		getByID: func(_ context.Context, _, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
	// The stop repo has no functions set: reaching it would panic.
	svc := service.NewStopService(trips, &mockStopRepo{})

	_, err := svc.Create(context.Background(), uuid.New(), validStop(uuid.New()))

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStopService_Create_PositionConflict(t *testing.T) {
	stops := &mockStopRepo{
		create: func(_ context.Context, _ domain.Stop) (domain.Stop, error) {
			return domain.Stop{}, domain.ErrValidation
		},
	}
	svc := service.NewStopService(&mockTripRepo{getByID: ownedTrip}, stops)

	_, err := svc.Create(context.Background(), uuid.New(), validStop(uuid.New()))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestStopService_ListByTripID_NilBecomesEmpty(t *testing.T) {
	stops := &mockStopRepo{
		listByTripID: func(_ context.Context, _ uuid.UUID) ([]domain.Stop, error) { return nil, nil },
	}
	svc := service.NewStopService(&mockTripRepo{getByID: ownedTrip}, stops)

	got, err := svc.ListByTripID(context.Background(), uuid.New(), uuid.New())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestStopService_GetByID_ScopedToTrip(t *testing.T) {
	tripID, stopID := uuid.New(), uuid.New()
	var gotTrip uuid.UUID
	stops := &mockStopRepo{
		getByID: func(_ context.Context, tID, sID uuid.UUID) (domain.Stop, error) {
			gotTrip = tID
			return domain.Stop{ID: sID, TripID: tID}, nil
		},
	}
	svc := service.NewStopService(&mockTripRepo{getByID: ownedTrip}, stops)

	got, err := svc.GetByID(context.Background(), uuid.New(), tripID, stopID)

	require.NoError(t, err)
	assert.Equal(t, stopID, got.ID)
	assert.Equal(t, tripID, gotTrip)
}

func TestStopService_Update_RepoError(t *testing.T) {
	repoErr := errors.New("connection reset")
	stops := &mockStopRepo{
		update: func(_ context.Context, _ domain.Stop) (domain.Stop, error) { return domain.Stop{}, repoErr },
	}
	svc := service.NewStopService(&mockTripRepo{getByID: ownedTrip}, stops)

	_, err := svc.Update(context.Background(), uuid.New(), validStop(uuid.New()))

	assert.ErrorIs(t, err, repoErr)
}

func TestStopService_Delete_NotFound(t *testing.T) {
	stops := &mockStopRepo{
		delete: func(_ context.Context, _, _ uuid.UUID) error { return domain.ErrNotFound },
	}
	svc := service.NewStopService(&mockTripRepo{getByID: ownedTrip}, stops)

	err := svc.Delete(context.Background(), uuid.New(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
