package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-planner/internal/domain"
	"github.com/pkordes/travel-planner/internal/service"
)

func TestCalendarService_Lanes(t *testing.T) {
	userID := uuid.New()
	s := newMemStore()
	a := s.addTrip(domain.Trip{UserID: userID, Title: "A", StartDate: day(2024, 1, 1), EndDate: day(2024, 1, 5)})
	b := s.addTrip(domain.Trip{UserID: userID, Title: "B", StartDate: day(2024, 1, 3), EndDate: day(2024, 1, 7)})
	c := s.addTrip(domain.Trip{UserID: userID, Title: "C", StartDate: day(2024, 1, 6), EndDate: day(2024, 1, 8)})
	undated := s.addTrip(domain.Trip{UserID: userID, Title: "D", StartDate: day(2024, 1, 2)})

	trips, lanes, err := service.NewCalendarService(s.tripRepo()).Lanes(context.Background(), userID)

	require.NoError(t, err)
	assert.Len(t, trips, 4)
	assert.Equal(t, 2, lanes.LaneCount)
	assert.Equal(t, 0, lanes.LaneOf[a.ID])
	assert.Equal(t, 1, lanes.LaneOf[b.ID])
	assert.Equal(t, 0, lanes.LaneOf[c.ID])
	_, ok := lanes.LaneOf[undated.ID]
	assert.False(t, ok)
}

func TestCalendarService_Lanes_RepoError(t *testing.T) {
	dbErr := errors.New("down")
	trips := &mockTripRepo{
		listByUser: func(_ context.Context, _ uuid.UUID) ([]domain.Trip, error) { return nil, dbErr },
	}

	_, _, err := service.NewCalendarService(trips).Lanes(context.Background(), uuid.New())

	assert.ErrorIs(t, err, dbErr)
}
