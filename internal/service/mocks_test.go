package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/pkordes/travel-planner/internal/domain"
	"github.com/pkordes/travel-planner/internal/repo"
)

// ---- mock repos ------------------------------------------------------------
// Hand-written test doubles. Set only the function fields a test needs;
// calling an unset one panics, which flags an unexpected repo call.

type mockTripRepo struct {
	create          func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID         func(ctx context.Context, userID, id uuid.UUID) (domain.Trip, error)
	listByUser      func(ctx context.Context, userID uuid.UUID) ([]domain.Trip, error)
	listByUserPaged func(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error)
	listPublicPaged func(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	update          func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete          func(ctx context.Context, userID, id uuid.UUID) error
	like            func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, userID, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, userID, id)
}
func (m *mockTripRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Trip, error) {
	return m.listByUser(ctx, userID)
}
func (m *mockTripRepo) ListByUserPaged(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.listByUserPaged(ctx, userID, p)
}
func (m *mockTripRepo) ListPublicPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.listPublicPaged(ctx, p)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.delete(ctx, userID, id)
}
func (m *mockTripRepo) Like(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.like(ctx, id)
}

type mockStopRepo struct {
	create       func(ctx context.Context, stop domain.Stop) (domain.Stop, error)
	getByID      func(ctx context.Context, tripID, stopID uuid.UUID) (domain.Stop, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Stop, error)
	update       func(ctx context.Context, stop domain.Stop) (domain.Stop, error)
	delete       func(ctx context.Context, tripID, stopID uuid.UUID) error
}

func (m *mockStopRepo) Create(ctx context.Context, stop domain.Stop) (domain.Stop, error) {
	return m.create(ctx, stop)
}
func (m *mockStopRepo) GetByID(ctx context.Context, tripID, stopID uuid.UUID) (domain.Stop, error) {
	return m.getByID(ctx, tripID, stopID)
}
func (m *mockStopRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Stop, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockStopRepo) Update(ctx context.Context, stop domain.Stop) (domain.Stop, error) {
	return m.update(ctx, stop)
}
func (m *mockStopRepo) Delete(ctx context.Context, tripID, stopID uuid.UUID) error {
	return m.delete(ctx, tripID, stopID)
}

type mockActivityRepo struct {
	create       func(ctx context.Context, a domain.Activity) (domain.Activity, error)
	getByID      func(ctx context.Context, stopID, activityID uuid.UUID) (domain.Activity, error)
	listByStopID func(ctx context.Context, stopID uuid.UUID) ([]domain.Activity, error)
	update       func(ctx context.Context, a domain.Activity) (domain.Activity, error)
	delete       func(ctx context.Context, stopID, activityID uuid.UUID) error
}

func (m *mockActivityRepo) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	return m.create(ctx, a)
}
func (m *mockActivityRepo) GetByID(ctx context.Context, stopID, activityID uuid.UUID) (domain.Activity, error) {
	return m.getByID(ctx, stopID, activityID)
}
func (m *mockActivityRepo) ListByStopID(ctx context.Context, stopID uuid.UUID) ([]domain.Activity, error) {
	return m.listByStopID(ctx, stopID)
}
func (m *mockActivityRepo) Update(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	return m.update(ctx, a)
}
func (m *mockActivityRepo) Delete(ctx context.Context, stopID, activityID uuid.UUID) error {
	return m.delete(ctx, stopID, activityID)
}

// compile-time checks: mocks must satisfy the repo interfaces.
var (
	_ repo.TripRepo     = (*mockTripRepo)(nil)
	_ repo.StopRepo     = (*mockStopRepo)(nil)
	_ repo.ActivityRepo = (*mockActivityRepo)(nil)
)

// ownedTrip returns a getByID func that finds any trip for any user.
func ownedTrip(_ context.Context, userID, id uuid.UUID) (domain.Trip, error) {
	return domain.Trip{ID: id, UserID: userID}, nil
}

// ---- in-memory store -------------------------------------------------------

// memStore backs all three mocks with fixed data, for the aggregation tests
// that read whole hierarchies.
type memStore struct {
	trips      []domain.Trip
	stops      map[uuid.UUID][]domain.Stop
	activities map[uuid.UUID][]domain.Activity
}

func newMemStore() *memStore {
	return &memStore{
		stops:      map[uuid.UUID][]domain.Stop{},
		activities: map[uuid.UUID][]domain.Activity{},
	}
}

func (s *memStore) tripRepo() *mockTripRepo {
	return &mockTripRepo{
		listByUser: func(_ context.Context, userID uuid.UUID) ([]domain.Trip, error) {
			out := []domain.Trip{}
			for _, t := range s.trips {
				if t.UserID == userID {
					out = append(out, t)
				}
			}
			return out, nil
		},
		getByID: func(_ context.Context, userID, id uuid.UUID) (domain.Trip, error) {
			for _, t := range s.trips {
				if t.ID == id && t.UserID == userID {
					return t, nil
				}
			}
			return domain.Trip{}, domain.ErrNotFound
		},
	}
}

func (s *memStore) stopRepo() *mockStopRepo {
	return &mockStopRepo{
		listByTripID: func(_ context.Context, tripID uuid.UUID) ([]domain.Stop, error) {
			return s.stops[tripID], nil
		},
	}
}

func (s *memStore) activityRepo() *mockActivityRepo {
	return &mockActivityRepo{
		listByStopID: func(_ context.Context, stopID uuid.UUID) ([]domain.Activity, error) {
			return s.activities[stopID], nil
		},
	}
}

func (s *memStore) addTrip(t domain.Trip) domain.Trip {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	s.trips = append(s.trips, t)
	return t
}

func (s *memStore) addStop(tripID uuid.UUID, st domain.Stop) domain.Stop {
	st.ID = uuid.New()
	st.TripID = tripID
	s.stops[tripID] = append(s.stops[tripID], st)
	return st
}

func (s *memStore) addActivity(stopID uuid.UUID, a domain.Activity) domain.Activity {
	a.ID = uuid.New()
	a.StopID = stopID
	s.activities[stopID] = append(s.activities[stopID], a)
	return a
}
