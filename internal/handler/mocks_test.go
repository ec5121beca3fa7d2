package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/pkordes/travel-planner/internal/domain"
	"github.com/pkordes/travel-planner/internal/handler"
	"github.com/pkordes/travel-planner/internal/middleware"
)

// Hand-written test doubles: set only the function fields a test needs.

type mockTripServicer struct {
	create    func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID   func(ctx context.Context, userID, id uuid.UUID) (domain.Trip, error)
	listPaged func(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error)
	feed      func(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	update    func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete    func(ctx context.Context, userID, id uuid.UUID) error
	like      func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
}

func (m *mockTripServicer) Create(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.create(ctx, t)
}
func (m *mockTripServicer) GetByID(ctx context.Context, userID, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, userID, id)
}
func (m *mockTripServicer) ListPaged(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.listPaged(ctx, userID, p)
}
func (m *mockTripServicer) Feed(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.feed(ctx, p)
}
func (m *mockTripServicer) Update(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.update(ctx, t)
}
func (m *mockTripServicer) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.delete(ctx, userID, id)
}
func (m *mockTripServicer) Like(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.like(ctx, id)
}

type mockStopServicer struct {
	create       func(ctx context.Context, userID uuid.UUID, stop domain.Stop) (domain.Stop, error)
	getByID      func(ctx context.Context, userID, tripID, stopID uuid.UUID) (domain.Stop, error)
	listByTripID func(ctx context.Context, userID, tripID uuid.UUID) ([]domain.Stop, error)
	update       func(ctx context.Context, userID uuid.UUID, stop domain.Stop) (domain.Stop, error)
	delete       func(ctx context.Context, userID, tripID, stopID uuid.UUID) error
}

func (m *mockStopServicer) Create(ctx context.Context, userID uuid.UUID, s domain.Stop) (domain.Stop, error) {
	return m.create(ctx, userID, s)
}
func (m *mockStopServicer) GetByID(ctx context.Context, userID, tripID, stopID uuid.UUID) (domain.Stop, error) {
	return m.getByID(ctx, userID, tripID, stopID)
}
func (m *mockStopServicer) ListByTripID(ctx context.Context, userID, tripID uuid.UUID) ([]domain.Stop, error) {
	return m.listByTripID(ctx, userID, tripID)
}
func (m *mockStopServicer) Update(ctx context.Context, userID uuid.UUID, s domain.Stop) (domain.Stop, error) {
	return m.update(ctx, userID, s)
}
func (m *mockStopServicer) Delete(ctx context.Context, userID, tripID, stopID uuid.UUID) error {
	return m.delete(ctx, userID, tripID, stopID)
}

type mockActivityServicer struct {
	create       func(ctx context.Context, userID, tripID uuid.UUID, a domain.Activity) (domain.Activity, error)
	getByID      func(ctx context.Context, userID, tripID, stopID, activityID uuid.UUID) (domain.Activity, error)
	listByStopID func(ctx context.Context, userID, tripID, stopID uuid.UUID) ([]domain.Activity, error)
	update       func(ctx context.Context, userID, tripID uuid.UUID, a domain.Activity) (domain.Activity, error)
	delete       func(ctx context.Context, userID, tripID, stopID, activityID uuid.UUID) error
}

func (m *mockActivityServicer) Create(ctx context.Context, userID, tripID uuid.UUID, a domain.Activity) (domain.Activity, error) {
	return m.create(ctx, userID, tripID, a)
}
func (m *mockActivityServicer) GetByID(ctx context.Context, userID, tripID, stopID, activityID uuid.UUID) (domain.Activity, error) {
	return m.getByID(ctx, userID, tripID, stopID, activityID)
}
func (m *mockActivityServicer) ListByStopID(ctx context.Context, userID, tripID, stopID uuid.UUID) ([]domain.Activity, error) {
	return m.listByStopID(ctx, userID, tripID, stopID)
}
func (m *mockActivityServicer) Update(ctx context.Context, userID, tripID uuid.UUID, a domain.Activity) (domain.Activity, error) {
	return m.update(ctx, userID, tripID, a)
}
func (m *mockActivityServicer) Delete(ctx context.Context, userID, tripID, stopID, activityID uuid.UUID) error {
	return m.delete(ctx, userID, tripID, stopID, activityID)
}

type mockBudgetServicer struct {
	overview      func(ctx context.Context, userID uuid.UUID, p domain.Period) (domain.BudgetOverview, error)
	tripBreakdown func(ctx context.Context, userID, tripID uuid.UUID, p domain.Period) (domain.BudgetBreakdown, error)
}

func (m *mockBudgetServicer) Overview(ctx context.Context, userID uuid.UUID, p domain.Period) (domain.BudgetOverview, error) {
	return m.overview(ctx, userID, p)
}
func (m *mockBudgetServicer) TripBreakdown(ctx context.Context, userID, tripID uuid.UUID, p domain.Period) (domain.BudgetBreakdown, error) {
	return m.tripBreakdown(ctx, userID, tripID, p)
}

type mockItineraryServicer struct {
	timeline func(ctx context.Context, userID, tripID uuid.UUID) (domain.Trip, []domain.DayGroup, error)
}

func (m *mockItineraryServicer) Timeline(ctx context.Context, userID, tripID uuid.UUID) (domain.Trip, []domain.DayGroup, error) {
	return m.timeline(ctx, userID, tripID)
}

type mockCalendarServicer struct {
	lanes func(ctx context.Context, userID uuid.UUID) ([]domain.Trip, domain.LaneAssignment, error)
}

func (m *mockCalendarServicer) Lanes(ctx context.Context, userID uuid.UUID) ([]domain.Trip, domain.LaneAssignment, error) {
	return m.lanes(ctx, userID)
}

type mockExportServicer struct {
	export func(ctx context.Context, userID uuid.UUID) ([]domain.ExportRow, error)
}

func (m *mockExportServicer) Export(ctx context.Context, userID uuid.UUID) ([]domain.ExportRow, error) {
	return m.export(ctx, userID)
}

type mockLocationServicer struct {
	describe  func(ctx context.Context, name string) (string, error)
	recommend func(ctx context.Context, destination string) ([]domain.Recommendation, error)
}

func (m *mockLocationServicer) Describe(ctx context.Context, name string) (string, error) {
	return m.describe(ctx, name)
}
func (m *mockLocationServicer) Recommend(ctx context.Context, destination string) ([]domain.Recommendation, error) {
	return m.recommend(ctx, destination)
}

// compile-time checks: mocks must satisfy the handler interfaces.
var (
	_ handler.TripServicer      = (*mockTripServicer)(nil)
	_ handler.StopServicer      = (*mockStopServicer)(nil)
	_ handler.ActivityServicer  = (*mockActivityServicer)(nil)
	_ handler.BudgetServicer    = (*mockBudgetServicer)(nil)
	_ handler.ItineraryServicer = (*mockItineraryServicer)(nil)
	_ handler.CalendarServicer  = (*mockCalendarServicer)(nil)
	_ handler.ExportServicer    = (*mockExportServicer)(nil)
	_ handler.LocationServicer  = (*mockLocationServicer)(nil)
)

// testUser is the identity every routed test request carries.
var testUser = uuid.MustParse("6f1c1f0e-8d1b-4b8e-9a57-2f43f4a0c001")

// newHTTPHandler routes requests through Server.Routes with testUser already
// authenticated, the way main.go mounts it behind the auth middleware.
func newHTTPHandler(t *testing.T, svc handler.Services) http.Handler {
	t.Helper()
	routes := handler.NewServer(svc, nil).Routes()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		routes.ServeHTTP(w, r.WithContext(middleware.WithUserID(r.Context(), testUser)))
	})
}
