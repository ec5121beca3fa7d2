// Package handler implements the HTTP API of the travel planner.
// Every handler is a method on Server; routes are registered in Routes.
// Handlers decode requests into domain types, call a service and map the
// result (or a domain error) to a JSON response.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/travel-planner/internal/domain"
)

// TripServicer defines the trip operations the handlers depend on.
// Interfaces live here, in the consumer, so tests can inject mocks.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (domain.Trip, error)
	ListPaged(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error)
	Feed(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	Like(ctx context.Context, id uuid.UUID) (domain.Trip, error)
}

// StopServicer defines the stop operations the handlers depend on.
type StopServicer interface {
	Create(ctx context.Context, userID uuid.UUID, stop domain.Stop) (domain.Stop, error)
	GetByID(ctx context.Context, userID, tripID, stopID uuid.UUID) (domain.Stop, error)
	ListByTripID(ctx context.Context, userID, tripID uuid.UUID) ([]domain.Stop, error)
	Update(ctx context.Context, userID uuid.UUID, stop domain.Stop) (domain.Stop, error)
	Delete(ctx context.Context, userID, tripID, stopID uuid.UUID) error
}

// ActivityServicer defines the activity operations the handlers depend on.
type ActivityServicer interface {
	Create(ctx context.Context, userID, tripID uuid.UUID, a domain.Activity) (domain.Activity, error)
	GetByID(ctx context.Context, userID, tripID, stopID, activityID uuid.UUID) (domain.Activity, error)
	ListByStopID(ctx context.Context, userID, tripID, stopID uuid.UUID) ([]domain.Activity, error)
	Update(ctx context.Context, userID, tripID uuid.UUID, a domain.Activity) (domain.Activity, error)
	Delete(ctx context.Context, userID, tripID, stopID, activityID uuid.UUID) error
}

// BudgetServicer defines the spending aggregations.
type BudgetServicer interface {
	Overview(ctx context.Context, userID uuid.UUID, period domain.Period) (domain.BudgetOverview, error)
	TripBreakdown(ctx context.Context, userID, tripID uuid.UUID, period domain.Period) (domain.BudgetBreakdown, error)
}

// ItineraryServicer builds a trip's day-by-day timeline.
type ItineraryServicer interface {
	Timeline(ctx context.Context, userID, tripID uuid.UUID) (domain.Trip, []domain.DayGroup, error)
}

// CalendarServicer lays trips out in calendar lanes.
type CalendarServicer interface {
	Lanes(ctx context.Context, userID uuid.UUID) ([]domain.Trip, domain.LaneAssignment, error)
}

// ExportServicer flattens a user's itineraries for export.
type ExportServicer interface {
	Export(ctx context.Context, userID uuid.UUID) ([]domain.ExportRow, error)
}

// LocationServicer answers destination questions with generated text.
type LocationServicer interface {
	Describe(ctx context.Context, name string) (string, error)
	Recommend(ctx context.Context, destination string) ([]domain.Recommendation, error)
}

// Services groups the dependencies of Server. A nil field leaves the
// matching routes unregistered.
type Services struct {
	Trips      TripServicer
	Stops      StopServicer
	Activities ActivityServicer
	Budget     BudgetServicer
	Itinerary  ItineraryServicer
	Calendar   CalendarServicer
	Export     ExportServicer
	Locations  LocationServicer
}

// Server holds the services every handler shares.
type Server struct {
	trips      TripServicer
	stops      StopServicer
	activities ActivityServicer
	budget     BudgetServicer
	itinerary  ItineraryServicer
	calendar   CalendarServicer
	export     ExportServicer
	locations  LocationServicer
	log        *slog.Logger
}

// NewServer constructs the Server. A nil log falls back to slog.Default.
func NewServer(svc Services, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		trips:      svc.Trips,
		stops:      svc.Stops,
		activities: svc.Activities,
		budget:     svc.Budget,
		itinerary:  svc.Itinerary,
		calendar:   svc.Calendar,
		export:     svc.Export,
		locations:  svc.Locations,
		log:        log,
	}
}

// Routes returns the authenticated API, meant to be mounted under /api
// behind middleware.NewAuthenticator.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	if s.trips != nil {
		r.Get("/trips", s.ListTrips)
		r.Post("/trips", s.CreateTrip)
		r.Get("/trips/{tripId}", s.GetTrip)
		r.Put("/trips/{tripId}", s.UpdateTrip)
		r.Delete("/trips/{tripId}", s.DeleteTrip)
		r.Post("/trips/{tripId}/like", s.LikeTrip)
		r.Get("/feed", s.GetFeed)
	}
	if s.stops != nil {
		r.Get("/trips/{tripId}/stops", s.ListStops)
		r.Post("/trips/{tripId}/stops", s.CreateStop)
		r.Get("/trips/{tripId}/stops/{stopId}", s.GetStop)
		r.Put("/trips/{tripId}/stops/{stopId}", s.UpdateStop)
		r.Delete("/trips/{tripId}/stops/{stopId}", s.DeleteStop)
	}
	if s.activities != nil {
		r.Get("/trips/{tripId}/stops/{stopId}/activities", s.ListActivities)
		r.Post("/trips/{tripId}/stops/{stopId}/activities", s.CreateActivity)
		r.Get("/trips/{tripId}/stops/{stopId}/activities/{activityId}", s.GetActivity)
		r.Put("/trips/{tripId}/stops/{stopId}/activities/{activityId}", s.UpdateActivity)
		r.Delete("/trips/{tripId}/stops/{stopId}/activities/{activityId}", s.DeleteActivity)
	}
	if s.itinerary != nil {
		r.Get("/trips/{tripId}/timeline", s.GetTimeline)
	}
	if s.budget != nil {
		r.Get("/budget", s.GetBudgetOverview)
		r.Get("/trips/{tripId}/budget", s.GetTripBudget)
	}
	if s.calendar != nil {
		r.Get("/calendar", s.GetCalendar)
	}
	if s.export != nil {
		r.Get("/export", s.GetExport)
	}
	if s.locations != nil {
		r.Get("/locations/{name}/description", s.GetLocationDescription)
		r.Get("/locations/{name}/recommendations", s.GetLocationRecommendations)
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})
	return r
}
