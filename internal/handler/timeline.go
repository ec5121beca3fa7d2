package handler

import (
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/travel-planner/internal/domain"
)

// GetTimeline handles GET /trips/{tripId}/timeline: the trip's dated stops
// grouped by day, activities nested under each stop.
func (s *Server) GetTimeline(w http.ResponseWriter, r *http.Request) {
	userID, tripID, ok := s.tripScope(w, r)
	if !ok {
		return
	}

	trip, days, err := s.itinerary.Timeline(r.Context(), userID, tripID)
	if err != nil {
		s.writeServiceError(w, r, err, tripNotFound)
		return
	}
	writeJSON(w, http.StatusOK, Timeline{Trip: tripToResponse(trip), Days: daysToResponse(days)})
}

func daysToResponse(days []domain.DayGroup) []TimelineDay {
	out := make([]TimelineDay, len(days))
	for i, d := range days {
		stops := make([]TimelineStop, len(d.Stops))
		for j, st := range d.Stops {
			stops[j] = TimelineStop{Stop: stopToResponse(st.Stop), Activities: activitiesToResponse(st.Activities)}
		}
		out[i] = TimelineDay{DayNumber: d.DayNumber, Date: openapi_types.Date{Time: d.Date}, Stops: stops}
	}
	return out
}
