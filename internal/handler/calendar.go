package handler

import "net/http"

// GetCalendar handles GET /calendar: every trip of the user with the display
// lane it occupies. Overlapping trips never share a lane.
func (s *Server) GetCalendar(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		s.writeServiceError(w, r, err, "")
		return
	}

	trips, lanes, err := s.calendar.Lanes(r.Context(), userID)
	if err != nil {
		s.writeServiceError(w, r, err, tripNotFound)
		return
	}

	resp := Calendar{LaneCount: lanes.LaneCount, Trips: make([]CalendarTrip, len(trips))}
	for i, t := range trips {
		ct := CalendarTrip{
			ID:        t.ID,
			Title:     t.Title,
			StartDate: optionalDate(t.StartDate),
			EndDate:   optionalDate(t.EndDate),
		}
		if lane, ok := lanes.LaneOf[t.ID]; ok {
			ct.Lane = &lane
		}
		resp.Trips[i] = ct
	}
	writeJSON(w, http.StatusOK, resp)
}
