package handler

import (
	"net/http"

	"github.com/google/uuid"
)

const activityNotFound = "activity not found"

// ListActivities handles GET /trips/{tripId}/stops/{stopId}/activities.
func (s *Server) ListActivities(w http.ResponseWriter, r *http.Request) {
	userID, tripID, stopID, ok := s.stopScope(w, r)
	if !ok {
		return
	}

	activities, err := s.activities.ListByStopID(r.Context(), userID, tripID, stopID)
	if err != nil {
		s.writeServiceError(w, r, err, stopNotFound)
		return
	}
	writeJSON(w, http.StatusOK, activitiesToResponse(activities))
}

// CreateActivity handles POST /trips/{tripId}/stops/{stopId}/activities.
func (s *Server) CreateActivity(w http.ResponseWriter, r *http.Request) {
	userID, tripID, stopID, ok := s.stopScope(w, r)
	if !ok {
		return
	}
	var body ActivityRequest
	if err := decodeBody(r, &body); err != nil {
		writeDecodeError(w, err)
		return
	}

	created, err := s.activities.Create(r.Context(), userID, tripID, requestToActivity(stopID, uuid.Nil, body))
	if err != nil {
		s.writeServiceError(w, r, err, stopNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, activityToResponse(created))
}

// GetActivity handles GET /trips/{tripId}/stops/{stopId}/activities/{activityId}.
func (s *Server) GetActivity(w http.ResponseWriter, r *http.Request) {
	userID, tripID, stopID, activityID, ok := s.activityScope(w, r)
	if !ok {
		return
	}

	a, err := s.activities.GetByID(r.Context(), userID, tripID, stopID, activityID)
	if err != nil {
		s.writeServiceError(w, r, err, activityNotFound)
		return
	}
	writeJSON(w, http.StatusOK, activityToResponse(a))
}

// UpdateActivity handles PUT /trips/{tripId}/stops/{stopId}/activities/{activityId}.
func (s *Server) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	userID, tripID, stopID, activityID, ok := s.activityScope(w, r)
	if !ok {
		return
	}
	var body ActivityRequest
	if err := decodeBody(r, &body); err != nil {
		writeDecodeError(w, err)
		return
	}

	updated, err := s.activities.Update(r.Context(), userID, tripID, requestToActivity(stopID, activityID, body))
	if err != nil {
		s.writeServiceError(w, r, err, activityNotFound)
		return
	}
	writeJSON(w, http.StatusOK, activityToResponse(updated))
}

// DeleteActivity handles DELETE /trips/{tripId}/stops/{stopId}/activities/{activityId}.
func (s *Server) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	userID, tripID, stopID, activityID, ok := s.activityScope(w, r)
	if !ok {
		return
	}

	if err := s.activities.Delete(r.Context(), userID, tripID, stopID, activityID); err != nil {
		s.writeServiceError(w, r, err, activityNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) activityScope(w http.ResponseWriter, r *http.Request) (userID, tripID, stopID, activityID uuid.UUID, ok bool) {
	userID, tripID, stopID, ok = s.stopScope(w, r)
	if !ok {
		return uuid.Nil, uuid.Nil, uuid.Nil, uuid.Nil, false
	}
	activityID, err := pathUUID(r, "activityId")
	if err != nil {
		badRequest(w, err.Error())
		return uuid.Nil, uuid.Nil, uuid.Nil, uuid.Nil, false
	}
	return userID, tripID, stopID, activityID, true
}
