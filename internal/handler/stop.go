package handler

import (
	"net/http"

	"github.com/google/uuid"
)

const stopNotFound = "stop not found"

// ListStops handles GET /trips/{tripId}/stops.
func (s *Server) ListStops(w http.ResponseWriter, r *http.Request) {
	userID, tripID, ok := s.tripScope(w, r)
	if !ok {
		return
	}

	stops, err := s.stops.ListByTripID(r.Context(), userID, tripID)
	if err != nil {
		s.writeServiceError(w, r, err, tripNotFound)
		return
	}
	out := make([]Stop, len(stops))
	for i, st := range stops {
		out[i] = stopToResponse(st)
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateStop handles POST /trips/{tripId}/stops.
// A position already taken within the trip is a 422.
func (s *Server) CreateStop(w http.ResponseWriter, r *http.Request) {
	userID, tripID, ok := s.tripScope(w, r)
	if !ok {
		return
	}
	var body StopRequest
	if err := decodeBody(r, &body); err != nil {
		writeDecodeError(w, err)
		return
	}

	created, err := s.stops.Create(r.Context(), userID, requestToStop(tripID, uuid.Nil, body))
	if err != nil {
		s.writeServiceError(w, r, err, tripNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, stopToResponse(created))
}

// GetStop handles GET /trips/{tripId}/stops/{stopId}.
func (s *Server) GetStop(w http.ResponseWriter, r *http.Request) {
	userID, tripID, stopID, ok := s.stopScope(w, r)
	if !ok {
		return
	}

	stop, err := s.stops.GetByID(r.Context(), userID, tripID, stopID)
	if err != nil {
		s.writeServiceError(w, r, err, stopNotFound)
		return
	}
	writeJSON(w, http.StatusOK, stopToResponse(stop))
}

// UpdateStop handles PUT /trips/{tripId}/stops/{stopId}.
func (s *Server) UpdateStop(w http.ResponseWriter, r *http.Request) {
	userID, tripID, stopID, ok := s.stopScope(w, r)
	if !ok {
		return
	}
	var body StopRequest
	if err := decodeBody(r, &body); err != nil {
		writeDecodeError(w, err)
		return
	}

	updated, err := s.stops.Update(r.Context(), userID, requestToStop(tripID, stopID, body))
	if err != nil {
		s.writeServiceError(w, r, err, stopNotFound)
		return
	}
	writeJSON(w, http.StatusOK, stopToResponse(updated))
}

// DeleteStop handles DELETE /trips/{tripId}/stops/{stopId}.
func (s *Server) DeleteStop(w http.ResponseWriter, r *http.Request) {
	userID, tripID, stopID, ok := s.stopScope(w, r)
	if !ok {
		return
	}

	if err := s.stops.Delete(r.Context(), userID, tripID, stopID); err != nil {
		s.writeServiceError(w, r, err, stopNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// stopScope is tripScope plus the {stopId} path parameter.
func (s *Server) stopScope(w http.ResponseWriter, r *http.Request) (userID, tripID, stopID uuid.UUID, ok bool) {
	userID, tripID, ok = s.tripScope(w, r)
	if !ok {
		return uuid.Nil, uuid.Nil, uuid.Nil, false
	}
	stopID, err := pathUUID(r, "stopId")
	if err != nil {
		badRequest(w, err.Error())
		return uuid.Nil, uuid.Nil, uuid.Nil, false
	}
	return userID, tripID, stopID, true
}
