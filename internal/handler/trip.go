package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/pkordes/travel-planner/internal/domain"
)

const tripNotFound = "trip not found"

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		s.writeServiceError(w, r, err, "")
		return
	}
	var body TripRequest
	if err := decodeBody(r, &body); err != nil {
		writeDecodeError(w, err)
		return
	}

	created, err := s.trips.Create(r.Context(), requestToTrip(userID, uuid.Nil, body))
	if err != nil {
		s.writeServiceError(w, r, err, tripNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, tripToResponse(created))
}

// ListTrips handles GET /trips?page=&limit=.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		s.writeServiceError(w, r, err, "")
		return
	}
	params, err := pagination(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	trips, total, err := s.trips.ListPaged(r.Context(), userID, params)
	if err != nil {
		s.writeServiceError(w, r, err, tripNotFound)
		return
	}
	writeJSON(w, http.StatusOK, tripList(trips, total, params))
}

// GetFeed handles GET /feed?page=&limit=, the trips users chose to share.
func (s *Server) GetFeed(w http.ResponseWriter, r *http.Request) {
	params, err := pagination(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	trips, total, err := s.trips.Feed(r.Context(), params)
	if err != nil {
		s.writeServiceError(w, r, err, tripNotFound)
		return
	}
	writeJSON(w, http.StatusOK, tripList(trips, total, params))
}

// GetTrip handles GET /trips/{tripId}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	userID, tripID, ok := s.tripScope(w, r)
	if !ok {
		return
	}

	trip, err := s.trips.GetByID(r.Context(), userID, tripID)
	if err != nil {
		s.writeServiceError(w, r, err, tripNotFound)
		return
	}
	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// UpdateTrip handles PUT /trips/{tripId}. The body replaces every field.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	userID, tripID, ok := s.tripScope(w, r)
	if !ok {
		return
	}
	var body TripRequest
	if err := decodeBody(r, &body); err != nil {
		writeDecodeError(w, err)
		return
	}

	updated, err := s.trips.Update(r.Context(), requestToTrip(userID, tripID, body))
	if err != nil {
		s.writeServiceError(w, r, err, tripNotFound)
		return
	}
	writeJSON(w, http.StatusOK, tripToResponse(updated))
}

// DeleteTrip handles DELETE /trips/{tripId}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	userID, tripID, ok := s.tripScope(w, r)
	if !ok {
		return
	}

	if err := s.trips.Delete(r.Context(), userID, tripID); err != nil {
		s.writeServiceError(w, r, err, tripNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// LikeTrip handles POST /trips/{tripId}/like. Only shared trips can be liked.
func (s *Server) LikeTrip(w http.ResponseWriter, r *http.Request) {
	_, tripID, ok := s.tripScope(w, r)
	if !ok {
		return
	}

	trip, err := s.trips.Like(r.Context(), tripID)
	if err != nil {
		s.writeServiceError(w, r, err, tripNotFound)
		return
	}
	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// tripScope resolves the caller and the {tripId} path parameter, writing the
// error response itself when either is missing or malformed.
func (s *Server) tripScope(w http.ResponseWriter, r *http.Request) (userID, tripID uuid.UUID, ok bool) {
	userID, err := currentUser(r)
	if err != nil {
		s.writeServiceError(w, r, err, "")
		return uuid.Nil, uuid.Nil, false
	}
	tripID, err = pathUUID(r, "tripId")
	if err != nil {
		badRequest(w, err.Error())
		return uuid.Nil, uuid.Nil, false
	}
	return userID, tripID, true
}

func tripList(trips []domain.Trip, total int64, params domain.PaginationParams) TripList {
	data := make([]Trip, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t)
	}
	return TripList{
		Data: data,
		Pagination: Pagination{
			Page:       params.Page,
			Limit:      params.Limit,
			Total:      total,
			TotalPages: params.TotalPages(total),
		},
	}
}
