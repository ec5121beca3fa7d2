package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/pkordes/travel-planner/internal/domain"
)

// GetLocationDescription handles GET /locations/{name}/description.
// When generation is unavailable the description is empty rather than an error.
func (s *Server) GetLocationDescription(w http.ResponseWriter, r *http.Request) {
	name, ok := s.locationName(w, r)
	if !ok {
		return
	}

	desc, err := s.locations.Describe(r.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			badRequest(w, unwrapMessage(err))
			return
		}
		s.log.WarnContext(r.Context(), "location description unavailable", "location", name, "error", err)
		desc = ""
	}
	writeJSON(w, http.StatusOK, LocationDescription{Name: name, Description: desc})
}

// GetLocationRecommendations handles GET /locations/{name}/recommendations.
// Generation failures degrade to an empty list.
func (s *Server) GetLocationRecommendations(w http.ResponseWriter, r *http.Request) {
	name, ok := s.locationName(w, r)
	if !ok {
		return
	}

	recs, err := s.locations.Recommend(r.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			badRequest(w, unwrapMessage(err))
			return
		}
		s.log.WarnContext(r.Context(), "location recommendations unavailable", "location", name, "error", err)
		recs = nil
	}
	if recs == nil {
		recs = []domain.Recommendation{}
	}
	writeJSON(w, http.StatusOK, LocationRecommendations{Destination: name, Recommendations: recs})
}

func (s *Server) locationName(w http.ResponseWriter, r *http.Request) (string, bool) {
	if _, err := currentUser(r); err != nil {
		s.writeServiceError(w, r, err, "")
		return "", false
	}
	name, err := pathString(r, "name")
	if err != nil {
		badRequest(w, err.Error())
		return "", false
	}
	return strings.TrimSpace(name), true
}
