package handler

import (
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/pkordes/travel-planner/internal/domain"
)

// GetBudgetOverview handles GET /budget?year=&month=.
//
// A malformed period is a 422. Any other failure is logged and answered with
// an empty overview so the client can still render its empty state.
func (s *Server) GetBudgetOverview(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		s.writeServiceError(w, r, err, "")
		return
	}
	p, err := period(r)
	if err != nil {
		badRequest(w, unwrapMessage(err))
		return
	}

	overview, err := s.budget.Overview(r.Context(), userID, p)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			badRequest(w, unwrapMessage(err))
			return
		}
		s.log.ErrorContext(r.Context(), "budget overview failed", "user_id", userID, "error", err)
		overview = domain.BudgetOverview{TotalSpent: decimal.Zero}
	}
	writeJSON(w, http.StatusOK, overviewToResponse(overview))
}

// GetTripBudget handles GET /trips/{tripId}/budget?year=&month=.
// An unknown trip is a 404; other failures degrade to an empty breakdown.
func (s *Server) GetTripBudget(w http.ResponseWriter, r *http.Request) {
	userID, tripID, ok := s.tripScope(w, r)
	if !ok {
		return
	}
	p, err := period(r)
	if err != nil {
		badRequest(w, unwrapMessage(err))
		return
	}

	breakdown, err := s.budget.TripBreakdown(r.Context(), userID, tripID, p)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrNotFound):
			s.writeServiceError(w, r, err, tripNotFound)
			return
		}
		s.log.ErrorContext(r.Context(), "trip budget failed", "trip_id", tripID, "error", err)
		breakdown = domain.BudgetBreakdown{}
	}
	writeJSON(w, http.StatusOK, breakdownToResponse(breakdown))
}

func overviewToResponse(o domain.BudgetOverview) BudgetOverview {
	resp := BudgetOverview{
		TotalSpent: o.TotalSpent,
		TripCount:  o.TripCount,
		Trips:      make([]TripSpend, len(o.Trips)),
	}
	for i, t := range o.Trips {
		resp.Trips[i] = TripSpend{
			ID:         t.TripID,
			Title:      t.Title,
			StartDate:  optionalDate(t.StartDate),
			EndDate:    optionalDate(t.EndDate),
			TotalSpent: t.TotalSpent,
		}
	}
	return resp
}

func breakdownToResponse(b domain.BudgetBreakdown) BudgetBreakdown {
	resp := BudgetBreakdown{
		ByCategory: make([]CategoryAmount, len(b.ByCategory)),
		ByDay:      make([]DayAmount, len(b.ByDay)),
	}
	for i, c := range b.ByCategory {
		resp.ByCategory[i] = CategoryAmount{Category: c.Category, Amount: c.Amount}
	}
	for i, d := range b.ByDay {
		resp.ByDay[i] = DayAmount{Date: d.Date, Amount: d.Amount}
	}
	return resp
}
