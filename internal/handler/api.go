package handler

import (
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"

	"github.com/pkordes/travel-planner/internal/domain"
)

// Wire types for the JSON API. Field names and shapes match spec/openapi.yaml.
// Money travels as a decimal string ("12.50"); dates as "2006-01-02".

type HealthResponse struct {
	Status string `json:"status"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

type Trip struct {
	ID          uuid.UUID           `json:"id"`
	Title       string              `json:"title"`
	Description *string             `json:"description,omitempty"`
	StartDate   *openapi_types.Date `json:"start_date,omitempty"`
	EndDate     *openapi_types.Date `json:"end_date,omitempty"`
	Budget      decimal.NullDecimal `json:"budget"`
	IsPublic    bool                `json:"is_public"`
	Latitude    *float64            `json:"latitude,omitempty"`
	Longitude   *float64            `json:"longitude,omitempty"`
	Likes       int                 `json:"likes"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// TripRequest is the body of POST /trips and PUT /trips/{tripId}.
type TripRequest struct {
	Title       string              `json:"title"`
	Description *string             `json:"description,omitempty"`
	StartDate   *openapi_types.Date `json:"start_date,omitempty"`
	EndDate     *openapi_types.Date `json:"end_date,omitempty"`
	Budget      decimal.NullDecimal `json:"budget"`
	IsPublic    *bool               `json:"is_public,omitempty"`
	Latitude    *float64            `json:"latitude,omitempty"`
	Longitude   *float64            `json:"longitude,omitempty"`
}

type TripList struct {
	Data       []Trip     `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type Stop struct {
	ID           uuid.UUID           `json:"id"`
	TripID       uuid.UUID           `json:"trip_id"`
	Position     int                 `json:"position"`
	LocationName string              `json:"location_name"`
	ArrivalAt    *time.Time          `json:"arrival_at,omitempty"`
	DepartureAt  *time.Time          `json:"departure_at,omitempty"`
	Budget       decimal.NullDecimal `json:"budget"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

type StopRequest struct {
	Position     int                 `json:"position"`
	LocationName string              `json:"location_name"`
	ArrivalAt    *time.Time          `json:"arrival_at,omitempty"`
	DepartureAt  *time.Time          `json:"departure_at,omitempty"`
	Budget       decimal.NullDecimal `json:"budget"`
}

type Activity struct {
	ID        uuid.UUID           `json:"id"`
	StopID    uuid.UUID           `json:"stop_id"`
	Title     string              `json:"title"`
	Cost      decimal.NullDecimal `json:"cost"`
	Category  string              `json:"category"`
	Position  int                 `json:"position"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

type ActivityRequest struct {
	Title    string              `json:"title"`
	Cost     decimal.NullDecimal `json:"cost"`
	Category string              `json:"category"`
	Position int                 `json:"position"`
}

type BudgetOverview struct {
	TotalSpent decimal.Decimal `json:"total_spent"`
	TripCount  int             `json:"trip_count"`
	Trips      []TripSpend     `json:"trips"`
}

type TripSpend struct {
	ID         uuid.UUID           `json:"id"`
	Title      string              `json:"title"`
	StartDate  *openapi_types.Date `json:"start_date,omitempty"`
	EndDate    *openapi_types.Date `json:"end_date,omitempty"`
	TotalSpent decimal.Decimal     `json:"total_spent"`
}

type BudgetBreakdown struct {
	ByCategory []CategoryAmount `json:"by_category"`
	ByDay      []DayAmount      `json:"by_day"`
}

type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

type DayAmount struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

type Timeline struct {
	Trip Trip          `json:"trip"`
	Days []TimelineDay `json:"days"`
}

type TimelineDay struct {
	DayNumber int                `json:"day_number"`
	Date      openapi_types.Date `json:"date"`
	Stops     []TimelineStop     `json:"stops"`
}

type TimelineStop struct {
	Stop
	Activities []Activity `json:"activities"`
}

type Calendar struct {
	LaneCount int            `json:"lane_count"`
	Trips     []CalendarTrip `json:"trips"`
}

// CalendarTrip is a trip placed on the calendar. Lane is absent for trips
// missing a start or end date.
type CalendarTrip struct {
	ID        uuid.UUID           `json:"id"`
	Title     string              `json:"title"`
	StartDate *openapi_types.Date `json:"start_date,omitempty"`
	EndDate   *openapi_types.Date `json:"end_date,omitempty"`
	Lane      *int                `json:"lane,omitempty"`
}

type ExportRow struct {
	TripID           string     `json:"trip_id"`
	TripTitle        string     `json:"trip_title"`
	TripStartDate    string     `json:"trip_start_date,omitempty"`
	TripEndDate      string     `json:"trip_end_date,omitempty"`
	StopPosition     string     `json:"stop_position,omitempty"`
	StopLocation     string     `json:"stop_location,omitempty"`
	ArrivalAt        *time.Time `json:"arrival_at,omitempty"`
	DepartureAt      *time.Time `json:"departure_at,omitempty"`
	ActivityTitle    string     `json:"activity_title,omitempty"`
	ActivityCategory string     `json:"activity_category,omitempty"`
	ActivityCost     string     `json:"activity_cost,omitempty"`
}

type LocationDescription struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type LocationRecommendations struct {
	Destination     string                  `json:"destination"`
	Recommendations []domain.Recommendation `json:"recommendations"`
}

// --- mapping helpers --------------------------------------------------------

func optionalDate(t *time.Time) *openapi_types.Date {
	if t == nil {
		return nil
	}
	return &openapi_types.Date{Time: *t}
}

func dateOrNil(d *openapi_types.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

func tripToResponse(t domain.Trip) Trip {
	resp := Trip{
		ID:        t.ID,
		Title:     t.Title,
		StartDate: optionalDate(t.StartDate),
		EndDate:   optionalDate(t.EndDate),
		Budget:    t.Budget,
		IsPublic:  t.IsPublic,
		Latitude:  t.Latitude,
		Longitude: t.Longitude,
		Likes:     t.Likes,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	if t.Description != "" {
		resp.Description = &t.Description
	}
	return resp
}

func requestToTrip(userID, id uuid.UUID, body TripRequest) domain.Trip {
	t := domain.Trip{
		ID:        id,
		UserID:    userID,
		Title:     body.Title,
		StartDate: dateOrNil(body.StartDate),
		EndDate:   dateOrNil(body.EndDate),
		Budget:    body.Budget,
		Latitude:  body.Latitude,
		Longitude: body.Longitude,
	}
	if body.Description != nil {
		t.Description = *body.Description
	}
	if body.IsPublic != nil {
		t.IsPublic = *body.IsPublic
	}
	return t
}

func stopToResponse(s domain.Stop) Stop {
	return Stop{
		ID:           s.ID,
		TripID:       s.TripID,
		Position:     s.Position,
		LocationName: s.LocationName,
		ArrivalAt:    s.ArrivalAt,
		DepartureAt:  s.DepartureAt,
		Budget:       s.Budget,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func requestToStop(tripID, stopID uuid.UUID, body StopRequest) domain.Stop {
	return domain.Stop{
		ID:           stopID,
		TripID:       tripID,
		Position:     body.Position,
		LocationName: body.LocationName,
		ArrivalAt:    body.ArrivalAt,
		DepartureAt:  body.DepartureAt,
		Budget:       body.Budget,
	}
}

func activityToResponse(a domain.Activity) Activity {
	return Activity{
		ID:        a.ID,
		StopID:    a.StopID,
		Title:     a.Title,
		Cost:      a.Cost,
		Category:  a.Category,
		Position:  a.Position,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func activitiesToResponse(in []domain.Activity) []Activity {
	out := make([]Activity, len(in))
	for i, a := range in {
		out[i] = activityToResponse(a)
	}
	return out
}

func requestToActivity(stopID, activityID uuid.UUID, body ActivityRequest) domain.Activity {
	return domain.Activity{
		ID:       activityID,
		StopID:   stopID,
		Title:    body.Title,
		Cost:     body.Cost,
		Category: body.Category,
		Position: body.Position,
	}
}
