package handler_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-planner/internal/domain"
	"github.com/pkordes/travel-planner/internal/handler"
)

func activitiesOnly(svc handler.ActivityServicer) handler.Services {
	return handler.Services{Activities: svc}
}

func activityPath(tripID, stopID uuid.UUID) string {
	return "/trips/" + tripID.String() + "/stops/" + stopID.String() + "/activities"
}

func TestCreateActivity_201(t *testing.T) {
	tripID, stopID := uuid.New(), uuid.New()
	svc := &mockActivityServicer{
		create: func(_ context.Context, userID, tID uuid.UUID, a domain.Activity) (domain.Activity, error) {
			assert.Equal(t, testUser, userID)
			assert.Equal(t, tripID, tID)
			a.ID = uuid.New()
			return a, nil
		},
	}

	rec := do(t, newHTTPHandler(t, activitiesOnly(svc)), http.MethodPost, activityPath(tripID, stopID),
		strings.NewReader(`{"title":"Glacier boat","cost":"85.50","category":"Tours","position":1}`))

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decode[handler.Activity](t, rec)
	assert.Equal(t, stopID, resp.StopID)
	assert.True(t, resp.Cost.Valid)
	assert.True(t, decimal.RequireFromString("85.5").Equal(resp.Cost.Decimal))
	assert.Equal(t, "Tours", resp.Category)
}

func TestCreateActivity_NullCost(t *testing.T) {
	svc := &mockActivityServicer{
		create: func(_ context.Context, _, _ uuid.UUID, a domain.Activity) (domain.Activity, error) { return a, nil },
	}

	rec := do(t, newHTTPHandler(t, activitiesOnly(svc)), http.MethodPost, activityPath(uuid.New(), uuid.New()),
		strings.NewReader(`{"title":"Sunset","cost":null}`))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cost":null`)
}

func TestListActivities_200(t *testing.T) {
	svc := &mockActivityServicer{
		listByStopID: func(_ context.Context, _, _, _ uuid.UUID) ([]domain.Activity, error) {
			return []domain.Activity{{ID: uuid.New(), Title: "a"}, {ID: uuid.New(), Title: "b"}}, nil
		},
	}

	rec := do(t, newHTTPHandler(t, activitiesOnly(svc)), http.MethodGet, activityPath(uuid.New(), uuid.New()), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]handler.Activity](t, rec), 2)
}

func TestGetActivity_404(t *testing.T) {
	svc := &mockActivityServicer{
		getByID: func(_ context.Context, _, _, _, _ uuid.UUID) (domain.Activity, error) {
			return domain.Activity{}, domain.ErrNotFound
		},
	}

	rec := do(t, newHTTPHandler(t, activitiesOnly(svc)), http.MethodGet,
		activityPath(uuid.New(), uuid.New())+"/"+uuid.NewString(), nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "activity not found", decode[handler.ErrorResponse](t, rec).Error.Message)
}

func TestUpdateActivity_UsesPathIDs(t *testing.T) {
	stopID, activityID := uuid.New(), uuid.New()
	svc := &mockActivityServicer{
		update: func(_ context.Context, _, _ uuid.UUID, a domain.Activity) (domain.Activity, error) { return a, nil },
	}

	rec := do(t, newHTTPHandler(t, activitiesOnly(svc)), http.MethodPut,
		activityPath(uuid.New(), stopID)+"/"+activityID.String(), strings.NewReader(`{"title":"Renamed"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[handler.Activity](t, rec)
	assert.Equal(t, activityID, resp.ID)
	assert.Equal(t, stopID, resp.StopID)
}

func TestDeleteActivity_204(t *testing.T) {
	svc := &mockActivityServicer{
		delete: func(_ context.Context, _, _, _, _ uuid.UUID) error { return nil },
	}

	rec := do(t, newHTTPHandler(t, activitiesOnly(svc)), http.MethodDelete,
		activityPath(uuid.New(), uuid.New())+"/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
