package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-planner/internal/domain"
	"github.com/pkordes/travel-planner/internal/handler"
	"github.com/pkordes/travel-planner/internal/service"
)

func TestGetLocationDescription(t *testing.T) {
	svc := &mockLocationServicer{
		describe: func(_ context.Context, name string) (string, error) {
			assert.Equal(t, "New York", name)
			return "The city that never sleeps.", nil
		},
	}

	rec := do(t, newHTTPHandler(t, handler.Services{Locations: svc}), http.MethodGet,
		"/locations/New%20York/description", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[handler.LocationDescription](t, rec)
	assert.Equal(t, "New York", resp.Name)
	assert.Equal(t, "The city that never sleeps.", resp.Description)
}

func TestGetLocationDescription_GeneratorDisabledIsEmpty(t *testing.T) {
	svc := &mockLocationServicer{
		describe: func(_ context.Context, _ string) (string, error) {
			return "", fmt.Errorf("service.LocationService.Describe: %w", service.ErrGeneratorDisabled)
		},
	}

	rec := do(t, newHTTPHandler(t, handler.Services{Locations: svc}), http.MethodGet, "/locations/Oslo/description", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"name":"Oslo","description":""}`, rec.Body.String())
}

func TestGetLocationDescription_422(t *testing.T) {
	svc := &mockLocationServicer{
		describe: func(_ context.Context, _ string) (string, error) {
			return "", fmt.Errorf("%w: location name is required", domain.ErrValidation)
		},
	}

	rec := do(t, newHTTPHandler(t, handler.Services{Locations: svc}), http.MethodGet, "/locations/%20/description", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGetLocationRecommendations(t *testing.T) {
	svc := &mockLocationServicer{
		recommend: func(_ context.Context, _ string) ([]domain.Recommendation, error) {
			return []domain.Recommendation{{Name: "Vigeland Park", Description: "Sculptures"}}, nil
		},
	}

	rec := do(t, newHTTPHandler(t, handler.Services{Locations: svc}), http.MethodGet, "/locations/Oslo/recommendations", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[handler.LocationRecommendations](t, rec)
	assert.Equal(t, "Oslo", resp.Destination)
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, "Vigeland Park", resp.Recommendations[0].Name)
}

func TestGetLocationRecommendations_FailureIsEmpty(t *testing.T) {
	svc := &mockLocationServicer{
		recommend: func(_ context.Context, _ string) ([]domain.Recommendation, error) {
			return nil, fmt.Errorf("genai: rate limited")
		},
	}

	rec := do(t, newHTTPHandler(t, handler.Services{Locations: svc}), http.MethodGet, "/locations/Oslo/recommendations", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"destination":"Oslo","recommendations":[]}`, rec.Body.String())
}
