package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/travel-planner/internal/domain"
)

func intPtr(n int) *int { return &n }

func TestNewPaginationParams(t *testing.T) {
	tests := []struct {
		name        string
		page, limit *int
		want        domain.PaginationParams
	}{
		{"defaults", nil, nil, domain.PaginationParams{Page: 1, Limit: 20}},
		{"explicit", intPtr(3), intPtr(5), domain.PaginationParams{Page: 3, Limit: 5}},
		{"non-positive fall back", intPtr(0), intPtr(-4), domain.PaginationParams{Page: 1, Limit: 20}},
		{"limit clamped", intPtr(1), intPtr(500), domain.PaginationParams{Page: 1, Limit: 100}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, domain.NewPaginationParams(tc.page, tc.limit))
		})
	}
}

func TestPaginationParams_OffsetAndTotalPages(t *testing.T) {
	p := domain.NewPaginationParams(intPtr(3), intPtr(10))

	assert.Equal(t, 20, p.Offset())
	assert.Equal(t, 0, p.TotalPages(0))
	assert.Equal(t, 1, p.TotalPages(10))
	assert.Equal(t, 3, p.TotalPages(21))
}
