package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/travel-planner/internal/domain"
	"github.com/pkordes/travel-planner/internal/repo"
	"github.com/pkordes/travel-planner/internal/timeline"
)

// ExportService assembles a flat export of a user's trips, stops and activities.
type ExportService struct {
	trips      repo.TripRepo
	stops      repo.StopRepo
	activities repo.ActivityRepo
}

// NewExportService constructs an ExportService backed by the provided repos.
func NewExportService(trips repo.TripRepo, stops repo.StopRepo, activities repo.ActivityRepo) *ExportService {
	return &ExportService{trips: trips, stops: stops, activities: activities}
}

// Export returns one ExportRow per activity across all of the user's trips,
// in trip list order, then stop position, then activity position.
// Trips with no stops and stops with no activities still contribute a row.
// Always returns a non-nil slice.
func (s *ExportService) Export(ctx context.Context, userID uuid.UUID) ([]domain.ExportRow, error) {
	trips, err := s.trips.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := []domain.ExportRow{}
	for _, trip := range trips {
		base := domain.ExportRow{
			TripID:        trip.ID.String(),
			TripTitle:     trip.Title,
			TripStartDate: optionalDate(trip.StartDate),
			TripEndDate:   optionalDate(trip.EndDate),
		}

		stops, err := loadStops(ctx, s.stops, s.activities, trip.ID)
		if err != nil {
			return nil, fmt.Errorf("service.ExportService.Export: trip %s: %w", trip.ID, err)
		}
		if len(stops) == 0 {
			rows = append(rows, base)
			continue
		}

		for _, st := range stops {
			stopRow := base
			stopRow.StopPosition = strconv.Itoa(st.Stop.Position)
			stopRow.StopLocation = st.Stop.LocationName
			stopRow.ArrivalAt = st.Stop.ArrivalAt
			stopRow.DepartureAt = st.Stop.DepartureAt
			if len(st.Activities) == 0 {
				rows = append(rows, stopRow)
				continue
			}
			for _, a := range st.Activities {
				row := stopRow
				row.ActivityTitle = a.Title
				row.ActivityCategory = a.Category
				if a.Cost.Valid {
					row.ActivityCost = a.Cost.Decimal.StringFixed(2)
				}
				rows = append(rows, row)
			}
		}
	}
	return rows, nil
}

func optionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return timeline.FormatDate(*t)
}
