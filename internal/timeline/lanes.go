package timeline

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/travel-planner/internal/domain"
)

// AssignLanes places dated trips into horizontal lanes so that no two trips
// sharing a lane overlap.
//
// Trips are taken in start order, with longer trips first on equal starts.
// Each trip goes into the lowest lane whose last trip ended strictly before
// this one starts, or a new lane if none qualifies. Processing in start order
// makes the lane count equal to the maximum overlap depth.
//
// Trips missing either date are skipped and get no lane.
func AssignLanes(trips []domain.Trip) domain.LaneAssignment {
	type span struct {
		id         uuid.UUID
		start, end time.Time
	}

	spans := make([]span, 0, len(trips))
	for _, t := range trips {
		if t.StartDate == nil || t.EndDate == nil {
			continue
		}
		spans = append(spans, span{
			id:    t.ID,
			start: CalendarDate(*t.StartDate),
			end:   CalendarDate(*t.EndDate),
		})
	}

	sort.SliceStable(spans, func(i, j int) bool {
		if !spans[i].start.Equal(spans[j].start) {
			return spans[i].start.Before(spans[j].start)
		}
		return spans[i].end.Sub(spans[i].start) > spans[j].end.Sub(spans[j].start)
	})

	result := domain.LaneAssignment{LaneOf: make(map[uuid.UUID]int, len(spans))}
	var laneEnds []time.Time
	for _, s := range spans {
		lane := -1
		for i, end := range laneEnds {
			if end.Before(s.start) {
				lane = i
				break
			}
		}
		if lane == -1 {
			laneEnds = append(laneEnds, s.end)
			lane = len(laneEnds) - 1
		} else {
			laneEnds[lane] = s.end
		}
		result.LaneOf[s.id] = lane
	}
	result.LaneCount = len(laneEnds)
	return result
}
