package timeline

import (
	"sort"
	"time"

	"github.com/pkordes/travel-planner/internal/domain"
)

// GroupByDay buckets stops by the calendar date of their arrival.
//
// Stops without an arrival are left out. Groups come back in ascending date
// order and each keeps its stops in the order given, which callers pass in
// persisted position order. When tripStart is set the day number counts
// calendar days from it (the start date is day 1); otherwise the 1-based rank
// of the date among the distinct dates stands in.
func GroupByDay(stops []domain.StopWithActivities, tripStart *time.Time) []domain.DayGroup {
	byDate := make(map[time.Time][]domain.StopWithActivities)
	var dates []time.Time
	for _, s := range stops {
		if s.Stop.ArrivalAt == nil {
			continue
		}
		d := CalendarDate(*s.Stop.ArrivalAt)
		if _, seen := byDate[d]; !seen {
			dates = append(dates, d)
		}
		byDate[d] = append(byDate[d], s)
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	groups := make([]domain.DayGroup, 0, len(dates))
	for i, d := range dates {
		dayNumber := i + 1
		if tripStart != nil {
			dayNumber = DaysBetween(*tripStart, d) + 1
		}
		groups = append(groups, domain.DayGroup{
			DayNumber: dayNumber,
			Date:      d,
			Stops:     byDate[d],
		})
	}
	return groups
}
