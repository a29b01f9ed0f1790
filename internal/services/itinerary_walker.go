package services

import (
	"fmt"
	"math"
	"travel-itinerary-service/internal/domain"
)

// Walk selects the stops visited from startIndex under budget and time ceilings.
//
// Stops are taken in route order, wrapping from the last waypoint to the
// first, while the accumulated cost and time stay within both ceilings.
// The stop whose addition was detected as the overshoot is then dropped, so
// a walk of k loop iterations yields max(0, k-1) stops. Iterations are capped
// at one full lap plus one, which bounds routes whose stops cost nothing.
//
// Time accumulates each stop's visit duration plus its edge duration to the
// next waypoint.
func Walk(route *domain.Route, startIndex int, budgetCeiling, timeCeiling float64) (domain.Walk, error) {
	n := route.Len()
	if n == 0 {
		return domain.Walk{}, domain.ErrEmptyRoute
	}
	if startIndex < 0 || startIndex >= n {
		return domain.Walk{}, fmt.Errorf("walk: start=%d size=%d: %w", startIndex, n, domain.ErrInvalidStartIndex)
	}
	if invalidCeiling(budgetCeiling) || invalidCeiling(timeCeiling) {
		return domain.Walk{}, fmt.Errorf("walk: budget=%v time=%v: %w", budgetCeiling, timeCeiling, domain.ErrInvalidCeiling)
	}

	stops := route.Waypoints()
	selected := make([]domain.WalkStop, 0, n+1)

	budgetUsed := 0.0
	timeUsed := 0.0
	current := startIndex

	for iterations := 0; iterations <= n; iterations++ {
		if budgetUsed > budgetCeiling || timeUsed > timeCeiling {
			break
		}

		w := stops[current]
		selected = append(selected, w.Snapshot())
		budgetUsed += w.VisitCost
		timeUsed += w.VisitDuration + w.EdgeDurationToNext

		current = (current + 1) % n
	}

	if len(selected) > 0 {
		selected = selected[:len(selected)-1]
	}

	return domain.Walk{Stops: selected}, nil
}

func invalidCeiling(v float64) bool {
	return math.IsNaN(v) || v < 0
}
