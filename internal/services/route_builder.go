package services

import (
	"travel-itinerary-service/internal/domain"
	"travel-itinerary-service/internal/geo"
	"travel-itinerary-service/internal/seq"
)

// BuildRoute orders waypoints with the nearest-insertion heuristic.
//
// The first and last input waypoints anchor the route. Every other waypoint,
// in input order, is inserted after the route position that adds the least
// detour given the route built so far; ties go to the lowest position.
// It is greedy and never revisits earlier insertions.
//
// The input sequence is left untouched. Waypoints whose successor differs
// from the input order have their edge data cleared, since it no longer
// describes their next leg.
func BuildRoute(waypoints *seq.Sequence[*domain.Waypoint], metric geo.Metric) (*domain.Route, error) {
	if waypoints == nil || waypoints.IsEmpty() {
		return nil, domain.ErrEmptyInput
	}
	if metric == nil {
		metric = geo.Distance
	}

	input := waypoints.Values()
	n := len(input)
	if n <= 2 {
		return domain.NewRoute(input...), nil
	}

	route := seq.New(input[0], input[n-1])
	for _, p := range input[1 : n-1] {
		best := cheapestInsertion(route, p, metric)
		if err := route.InsertAt(best+1, p); err != nil {
			return nil, err
		}
	}

	clearMovedEdges(input, route)

	return &domain.Route{Stops: route}, nil
}

// cheapestInsertion returns the index i minimising the detour of placing p
// between route[i] and route[i+1]. The route holds at least two waypoints.
func cheapestInsertion(route *seq.Sequence[*domain.Waypoint], p *domain.Waypoint, metric geo.Metric) int {
	stops := route.Values()

	best := 0
	bestCost := insertionCost(stops[0], p, stops[1], metric)
	for i := 1; i < len(stops)-1; i++ {
		// Strict comparison keeps the first minimiser.
		if c := insertionCost(stops[i], p, stops[i+1], metric); c < bestCost {
			best = i
			bestCost = c
		}
	}

	return best
}

// insertionCost is the extra distance of routing a -> p -> b instead of a -> b.
// It may be negative for metrics that break the triangle inequality.
func insertionCost(a, p, b *domain.Waypoint, metric geo.Metric) float64 {
	return metric(a.Coordinates, p.Coordinates) +
		metric(p.Coordinates, b.Coordinates) -
		metric(a.Coordinates, b.Coordinates)
}

func clearMovedEdges(input []*domain.Waypoint, route *seq.Sequence[*domain.Waypoint]) {
	next := make(map[*domain.Waypoint]*domain.Waypoint, len(input))
	for i := 0; i < len(input)-1; i++ {
		next[input[i]] = input[i+1]
	}

	ordered := route.Values()
	for i, w := range ordered {
		var successor *domain.Waypoint
		if i < len(ordered)-1 {
			successor = ordered[i+1]
		}
		if next[w] != successor {
			w.ClearEdge()
		}
	}
}
