package domain

import "travel-itinerary-service/internal/seq"

// Route is a fixed visiting order over a set of waypoints.
// It is stored linearly; walks treat the last waypoint's successor as the first.
type Route struct {
	Stops *seq.Sequence[*Waypoint]
}

func NewRoute(waypoints ...*Waypoint) *Route {
	return &Route{Stops: seq.New(waypoints...)}
}

// Len returns the number of waypoints; a nil route has none.
func (r *Route) Len() int {
	if r == nil || r.Stops == nil {
		return 0
	}
	return r.Stops.Len()
}

// Waypoints returns the route order as a fresh slice.
func (r *Route) Waypoints() []*Waypoint {
	if r == nil || r.Stops == nil {
		return nil
	}
	return r.Stops.Values()
}

// Names returns waypoint names in route order.
func (r *Route) Names() []string {
	out := make([]string, 0, r.Len())
	for _, w := range r.Waypoints() {
		out = append(out, w.Name)
	}
	return out
}
