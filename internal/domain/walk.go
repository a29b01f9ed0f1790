package domain

// Snapshot of a waypoint as visited on a walk.
type WalkStop struct {
	Name               string
	VisitDuration      float64
	VisitCost          float64
	EdgeDistanceToNext float64
	EdgeDurationToNext float64
}

// Walk is the ordered subset of a route selected for an itinerary.
// It shares nothing with the route it was taken from.
type Walk struct {
	Stops []WalkStop
}

// Totals aggregates the cost, time and travel distance of a walk.
// Duration counts each stop's visit plus the leg to its successor.
type Totals struct {
	Cost            float64
	DurationSeconds float64
	DistanceMeters  float64
}

func (w Walk) Len() int { return len(w.Stops) }

func (w Walk) Totals() Totals {
	var t Totals
	for _, s := range w.Stops {
		t.Cost += s.VisitCost
		t.DurationSeconds += s.VisitDuration + s.EdgeDurationToNext
		t.DistanceMeters += s.EdgeDistanceToNext
	}
	return t
}
