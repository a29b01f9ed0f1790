package domain

// Represents a named stop that can be visited on an itinerary.
//
// VisitDuration is in seconds and VisitCost in currency units.
// The edge fields describe travel to the waypoint's successor in the
// route it currently belongs to (meters and seconds) and are rewritten
// whenever that successor changes.
type Waypoint struct {
	Name               string
	Coordinates        Coordinates
	VisitDuration      float64
	VisitCost          float64
	EdgeDistanceToNext float64
	EdgeDurationToNext float64
}

// ClearEdge drops cached travel data to the successor.
func (w *Waypoint) ClearEdge() {
	w.EdgeDistanceToNext = 0
	w.EdgeDurationToNext = 0
}

// Snapshot copies the fields an itinerary reports for this waypoint.
func (w *Waypoint) Snapshot() WalkStop {
	return WalkStop{
		Name:               w.Name,
		VisitDuration:      w.VisitDuration,
		VisitCost:          w.VisitCost,
		EdgeDistanceToNext: w.EdgeDistanceToNext,
		EdgeDurationToNext: w.EdgeDurationToNext,
	}
}
