package repositories

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"travel-itinerary-service/internal/domain"
	"travel-itinerary-service/internal/seq"
)

// MemoryWaypointRepository keeps waypoints in process memory.
// It is used when no DATABASE_URL is configured, and in tests.
// Waypoints are copied in and out so callers never share state with the store.
type MemoryWaypointRepository struct {
	mu        sync.Mutex
	waypoints seq.Sequence[*domain.Waypoint]
}

func NewMemoryWaypointRepository(initial ...*domain.Waypoint) *MemoryWaypointRepository {
	r := &MemoryWaypointRepository{}
	for _, w := range initial {
		r.waypoints.Append(copyWaypoint(w))
	}
	return r
}

func (r *MemoryWaypointRepository) ListWaypoints(ctx context.Context) ([]*domain.Waypoint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.Waypoint, 0, r.waypoints.Len())
	for _, w := range r.waypoints.All() {
		out = append(out, copyWaypoint(w))
	}
	return out, nil
}

func (r *MemoryWaypointRepository) GetWaypoint(ctx context.Context, name string) (*domain.Waypoint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(name)
	if i < 0 {
		return nil, fmt.Errorf("get waypoint %q: %w", name, domain.ErrWaypointNotFound)
	}
	w, err := r.waypoints.Get(i)
	if err != nil {
		return nil, fmt.Errorf("get waypoint %q: %w", name, err)
	}
	return copyWaypoint(w), nil
}

func (r *MemoryWaypointRepository) AddWaypoint(ctx context.Context, w *domain.Waypoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(w.Name) >= 0 {
		return fmt.Errorf("add waypoint %q: %w", w.Name, domain.ErrDuplicateWaypoint)
	}

	added := copyWaypoint(w)
	added.ClearEdge()

	pos := min(1, r.waypoints.Len())
	if pos > 0 {
		// The first waypoint's successor changes.
		first, _ := r.waypoints.Get(0)
		first.ClearEdge()
	}
	return r.waypoints.InsertAt(pos, added)
}

func (r *MemoryWaypointRepository) UpdateWaypoint(
	ctx context.Context,
	name string,
	visitDuration, visitCost float64,
) (*domain.Waypoint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(name)
	if i < 0 {
		return nil, fmt.Errorf("update waypoint %q: %w", name, domain.ErrWaypointNotFound)
	}
	w, err := r.waypoints.Get(i)
	if err != nil {
		return nil, fmt.Errorf("update waypoint %q: %w", name, err)
	}
	w.VisitDuration = visitDuration
	w.VisitCost = visitCost
	return copyWaypoint(w), nil
}

func (r *MemoryWaypointRepository) DeleteWaypoint(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(name)
	if i < 0 {
		return fmt.Errorf("delete waypoint %q: %w", name, domain.ErrWaypointNotFound)
	}
	if _, err := r.waypoints.RemoveAt(i); err != nil {
		return fmt.Errorf("delete waypoint %q: %w", name, err)
	}
	if i > 0 {
		prev, _ := r.waypoints.Get(i - 1)
		prev.ClearEdge()
	}
	return nil
}

func (r *MemoryWaypointRepository) SaveRoute(ctx context.Context, route *domain.Route) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var next seq.Sequence[*domain.Waypoint]
	for _, w := range route.Waypoints() {
		if next.IndexOf(w) >= 0 {
			return fmt.Errorf("save route: waypoint %q appears twice", w.Name)
		}
		next.Append(w)
	}

	stored := make([]*domain.Waypoint, 0, next.Len())
	for _, w := range next.All() {
		stored = append(stored, copyWaypoint(w))
	}
	r.waypoints = *seq.New(stored...)
	return nil
}

func (r *MemoryWaypointRepository) indexOf(name string) int {
	name = strings.TrimSpace(name)
	for i, w := range r.waypoints.All() {
		if strings.EqualFold(w.Name, name) {
			return i
		}
	}
	return -1
}

func copyWaypoint(w *domain.Waypoint) *domain.Waypoint {
	c := *w
	return &c
}
