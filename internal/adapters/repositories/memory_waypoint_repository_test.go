package repositories

import (
	"context"
	"errors"
	"slices"
	"testing"
	"travel-itinerary-service/internal/domain"
)

func waypoint(name string, edge float64) *domain.Waypoint {
	return &domain.Waypoint{Name: name, EdgeDistanceToNext: edge, EdgeDurationToNext: edge}
}

func listNames(t *testing.T, r *MemoryWaypointRepository) []string {
	t.Helper()

	ws, err := r.ListWaypoints(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.Name)
	}
	return out
}

func TestMemoryRepositoryAddKeepsAnchors(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryWaypointRepository()

	if err := r.AddWaypoint(ctx, waypoint("Start", 0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.AddWaypoint(ctx, waypoint("End", 7)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.AddWaypoint(ctx, waypoint("Middle", 0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := listNames(t, r); !slices.Equal(got, []string{"Start", "Middle", "End"}) {
		t.Fatalf("order = %v", got)
	}

	end, err := r.GetWaypoint(ctx, "end")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if end.EdgeDistanceToNext != 0 {
		t.Fatalf("new waypoint kept edge %v", end.EdgeDistanceToNext)
	}

	if err := r.AddWaypoint(ctx, waypoint("MIDDLE", 0)); !errors.Is(err, domain.ErrDuplicateWaypoint) {
		t.Fatalf("duplicate: err = %v", err)
	}
}

func TestMemoryRepositoryEditsClearStaleEdges(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryWaypointRepository(waypoint("A", 1), waypoint("B", 2), waypoint("C", 3))

	if err := r.DeleteWaypoint(ctx, "b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, _ := r.GetWaypoint(ctx, "A")
	c, _ := r.GetWaypoint(ctx, "C")
	if a.EdgeDistanceToNext != 0 || c.EdgeDistanceToNext != 3 {
		t.Fatalf("edges after delete: A=%v C=%v", a.EdgeDistanceToNext, c.EdgeDistanceToNext)
	}

	r = NewMemoryWaypointRepository(waypoint("A", 1), waypoint("C", 3))
	if err := r.AddWaypoint(ctx, waypoint("X", 0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, _ = r.GetWaypoint(ctx, "A")
	if a.EdgeDistanceToNext != 0 || a.EdgeDurationToNext != 0 {
		t.Fatalf("first waypoint kept edge after insert: %+v", a)
	}

	if err := r.DeleteWaypoint(ctx, "B"); !errors.Is(err, domain.ErrWaypointNotFound) {
		t.Fatalf("delete unknown: err = %v", err)
	}
	if _, err := r.UpdateWaypoint(ctx, "B", 1, 1); !errors.Is(err, domain.ErrWaypointNotFound) {
		t.Fatalf("update unknown: err = %v", err)
	}
}

func TestMemoryRepositoryCopiesInAndOut(t *testing.T) {
	ctx := context.Background()
	original := waypoint("A", 1)
	r := NewMemoryWaypointRepository(original)

	original.Name = "mutated"
	listed, _ := r.ListWaypoints(ctx)
	listed[0].VisitCost = 50

	got, err := r.GetWaypoint(ctx, "A")
	if err != nil {
		t.Fatalf("caller mutation leaked into store: %v", err)
	}
	if got.VisitCost != 0 {
		t.Fatalf("listed copy aliases store: %+v", got)
	}
}

func TestMemoryRepositorySaveRoute(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryWaypointRepository(waypoint("A", 0), waypoint("B", 0))

	c := waypoint("C", 9)
	if err := r.SaveRoute(ctx, domain.NewRoute(c, waypoint("A", 4))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := listNames(t, r); !slices.Equal(got, []string{"C", "A"}) {
		t.Fatalf("order = %v", got)
	}

	if err := r.SaveRoute(ctx, domain.NewRoute(c, c)); err == nil {
		t.Fatalf("expected error for repeated waypoint")
	}
	if got := listNames(t, r); !slices.Equal(got, []string{"C", "A"}) {
		t.Fatalf("failed save changed order: %v", got)
	}
}
