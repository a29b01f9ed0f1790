package services

import (
	"errors"
	"math"
	"slices"
	"testing"
	"travel-itinerary-service/internal/domain"
)

func stop(name string, cost, duration, edgeDuration float64) *domain.Waypoint {
	return &domain.Waypoint{
		Name:               name,
		VisitCost:          cost,
		VisitDuration:      duration,
		EdgeDurationToNext: edgeDuration,
		EdgeDistanceToNext: edgeDuration * 10,
	}
}

func walkNames(w domain.Walk) []string {
	out := make([]string, 0, len(w.Stops))
	for _, s := range w.Stops {
		out = append(out, s.Name)
	}
	return out
}

func TestWalkDropsOvershootingStop(t *testing.T) {
	route := domain.NewRoute(
		stop("P0", 10, 1, 1),
		stop("P1", 10, 1, 1),
		stop("P2", 10, 1, 1),
	)

	walk, err := Walk(route, 0, 25, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := walkNames(walk); !slices.Equal(got, []string{"P0", "P1"}) {
		t.Fatalf("walk = %v, want [P0 P1]", got)
	}

	totals := walk.Totals()
	if totals.Cost != 20 || totals.DurationSeconds != 4 || totals.DistanceMeters != 20 {
		t.Fatalf("totals = %+v", totals)
	}
}

func TestWalkZeroBudgetIsEmpty(t *testing.T) {
	route := domain.NewRoute(stop("P0", 1, 1, 1), stop("P1", 1, 1, 1))

	walk, err := Walk(route, 1, 0, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if walk.Len() != 0 {
		t.Fatalf("walk = %v, want empty", walkNames(walk))
	}
}

func TestWalkTimeCeiling(t *testing.T) {
	route := domain.NewRoute(
		stop("A", 0, 3600, 600),
		stop("B", 0, 3600, 600),
		stop("C", 0, 3600, 600),
	)

	// After A: 4200, after B: 8400 <= 9000, after C: 12600 > 9000.
	walk, err := Walk(route, 0, 0, 9000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := walkNames(walk); !slices.Equal(got, []string{"A", "B"}) {
		t.Fatalf("walk = %v, want [A B]", got)
	}
}

func TestWalkWrapsAround(t *testing.T) {
	route := domain.NewRoute(
		stop("A", 1, 0, 0),
		stop("B", 1, 0, 0),
		stop("C", 1, 0, 0),
	)

	walk, err := Walk(route, 2, 2, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := walkNames(walk); !slices.Equal(got, []string{"C", "A"}) {
		t.Fatalf("walk = %v, want [C A]", got)
	}
}

func TestWalkNeverExceedsRouteSize(t *testing.T) {
	cases := []struct {
		name  string
		route *domain.Route
	}{
		{"all free", domain.NewRoute(stop("A", 0, 0, 0), stop("B", 0, 0, 0), stop("C", 0, 0, 0))},
		{"cheap", domain.NewRoute(stop("A", 1, 1, 1), stop("B", 1, 1, 1))},
		{"single", domain.NewRoute(stop("A", 0, 0, 0))},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for start := 0; start < c.route.Len(); start++ {
				walk, err := Walk(c.route, start, 1e9, 1e9)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if walk.Len() != c.route.Len() {
					t.Fatalf("start=%d: walk length %d, want %d", start, walk.Len(), c.route.Len())
				}
				if walk.Stops[0].Name != c.route.Waypoints()[start].Name {
					t.Fatalf("start=%d: walk begins at %q", start, walk.Stops[0].Name)
				}
			}
		})
	}
}

func TestWalkSnapshotsAreIndependent(t *testing.T) {
	a := stop("A", 1, 1, 1)
	route := domain.NewRoute(a, stop("B", 1, 1, 1))

	walk, err := Walk(route, 0, 10, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a.VisitCost = 99
	a.Name = "renamed"

	if walk.Stops[0].Name != "A" || walk.Stops[0].VisitCost != 1 {
		t.Fatalf("walk aliases route waypoint: %+v", walk.Stops[0])
	}
}

func TestWalkErrors(t *testing.T) {
	route := domain.NewRoute(stop("A", 1, 1, 1), stop("B", 1, 1, 1))

	if _, err := Walk(domain.NewRoute(), 0, 1, 1); !errors.Is(err, domain.ErrEmptyRoute) {
		t.Fatalf("empty route: err = %v", err)
	}
	if _, err := Walk(nil, 0, 1, 1); !errors.Is(err, domain.ErrEmptyRoute) {
		t.Fatalf("nil route: err = %v", err)
	}
	for _, start := range []int{-1, 2, 10} {
		if _, err := Walk(route, start, 1, 1); !errors.Is(err, domain.ErrInvalidStartIndex) {
			t.Fatalf("start=%d: err = %v, want ErrInvalidStartIndex", start, err)
		}
	}
	if _, err := Walk(route, 0, -1, 1); !errors.Is(err, domain.ErrInvalidCeiling) {
		t.Fatalf("negative budget: err = %v", err)
	}
	if _, err := Walk(route, 0, 1, math.NaN()); !errors.Is(err, domain.ErrInvalidCeiling) {
		t.Fatalf("NaN time: err = %v", err)
	}
}
