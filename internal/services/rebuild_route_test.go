package services

import (
	"context"
	"slices"
	"testing"
	"travel-itinerary-service/internal/adapters/distance"
	"travel-itinerary-service/internal/adapters/repositories"
	"travel-itinerary-service/internal/domain"
)

func names(ws []*domain.Waypoint) []string {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.Name)
	}
	return out
}

func TestRebuildRoutePersistsOrderAndLegs(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryWaypointRepository(wp("A", 0, 0), wp("D", 2, 0), wp("C", 1, 0), wp("B", 3, 0))
	provider := distance.NewMockDistanceProvider([]distance.MockPair{
		{From: "A", To: "C", Meters: 1000, Seconds: 60},
		{From: "C", To: "D", Meters: 2000, Seconds: 120},
		{From: "D", To: "B", Meters: 3000, Seconds: 180},
	})

	route, err := RebuildRoute(ctx, RebuildRouteRequest{}, repo, provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := route.Names(); !slices.Equal(got, []string{"A", "C", "D", "B"}) {
		t.Fatalf("route = %v, want [A C D B]", got)
	}

	stored, err := repo.ListWaypoints(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := names(stored); !slices.Equal(got, []string{"A", "C", "D", "B"}) {
		t.Fatalf("stored = %v, want [A C D B]", got)
	}
	if stored[1].EdgeDistanceToNext != 2000 || stored[3].EdgeDistanceToNext != 0 {
		t.Fatalf("stored legs: C=%v B=%v", stored[1].EdgeDistanceToNext, stored[3].EdgeDistanceToNext)
	}
}

func TestRebuildRouteFailureKeepsStoredRoute(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryWaypointRepository(wp("A", 0, 0), wp("D", 2, 0), wp("C", 1, 0), wp("B", 3, 0))
	provider := distance.NewMockDistanceProvider(nil)

	if _, err := RebuildRoute(ctx, RebuildRouteRequest{WrapAround: true}, repo, provider); err == nil {
		t.Fatalf("expected provider error")
	}

	stored, _ := repo.ListWaypoints(ctx)
	if got := names(stored); !slices.Equal(got, []string{"A", "D", "C", "B"}) {
		t.Fatalf("stored order changed after failure: %v", got)
	}
}
