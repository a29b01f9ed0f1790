package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"travel-itinerary-service/internal/domain"
	"travel-itinerary-service/internal/metrics"
	"travel-itinerary-service/internal/platform/obs"
	"travel-itinerary-service/internal/ports"
)

type PlanItineraryRequest struct {
	// StartIndex takes precedence over StartName. When neither is set a
	// random start is chosen.
	StartIndex *int
	StartName  string
	Budget     float64
	// TimeSeconds caps visit plus travel time.
	TimeSeconds float64
}

type Itinerary struct {
	StartIndex int
	Walk       domain.Walk
	Totals     domain.Totals
}

// PlanItinerary walks the persisted route under the request's ceilings.
func PlanItinerary(
	ctx context.Context,
	req PlanItineraryRequest,
	repo ports.WaypointRepository,
) (_ *Itinerary, err error) {
	defer obs.Time(ctx, "services.PlanItinerary")(&err)

	waypoints, err := repo.ListWaypoints(ctx)
	if err != nil {
		return nil, fmt.Errorf("plan itinerary: list waypoints: %w", err)
	}

	route := domain.NewRoute(waypoints...)
	if route.Len() == 0 {
		return nil, fmt.Errorf("plan itinerary: %w", domain.ErrEmptyRoute)
	}

	start, err := resolveStart(route, req)
	if err != nil {
		return nil, fmt.Errorf("plan itinerary: %w", err)
	}

	walk, err := Walk(route, start, req.Budget, req.TimeSeconds)
	if err != nil {
		return nil, fmt.Errorf("plan itinerary: %w", err)
	}
	metrics.WalkStops.Observe(float64(walk.Len()))

	return &Itinerary{
		StartIndex: start,
		Walk:       walk,
		Totals:     walk.Totals(),
	}, nil
}

func resolveStart(route *domain.Route, req PlanItineraryRequest) (int, error) {
	if req.StartIndex != nil {
		return *req.StartIndex, nil
	}

	name := strings.TrimSpace(req.StartName)
	if name == "" {
		return rand.IntN(route.Len()), nil
	}

	for i, w := range route.Waypoints() {
		if strings.EqualFold(w.Name, name) {
			return i, nil
		}
	}

	return 0, fmt.Errorf("start %q: %w", name, domain.ErrWaypointNotFound)
}
