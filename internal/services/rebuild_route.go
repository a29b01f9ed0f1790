package services

import (
	"context"
	"fmt"
	"travel-itinerary-service/internal/domain"
	"travel-itinerary-service/internal/geo"
	"travel-itinerary-service/internal/platform/obs"
	"travel-itinerary-service/internal/ports"
	"travel-itinerary-service/internal/seq"
)

type RebuildRouteRequest struct {
	WrapAround  bool
	Concurrency int
}

// RebuildRoute reorders the stored waypoints and refreshes their travel legs.
//
// Ordering uses great-circle distance only; the distance provider is called
// once per leg of the finished route, which keeps external lookups linear in
// the number of waypoints.
func RebuildRoute(
	ctx context.Context,
	req RebuildRouteRequest,
	repo ports.WaypointRepository,
	provider ports.DistanceProvider,
) (_ *domain.Route, err error) {
	defer obs.Time(ctx, "services.RebuildRoute")(&err)

	waypoints, err := repo.ListWaypoints(ctx)
	if err != nil {
		return nil, fmt.Errorf("rebuild route: list waypoints: %w", err)
	}

	route, err := BuildRoute(seq.New(waypoints...), geo.Distance)
	if err != nil {
		return nil, fmt.Errorf("rebuild route: %w", err)
	}

	if err := EnrichRoute(ctx, route, provider, req.WrapAround, req.Concurrency); err != nil {
		return nil, fmt.Errorf("rebuild route: %w", err)
	}

	if err := repo.SaveRoute(ctx, route); err != nil {
		return nil, fmt.Errorf("rebuild route: save route: %w", err)
	}

	return route, nil
}
