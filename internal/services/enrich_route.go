package services

import (
	"context"
	"fmt"
	"travel-itinerary-service/internal/domain"
	"travel-itinerary-service/internal/platform/obs"
	"travel-itinerary-service/internal/ports"

	"golang.org/x/sync/errgroup"
)

// DefaultEnrichConcurrency bounds in-flight provider calls during enrichment.
const DefaultEnrichConcurrency = 5

// EnrichRoute fetches the driving leg from every waypoint to its successor
// and stores it on the waypoint.
//
// With wrapAround the last waypoint receives the leg back to the first;
// otherwise its edge is cleared. Waypoints are only mutated once every leg
// has been fetched, so a failed enrichment leaves the route as it was.
func EnrichRoute(
	ctx context.Context,
	route *domain.Route,
	provider ports.DistanceProvider,
	wrapAround bool,
	concurrency int,
) (err error) {
	defer obs.Time(ctx, "services.EnrichRoute")(&err)

	if provider == nil {
		return fmt.Errorf("enrich route: provider must be non-nil")
	}

	stops := route.Waypoints()
	n := len(stops)
	if n == 0 {
		return fmt.Errorf("enrich route: %w", domain.ErrEmptyRoute)
	}
	if concurrency < 1 {
		concurrency = DefaultEnrichConcurrency
	}

	legs := n - 1
	if wrapAround && n > 1 {
		legs = n
	}

	results := make([]ports.DistanceResult, legs)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i := 0; i < legs; i++ {
		from := stops[i]
		to := stops[(i+1)%n]

		g.Go(func() error {
			r, err := provider.GetDistance(gctx, locationOf(from), locationOf(to))
			if err != nil {
				return fmt.Errorf("enrich route: leg %q -> %q: %w", from.Name, to.Name, err)
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for _, w := range stops {
		w.ClearEdge()
	}
	for i, r := range results {
		stops[i].EdgeDistanceToNext = float64(r.DistanceMeters)
		stops[i].EdgeDurationToNext = float64(r.DurationSeconds)
	}

	return nil
}

func locationOf(w *domain.Waypoint) ports.Location {
	return ports.Location{Name: w.Name, Coordinates: w.Coordinates}
}
