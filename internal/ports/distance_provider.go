package ports

import (
	"context"
	"fmt"
	"strings"
	"travel-itinerary-service/internal/domain"
)

// Distance and travel duration between two locations.
type DistanceResult struct {
	DistanceMeters  int
	DurationSeconds int
}

// A named point handed to distance providers.
type Location struct {
	Name        string
	Coordinates domain.Coordinates
}

// CacheKey identifies the location in caches and result maps.
// It combines the whitespace-normalized name with coordinates rounded to
// six decimals, so a name re-used at another position gets a new key.
// Empty when the name is blank.
func (l Location) CacheKey() string {
	name := strings.Join(strings.Fields(l.Name), " ")
	if name == "" {
		return ""
	}
	return fmt.Sprintf("%s@%.6f,%.6f", name, l.Coordinates.Lat, l.Coordinates.Lon)
}

// Contract for retrieving travel distance and duration between locations.
type DistanceProvider interface {
	// Return travel distance and estimated duration between two locations.
	GetDistance(ctx context.Context, origin Location, destination Location) (DistanceResult, error)
}
