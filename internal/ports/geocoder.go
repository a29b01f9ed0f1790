package ports

import (
	"context"
	"travel-itinerary-service/internal/domain"
)

// Resolves a free-form place name to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (domain.Coordinates, error)
}
