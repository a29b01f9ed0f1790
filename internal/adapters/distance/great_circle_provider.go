package distance

import (
	"context"
	"errors"
	"math"
	"travel-itinerary-service/internal/geo"
	"travel-itinerary-service/internal/ports"
)

// DefaultSpeedKmh is the average travel speed assumed by GreatCircleProvider.
const DefaultSpeedKmh = 60.0

// GreatCircleProvider estimates legs offline from great-circle distance and
// a constant average speed. It is used when no routing API key is configured.
type GreatCircleProvider struct {
	SpeedKmh float64
}

func NewGreatCircleProvider(speedKmh float64) *GreatCircleProvider {
	if speedKmh <= 0 {
		speedKmh = DefaultSpeedKmh
	}
	return &GreatCircleProvider{SpeedKmh: speedKmh}
}

func (p *GreatCircleProvider) GetDistance(ctx context.Context, origin, destination ports.Location) (ports.DistanceResult, error) {
	if err := ctx.Err(); err != nil {
		return ports.DistanceResult{}, err
	}
	if !origin.Coordinates.Valid() || !destination.Coordinates.Valid() {
		return ports.DistanceResult{}, errors.New("great circle: coordinates out of range")
	}

	meters := geo.DistanceMeters(origin.Coordinates, destination.Coordinates)
	seconds := meters / (p.SpeedKmh * 1000 / 3600)

	return ports.DistanceResult{
		DistanceMeters:  int(math.Round(meters)),
		DurationSeconds: int(math.Round(seconds)),
	}, nil
}

var _ ports.DistanceProvider = (*GreatCircleProvider)(nil)
