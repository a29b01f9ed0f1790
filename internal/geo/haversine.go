package geo

import (
	"math"
	"travel-itinerary-service/internal/domain"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0088

// Metric measures the distance between two coordinates.
type Metric func(a, b domain.Coordinates) float64

// Distance returns the haversine great-circle distance in kilometres.
// Inputs are not validated; NaN propagates to the result.
func Distance(a, b domain.Coordinates) float64 {
	dLat := toRadians(b.Lat - a.Lat)
	dLon := toRadians(b.Lon - a.Lon)
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + sinLon*sinLon*math.Cos(lat1)*math.Cos(lat2)

	// Rounding can push h a hair above 1 for antipodal points.
	if h > 1 {
		h = 1
	}
	return EarthRadiusKm * 2 * math.Asin(math.Sqrt(h))
}

// DistanceMeters is Distance scaled to meters.
func DistanceMeters(a, b domain.Coordinates) float64 {
	return Distance(a, b) * 1000
}

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }
