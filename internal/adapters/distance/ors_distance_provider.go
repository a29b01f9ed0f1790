package distance

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
	"travel-itinerary-service/internal/platform/obs"
	"travel-itinerary-service/internal/ports"

	"golang.org/x/time/rate"
)

const (
	defaultORSBaseURL = "https://api.openrouteservice.org"
	defaultORSProfile = "driving-car"
	// The ORS free tier allows 40 matrix requests per minute.
	defaultORSRatePerSecond = 0.66
)

// ORSDistanceProvider implements DistanceProvider and Geocoder using
// OpenRouteService.
//
// It coordinates:
//   - Key normalization
//   - Persistent geocode and distance caching
//   - Client-side rate limiting
//   - External API calls with retry/backoff
//
// The provider is safe for concurrent use.
type ORSDistanceProvider struct {
	session       *http.Client
	apiKey        string
	baseURL       string
	profile       string
	limiter       *rate.Limiter
	distanceCache ports.DistanceCache
	geocodeCache  ports.GeocodeCache
}

var (
	_ ports.DistanceProvider = (*ORSDistanceProvider)(nil)
	_ ports.Geocoder         = (*ORSDistanceProvider)(nil)
)

type ORSOption func(*ORSDistanceProvider)

func WithBaseURL(u string) ORSOption {
	return func(o *ORSDistanceProvider) { o.baseURL = strings.TrimRight(u, "/") }
}

func WithProfile(profile string) ORSOption {
	return func(o *ORSDistanceProvider) { o.profile = profile }
}

func WithHTTPClient(c *http.Client) ORSOption {
	return func(o *ORSDistanceProvider) { o.session = c }
}

// WithRateLimit caps outbound requests per second. Zero or less disables limiting.
func WithRateLimit(perSecond float64, burst int) ORSOption {
	return func(o *ORSDistanceProvider) {
		if perSecond <= 0 {
			o.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		o.limiter = rate.NewLimiter(rate.Limit(perSecond), max(burst, 1))
	}
}

// Caches may be nil; lookups then always go to the API.
func NewORSDistanceProvider(
	apiKey string,
	distanceCache ports.DistanceCache,
	geocodeCache ports.GeocodeCache,
	opts ...ORSOption,
) (*ORSDistanceProvider, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}

	provider := &ORSDistanceProvider{
		session:       &http.Client{Timeout: 10 * time.Second},
		apiKey:        apiKey,
		baseURL:       defaultORSBaseURL,
		profile:       defaultORSProfile,
		limiter:       rate.NewLimiter(rate.Limit(defaultORSRatePerSecond), 1),
		distanceCache: distanceCache,
		geocodeCache:  geocodeCache,
	}
	for _, opt := range opts {
		opt(provider)
	}

	return provider, nil
}

// normalize collapses whitespace so geocode queries share cache entries.
func (o *ORSDistanceProvider) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Delegate to batched path to reuse caching and matrix logic.
func (o *ORSDistanceProvider) GetDistance(
	ctx context.Context,
	origin ports.Location,
	destination ports.Location,
) (ports.DistanceResult, error) {
	originKey := origin.CacheKey()
	destKey := destination.CacheKey()
	if originKey == "" || destKey == "" {
		return ports.DistanceResult{}, errors.New("get ORS distance: origin and destination names must be non-empty")
	}
	if originKey == destKey {
		return ports.DistanceResult{}, nil
	}

	results, err := o.GetDistances(ctx, origin, []ports.Location{destination})
	if err != nil {
		return ports.DistanceResult{}, fmt.Errorf("get distances %q -> %q: %w", originKey, destKey, err)
	}

	result, ok := results[destKey]
	if !ok {
		return ports.DistanceResult{}, fmt.Errorf("no distance result for %q -> %q", originKey, destKey)
	}

	return result, nil
}

// Compute legs from a single origin to many destinations, keyed by Location.CacheKey.
// Destinations at the origin's key are skipped.
func (o *ORSDistanceProvider) GetDistances(
	ctx context.Context,
	origin ports.Location,
	destinations []ports.Location,
) (_ map[string]ports.DistanceResult, err error) {
	defer obs.Time(ctx, "ors.GetDistances")(&err)

	originKey := origin.CacheKey()
	if originKey == "" {
		return nil, errors.New("origin name must be non-empty")
	}

	seen := make(map[string]struct{}, len(destinations))
	destList := make([]ports.Location, 0, len(destinations))
	destKeys := make([]string, 0, len(destinations))
	for _, d := range destinations {
		key := d.CacheKey()
		if key == "" || key == originKey {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		destList = append(destList, d)
		destKeys = append(destKeys, key)
	}

	if len(destList) == 0 {
		return map[string]ports.DistanceResult{}, nil
	}

	hits := make(map[string]ports.DistanceResult)
	// Check persistent distance cache before issuing external API calls.
	if o.distanceCache != nil {
		hits, err = o.distanceCache.GetMany(ctx, originKey, destKeys)
		if err != nil {
			return nil, fmt.Errorf("ORS get distance cache: %w", err)
		}
	}

	misses := make([]ports.Location, 0, len(destList))
	for i, d := range destList {
		if _, ok := hits[destKeys[i]]; !ok {
			misses = append(misses, d)
		}
	}

	if len(misses) == 0 {
		return hits, nil
	}

	// Fetch a single origin->many matrix row for all cache misses.
	fetched, err := o.fetchMatrixRow(ctx, origin.Coordinates, misses)
	if err != nil {
		return nil, fmt.Errorf("fetching matrix row: %w", err)
	}

	if o.distanceCache != nil {
		if err := o.distanceCache.PutMany(ctx, originKey, fetched); err != nil {
			log.Printf("distance cache write failed: origin=%q err=%v", originKey, err)
		}
	}

	out := make(map[string]ports.DistanceResult, len(hits)+len(fetched))
	for k, v := range hits {
		out[k] = v
	}
	for k, v := range fetched {
		out[k] = v
	}

	return out, nil
}
