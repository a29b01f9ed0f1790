package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"travel-itinerary-service/internal/adapters/cache"
	"travel-itinerary-service/internal/adapters/distance"
	"travel-itinerary-service/internal/adapters/repositories"
	"travel-itinerary-service/internal/api"
	"travel-itinerary-service/internal/config"
	"travel-itinerary-service/internal/platform/db"
	"travel-itinerary-service/internal/ports"
)

// main is the application composition root.
func main() {
	config.LoadDotEnv()

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run wires concrete adapters (Postgres or memory, Redis, ORS or great-circle)
// behind ports and serves HTTP until interrupted. Errors are returned so
// deferred closes always run.
func run() error {
	cfg, err := config.LoadServer()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		repo          ports.WaypointRepository
		distanceCache ports.DistanceCache
		geocodeCache  ports.GeocodeCache
	)

	if cfg.DatabaseURL != "" {
		database, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer database.Close()

		if err := repositories.InitSchema(ctx, database); err != nil {
			return err
		}
		repo = repositories.NewSQLWaypointRepository(database)
		distanceCache = cache.NewSQLDistanceCache(database)
		geocodeCache = cache.NewSQLGeocodeCache(database)
		log.Printf("storage=postgres")
	} else {
		repo = repositories.NewMemoryWaypointRepository()
		log.Printf("storage=memory (DATABASE_URL not set)")
	}

	// Redis takes over distance caching when configured; geocodes stay in SQL.
	if cfg.RedisURL != "" {
		rc, err := cache.NewRedisDistanceCacheFromURL(cfg.RedisURL, cfg.CacheTTL)
		if err != nil {
			return err
		}
		defer rc.Close()
		distanceCache = rc
		log.Printf("distance_cache=redis ttl=%s", cfg.CacheTTL)
	}

	if err := seedIfEmpty(ctx, repo, cfg.SeedPath); err != nil {
		return err
	}

	provider, geocoder, err := newProvider(cfg, distanceCache, geocodeCache)
	if err != nil {
		return err
	}

	router := api.NewRouter(api.Dependencies{
		Repo:              repo,
		Provider:          provider,
		Geocoder:          geocoder,
		EnrichConcurrency: cfg.EnrichConcurrency,
	})

	// Timeouts are tuned for cold-cache route rebuilds (external API latency).
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown failed: err=%v", err)
		}
	}()

	log.Printf("Server listening addr=:%s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// newProvider returns ORS when an API key is configured, otherwise the
// offline great-circle estimate with no geocoder.
func newProvider(
	cfg config.Server,
	distanceCache ports.DistanceCache,
	geocodeCache ports.GeocodeCache,
) (ports.DistanceProvider, ports.Geocoder, error) {
	if cfg.ORSAPIKey == "" {
		log.Printf("provider=great_circle speed_kmh=%.0f (ORS_API_KEY not set)", cfg.AverageSpeedKmh)
		return distance.NewGreatCircleProvider(cfg.AverageSpeedKmh), nil, nil
	}

	ors, err := distance.NewORSDistanceProvider(
		cfg.ORSAPIKey,
		distanceCache,
		geocodeCache,
		distance.WithRateLimit(cfg.ORSRatePerSec, 1),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("new provider: %w", err)
	}
	log.Printf("provider=ors rate_per_sec=%.2f", cfg.ORSRatePerSec)
	return ors, ors, nil
}

// seedIfEmpty loads the seed file on first start so a fresh store has a route.
func seedIfEmpty(ctx context.Context, repo ports.WaypointRepository, seedPath string) error {
	existing, err := repo.ListWaypoints(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if len(existing) > 0 || seedPath == "" {
		return nil
	}

	if _, err := os.Stat(seedPath); errors.Is(err, os.ErrNotExist) {
		log.Printf("seed file not found, starting empty: path=%s", seedPath)
		return nil
	}

	if err := repositories.SeedFromFile(ctx, repo, seedPath); err != nil {
		return err
	}
	log.Printf("seeded waypoints: path=%s", seedPath)
	return nil
}
