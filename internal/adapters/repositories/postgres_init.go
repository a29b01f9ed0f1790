package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"travel-itinerary-service/internal/domain"
	"travel-itinerary-service/internal/ports"

	"gopkg.in/yaml.v3"
)

var (
	_ ports.WaypointRepository = (*SQLWaypointRepository)(nil)
	_ ports.WaypointRepository = (*MemoryWaypointRepository)(nil)
)

// Initialize the Postgres database schema.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createWaypointsQuery := `
	CREATE TABLE IF NOT EXISTS waypoints (
		name TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL,
		visit_duration_seconds DOUBLE PRECISION NOT NULL CHECK (visit_duration_seconds >= 0),
		visit_cost DOUBLE PRECISION NOT NULL CHECK (visit_cost >= 0),
		distance_to_next_meters DOUBLE PRECISION NOT NULL DEFAULT 0,
		duration_to_next_seconds DOUBLE PRECISION NOT NULL DEFAULT 0
	);
	`

	createDistanceCacheQuery := `
	CREATE TABLE IF NOT EXISTS distance_cache (
        origin TEXT NOT NULL,
        destination TEXT NOT NULL,
        distance_meters INTEGER NOT NULL,
        duration_seconds INTEGER NOT NULL,
        PRIMARY KEY (origin, destination)
    );
	`

	createGeocodeCacheQuery := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
        address TEXT PRIMARY KEY,
        lon DOUBLE PRECISION NOT NULL,
        lat DOUBLE PRECISION NOT NULL
    );
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_waypoints_position
    ON waypoints(position);
	`

	statements := []string{
		createWaypointsQuery,
		createDistanceCacheQuery,
		createGeocodeCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// WaypointSeed is one record of a seed file.
// Edge fields are optional cached legs to the next record.
type WaypointSeed struct {
	Name                  string  `json:"name" yaml:"name"`
	Lat                   float64 `json:"lat" yaml:"lat"`
	Lon                   float64 `json:"lon" yaml:"lon"`
	VisitDurationSeconds  float64 `json:"visit_duration_seconds" yaml:"visit_duration_seconds"`
	VisitCost             float64 `json:"visit_cost" yaml:"visit_cost"`
	DistanceToNextMeters  float64 `json:"distance_to_next_meters" yaml:"distance_to_next_meters"`
	DurationToNextSeconds float64 `json:"duration_to_next_seconds" yaml:"duration_to_next_seconds"`
}

// LoadSeedFile reads waypoint seeds from a .json, .yaml or .yml file, in file order.
func LoadSeedFile(path string) ([]*domain.Waypoint, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load seed: read %q: %w", path, err)
	}

	var data []WaypointSeed
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(bytes, &data); err != nil {
			return nil, fmt.Errorf("load seed: parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(bytes, &data); err != nil {
			return nil, fmt.Errorf("load seed: parse json: %w", err)
		}
	default:
		return nil, fmt.Errorf("load seed: unsupported file type %q", filepath.Ext(path))
	}

	seen := make(map[string]struct{}, len(data))
	out := make([]*domain.Waypoint, 0, len(data))
	for i, item := range data {
		name := strings.Join(strings.Fields(item.Name), " ")
		if name == "" {
			return nil, fmt.Errorf("load seed: item at index %d: name cannot be empty", i+1)
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			return nil, fmt.Errorf("load seed: item at index %d: duplicate name %q", i+1, name)
		}
		seen[key] = struct{}{}

		w := &domain.Waypoint{
			Name:               name,
			Coordinates:        domain.Coordinates{Lat: item.Lat, Lon: item.Lon},
			VisitDuration:      item.VisitDurationSeconds,
			VisitCost:          item.VisitCost,
			EdgeDistanceToNext: item.DistanceToNextMeters,
			EdgeDurationToNext: item.DurationToNextSeconds,
		}
		if !w.Coordinates.Valid() {
			return nil, fmt.Errorf("load seed: item %q: coordinates out of range", name)
		}
		if w.VisitDuration < 0 || w.VisitCost < 0 || w.EdgeDistanceToNext < 0 || w.EdgeDurationToNext < 0 {
			return nil, fmt.Errorf("load seed: item %q: durations, costs and edges must be non-negative", name)
		}
		out = append(out, w)
	}

	return out, nil
}

// SeedFromFile stores the seed file's waypoints as the repository's route,
// replacing what was there.
func SeedFromFile(ctx context.Context, repo ports.WaypointRepository, path string) error {
	waypoints, err := LoadSeedFile(path)
	if err != nil {
		return fmt.Errorf("seed waypoints: %w", err)
	}

	if err := repo.SaveRoute(ctx, domain.NewRoute(waypoints...)); err != nil {
		return fmt.Errorf("seed waypoints: %w", err)
	}

	return nil
}
