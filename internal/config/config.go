package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads a .env file from the working directory when present.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
}

func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func GetInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config %s: %w", key, err)
	}
	return n, nil
}

func GetFloat(key string, fallback float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("config %s: %w", key, err)
	}
	return f, nil
}

// GetDuration parses values like "24h" or "90s".
func GetDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config %s: %w", key, err)
	}
	return d, nil
}

func MustGet(key string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		log.Fatalf("%s is required", key)
	}
	return v
}

// Server holds the settings read by cmd/server.
type Server struct {
	Port              string
	DatabaseURL       string
	RedisURL          string
	CacheTTL          time.Duration
	ORSAPIKey         string
	ORSRatePerSec     float64
	AverageSpeedKmh   float64
	SeedPath          string
	EnrichConcurrency int
}

// LoadServer reads server settings from the environment.
// Optional backends are disabled by leaving their variable empty.
func LoadServer() (Server, error) {
	cfg := Server{
		Port:        Get("PORT", "8080"),
		DatabaseURL: Get("DATABASE_URL", ""),
		RedisURL:    Get("REDIS_URL", ""),
		ORSAPIKey:   Get("ORS_API_KEY", ""),
		SeedPath:    Get("SEED_PATH", "data/seeds/waypoints.yaml"),
	}

	var err error
	if cfg.CacheTTL, err = GetDuration("CACHE_TTL", 7*24*time.Hour); err != nil {
		return Server{}, err
	}
	if cfg.ORSRatePerSec, err = GetFloat("ORS_RATE_PER_SEC", 0.66); err != nil {
		return Server{}, err
	}
	if cfg.AverageSpeedKmh, err = GetFloat("AVERAGE_SPEED_KMH", 60); err != nil {
		return Server{}, err
	}
	if cfg.EnrichConcurrency, err = GetInt("ENRICH_CONCURRENCY", 5); err != nil {
		return Server{}, err
	}

	return cfg, nil
}
