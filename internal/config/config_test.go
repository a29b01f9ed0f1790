package config

import (
	"testing"
	"time"
)

func TestGetFallsBackWhenUnset(t *testing.T) {
	t.Setenv("TRAVEL_TEST_VALUE", "  ")

	if got := Get("TRAVEL_TEST_VALUE", "fallback"); got != "fallback" {
		t.Fatalf("Get = %q, want fallback", got)
	}

	t.Setenv("TRAVEL_TEST_VALUE", " set ")
	if got := Get("TRAVEL_TEST_VALUE", "fallback"); got != "set" {
		t.Fatalf("Get = %q, want set", got)
	}
}

func TestTypedGetters(t *testing.T) {
	t.Setenv("TRAVEL_TEST_INT", "12")
	t.Setenv("TRAVEL_TEST_FLOAT", "1.5")
	t.Setenv("TRAVEL_TEST_DUR", "90s")

	if n, err := GetInt("TRAVEL_TEST_INT", 0); err != nil || n != 12 {
		t.Fatalf("GetInt = %d, %v", n, err)
	}
	if f, err := GetFloat("TRAVEL_TEST_FLOAT", 0); err != nil || f != 1.5 {
		t.Fatalf("GetFloat = %v, %v", f, err)
	}
	if d, err := GetDuration("TRAVEL_TEST_DUR", 0); err != nil || d != 90*time.Second {
		t.Fatalf("GetDuration = %v, %v", d, err)
	}
	if n, err := GetInt("TRAVEL_TEST_MISSING", 7); err != nil || n != 7 {
		t.Fatalf("GetInt fallback = %d, %v", n, err)
	}

	t.Setenv("TRAVEL_TEST_INT", "twelve")
	if _, err := GetInt("TRAVEL_TEST_INT", 0); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoadServerDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DATABASE_URL", "REDIS_URL", "ORS_API_KEY", "CACHE_TTL", "ORS_RATE_PER_SEC", "AVERAGE_SPEED_KMH", "ENRICH_CONCURRENCY", "SEED_PATH"} {
		t.Setenv(k, "")
	}

	cfg, err := LoadServer()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" || cfg.DatabaseURL != "" || cfg.EnrichConcurrency != 5 || cfg.CacheTTL != 7*24*time.Hour {
		t.Fatalf("cfg = %+v", cfg)
	}

	t.Setenv("ENRICH_CONCURRENCY", "x")
	if _, err := LoadServer(); err == nil {
		t.Fatalf("expected error for bad ENRICH_CONCURRENCY")
	}
}
