package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"travel-itinerary-service/internal/adapters/repositories"
	"travel-itinerary-service/internal/config"
	"travel-itinerary-service/internal/platform/db"
)

func main() {
	config.LoadDotEnv()

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	databaseURL := config.MustGet("DATABASE_URL")

	db, err := db.Open(databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/waypoints.yaml")
	return initAndSeed(context.Background(), db, seedPath)
}

func initAndSeed(ctx context.Context, db *sql.DB, seedPath string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(ctx, db); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding database...")
	if err := repositories.SeedFromFile(ctx, repositories.NewSQLWaypointRepository(db), seedPath); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	log.Println("Seeding complete.")

	return nil
}
