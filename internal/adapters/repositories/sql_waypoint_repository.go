package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"travel-itinerary-service/internal/domain"
	"travel-itinerary-service/internal/platform/obs"
)

// SQL-backed implementation of the WaypointRepository port (Postgres dialect).
type SQLWaypointRepository struct{ DB *sql.DB }

func NewSQLWaypointRepository(db *sql.DB) *SQLWaypointRepository {
	return &SQLWaypointRepository{DB: db}
}

const waypointColumns = `
		name,
		lat,
		lon,
		visit_duration_seconds,
		visit_cost,
		distance_to_next_meters,
		duration_to_next_seconds`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWaypoint(row rowScanner) (*domain.Waypoint, error) {
	var w domain.Waypoint
	err := row.Scan(
		&w.Name,
		&w.Coordinates.Lat,
		&w.Coordinates.Lon,
		&w.VisitDuration,
		&w.VisitCost,
		&w.EdgeDistanceToNext,
		&w.EdgeDurationToNext,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Return all waypoints in persisted route order.
func (s *SQLWaypointRepository) ListWaypoints(ctx context.Context) (_ []*domain.Waypoint, err error) {
	defer obs.Time(ctx, "waypoints.repo.List")(&err)

	if s.DB == nil {
		return nil, errors.New("sql waypoint repository: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `SELECT`+waypointColumns+`
	FROM waypoints
	ORDER BY position;
	`)
	if err != nil {
		return nil, fmt.Errorf("list waypoints: query waypoints table: %w", err)
	}
	defer rows.Close()

	waypoints := make([]*domain.Waypoint, 0, 32)
	for rows.Next() {
		w, err := scanWaypoint(rows)
		if err != nil {
			return nil, fmt.Errorf("list waypoints: scan row: %w", err)
		}
		waypoints = append(waypoints, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list waypoints: row iteration: %w", err)
	}

	return waypoints, nil
}

func (s *SQLWaypointRepository) GetWaypoint(ctx context.Context, name string) (*domain.Waypoint, error) {
	if s.DB == nil {
		return nil, errors.New("sql waypoint repository: DB is nil")
	}

	row := s.DB.QueryRowContext(ctx, `SELECT`+waypointColumns+`
	FROM waypoints
	WHERE lower(name) = lower($1);
	`, strings.TrimSpace(name))

	w, err := scanWaypoint(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get waypoint %q: %w", name, domain.ErrWaypointNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get waypoint %q: scan row: %w", name, err)
	}
	return w, nil
}

// Insert a waypoint directly after the first one, shifting later positions.
func (s *SQLWaypointRepository) AddWaypoint(ctx context.Context, w *domain.Waypoint) (err error) {
	defer obs.Time(ctx, "waypoints.repo.Add")(&err)

	if s.DB == nil {
		return errors.New("sql waypoint repository: DB is nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("add waypoint: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var exists bool
	if err := tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM waypoints WHERE lower(name) = lower($1));`, w.Name,
	).Scan(&exists); err != nil {
		return fmt.Errorf("add waypoint: check duplicate: %w", err)
	}
	if exists {
		return fmt.Errorf("add waypoint %q: %w", w.Name, domain.ErrDuplicateWaypoint)
	}

	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM waypoints;`).Scan(&count); err != nil {
		return fmt.Errorf("add waypoint: count rows: %w", err)
	}
	pos := min(1, count)

	if pos > 0 {
		if _, err := tx.ExecContext(ctx, `
		UPDATE waypoints SET position = position + 1 WHERE position >= $1;
		`, pos); err != nil {
			return fmt.Errorf("add waypoint: shift positions: %w", err)
		}
		// The first waypoint's successor changes.
		if _, err := tx.ExecContext(ctx, `
		UPDATE waypoints
		SET distance_to_next_meters = 0, duration_to_next_seconds = 0
		WHERE position = 0;
		`); err != nil {
			return fmt.Errorf("add waypoint: clear first edge: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
	INSERT INTO waypoints (
		name, position, lat, lon, visit_duration_seconds, visit_cost
	)
	VALUES ($1, $2, $3, $4, $5, $6);
	`, w.Name, pos, w.Coordinates.Lat, w.Coordinates.Lon, w.VisitDuration, w.VisitCost); err != nil {
		return fmt.Errorf("add waypoint %q: insert: %w", w.Name, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("add waypoint: commit tx: %w", err)
	}
	return nil
}

func (s *SQLWaypointRepository) UpdateWaypoint(
	ctx context.Context,
	name string,
	visitDuration, visitCost float64,
) (*domain.Waypoint, error) {
	if s.DB == nil {
		return nil, errors.New("sql waypoint repository: DB is nil")
	}

	row := s.DB.QueryRowContext(ctx, `
	UPDATE waypoints
	SET visit_duration_seconds = $2, visit_cost = $3
	WHERE lower(name) = lower($1)
	RETURNING`+waypointColumns+`;
	`, strings.TrimSpace(name), visitDuration, visitCost)

	w, err := scanWaypoint(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update waypoint %q: %w", name, domain.ErrWaypointNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update waypoint %q: %w", name, err)
	}
	return w, nil
}

// Delete a waypoint, closing the gap in positions and clearing the edge of
// its predecessor.
func (s *SQLWaypointRepository) DeleteWaypoint(ctx context.Context, name string) (err error) {
	defer obs.Time(ctx, "waypoints.repo.Delete")(&err)

	if s.DB == nil {
		return errors.New("sql waypoint repository: DB is nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("delete waypoint: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var pos int
	err = tx.QueryRowContext(ctx, `
	DELETE FROM waypoints WHERE lower(name) = lower($1) RETURNING position;
	`, strings.TrimSpace(name)).Scan(&pos)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("delete waypoint %q: %w", name, domain.ErrWaypointNotFound)
	}
	if err != nil {
		return fmt.Errorf("delete waypoint %q: %w", name, err)
	}

	if _, err := tx.ExecContext(ctx, `
	UPDATE waypoints SET position = position - 1 WHERE position > $1;
	`, pos); err != nil {
		return fmt.Errorf("delete waypoint: shift positions: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
	UPDATE waypoints
	SET distance_to_next_meters = 0, duration_to_next_seconds = 0
	WHERE position = $1;
	`, pos-1); err != nil {
		return fmt.Errorf("delete waypoint: clear predecessor edge: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("delete waypoint: commit tx: %w", err)
	}
	return nil
}

// Replace all stored waypoints with the route, in route order.
func (s *SQLWaypointRepository) SaveRoute(ctx context.Context, route *domain.Route) (err error) {
	defer obs.Time(ctx, "waypoints.repo.SaveRoute")(&err)

	if s.DB == nil {
		return errors.New("sql waypoint repository: DB is nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save route: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM waypoints;`); err != nil {
		return fmt.Errorf("save route: clear waypoints: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO waypoints (
		name,
		position,
		lat,
		lon,
		visit_duration_seconds,
		visit_cost,
		distance_to_next_meters,
		duration_to_next_seconds
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`)
	if err != nil {
		return fmt.Errorf("save route: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, w := range route.Waypoints() {
		if _, err := stmt.ExecContext(ctx,
			w.Name, i,
			w.Coordinates.Lat, w.Coordinates.Lon,
			w.VisitDuration, w.VisitCost,
			w.EdgeDistanceToNext, w.EdgeDurationToNext,
		); err != nil {
			return fmt.Errorf("save route: insert %q at %d: %w", w.Name, i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save route: commit tx: %w", err)
	}
	return nil
}
