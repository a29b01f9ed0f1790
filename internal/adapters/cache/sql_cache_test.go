package cache

import (
	"context"
	"database/sql/driver"
	"testing"
	"travel-itinerary-service/internal/domain"
	"travel-itinerary-service/internal/ports"

	"github.com/DATA-DOG/go-sqlmock"
)

// textArrayConverter lets []string arguments through as pgx would.
type textArrayConverter struct{}

func (textArrayConverter) ConvertValue(v any) (driver.Value, error) {
	if s, ok := v.([]string); ok {
		return s, nil
	}
	return driver.DefaultParameterConverter.ConvertValue(v)
}

func newMock(t *testing.T) (sqlmock.Sqlmock, func() *SQLDistanceCache, func() *SQLGeocodeCache) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.ValueConverterOption(textArrayConverter{}))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return mock, func() *SQLDistanceCache { return NewSQLDistanceCache(db) }, func() *SQLGeocodeCache { return NewSQLGeocodeCache(db) }
}

func TestSQLDistanceCacheGetManyDedupesKeys(t *testing.T) {
	mock, distances, _ := newMock(t)

	mock.ExpectQuery(`FROM distance_cache WHERE origin = \$1 AND destination = ANY\(\$2::text\[\]\)`).
		WithArgs("Home@1.000000,1.000000", []string{"Museum@2.000000,2.000000", "Park@3.000000,3.000000"}).
		WillReturnRows(sqlmock.NewRows([]string{"destination", "distance_meters", "duration_seconds"}).
			AddRow("Museum@2.000000,2.000000", 1500, 120))

	got, err := distances().GetMany(context.Background(), "Home@1.000000,1.000000", []string{
		"Museum@2.000000,2.000000", " Museum@2.000000,2.000000 ", "", "Park@3.000000,3.000000",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got["Museum@2.000000,2.000000"] != (ports.DistanceResult{DistanceMeters: 1500, DurationSeconds: 120}) {
		t.Fatalf("got = %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSQLDistanceCachePutManyUpserts(t *testing.T) {
	mock, distances, _ := newMock(t)

	mock.ExpectBegin()
	mock.ExpectPrepare(`INSERT INTO distance_cache .* ON CONFLICT \(origin, destination\) DO UPDATE`).
		ExpectExec().WithArgs("Home", "Museum", 1500, 120).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := distances().PutMany(context.Background(), "Home", map[string]ports.DistanceResult{
		"Museum": {DistanceMeters: 1500, DurationSeconds: 120},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSQLDistanceCacheRejectsEmptyOrigin(t *testing.T) {
	_, distances, _ := newMock(t)

	if _, err := distances().GetMany(context.Background(), "", []string{"x"}); err == nil {
		t.Fatalf("expected error for empty origin")
	}
	if err := distances().PutMany(context.Background(), "", map[string]ports.DistanceResult{"x": {}}); err == nil {
		t.Fatalf("expected error for empty origin")
	}
}

func TestSQLGeocodeCacheRoundTrip(t *testing.T) {
	mock, _, geocodes := newMock(t)

	mock.ExpectBegin()
	mock.ExpectPrepare(`INSERT INTO geocode_cache`).
		ExpectExec().WithArgs("Colosseum", 41.89, 12.49).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(`FROM geocode_cache WHERE address = ANY\(\$1::text\[\]\)`).
		WithArgs([]string{"Colosseum"}).
		WillReturnRows(sqlmock.NewRows([]string{"address", "lat", "lon"}).AddRow("Colosseum", 41.89, 12.49))

	c := geocodes()
	if err := c.PutMany(context.Background(), map[string]domain.Coordinates{"Colosseum": {Lat: 41.89, Lon: 12.49}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := c.GetMany(context.Background(), []string{"Colosseum"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["Colosseum"] != (domain.Coordinates{Lat: 41.89, Lon: 12.49}) {
		t.Fatalf("got = %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
