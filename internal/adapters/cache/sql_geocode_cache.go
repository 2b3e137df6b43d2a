package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"travel-discovery-service/internal/domain"
	"travel-discovery-service/internal/platform/obs"
)

// SQLGeocodeCache is a Postgres-backed cache mapping place names to
// coordinates. It lets multiple service instances share geocode results.
type SQLGeocodeCache struct {
	DB *sql.DB
}

func NewSQLGeocodeCache(db *sql.DB) *SQLGeocodeCache {
	return &SQLGeocodeCache{DB: db}
}

// Fetch cached coordinates for the given place name.
func (s *SQLGeocodeCache) Get(ctx context.Context, name string) (_ domain.Coordinates, _ bool, err error) {
	defer obs.Time(ctx, "geocode.cache.Get")(&err)

	if s.DB == nil {
		return domain.Coordinates{}, false, errors.New("geocode cache: db is nil")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Coordinates{}, false, nil
	}

	q := `
	SELECT lat, lng
	FROM geocode_cache
	WHERE place = $1;
	`

	var lat, lng float64
	err = s.DB.QueryRowContext(ctx, q, name).Scan(&lat, &lng)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Coordinates{}, false, nil
	}
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	return domain.Coordinates{Lat: lat, Lng: lng}, true, nil
}

// Store a place name -> coordinate mapping in the cache.
func (s *SQLGeocodeCache) Put(ctx context.Context, name string, coords domain.Coordinates) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	if strings.TrimSpace(name) == "" {
		return errors.New("insert geocode cache: empty place key")
	}

	q := `
	INSERT INTO geocode_cache (place, lat, lng)
	VALUES ($1, $2, $3)
	ON CONFLICT (place) DO UPDATE
	SET lat = EXCLUDED.lat,
		lng = EXCLUDED.lng;
	`

	if _, err := s.DB.ExecContext(ctx, q, name, coords.Lat, coords.Lng); err != nil {
		return fmt.Errorf("insert geocode cache place=%q: %w", name, err)
	}

	return nil
}

// Initialize the Postgres cache schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
		place TEXT PRIMARY KEY,
		lat DOUBLE PRECISION NOT NULL,
		lng DOUBLE PRECISION NOT NULL
	);
	`

	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("init schema: create geocode_cache: %w", err)
	}

	return nil
}
