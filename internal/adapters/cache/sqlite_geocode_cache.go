package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"travel-discovery-service/internal/domain"
)

// SQLite backed cache mapping place names to geographic coordinates.
// Name keys are expected to be consistent (e.g., normalized) by the caller.
type SqliteGeocodeCache struct {
	DB *sql.DB
}

func NewSqliteGeocodeCache(db *sql.DB) *SqliteGeocodeCache {
	return &SqliteGeocodeCache{DB: db}
}

// Fetch cached coordinates for the given place name.
func (s *SqliteGeocodeCache) Get(ctx context.Context, name string) (domain.Coordinates, bool, error) {
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
	WHERE place = ?;
	`

	var lat, lng float64
	err := s.DB.QueryRowContext(ctx, q, name).Scan(&lat, &lng)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Coordinates{}, false, nil
	}
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	return domain.Coordinates{Lat: lat, Lng: lng}, true, nil
}

// Store a place name -> coordinate mapping in the cache.
func (s *SqliteGeocodeCache) Put(ctx context.Context, name string, coords domain.Coordinates) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	if strings.TrimSpace(name) == "" {
		return errors.New("insert geocode cache: empty place key")
	}

	q := `
	INSERT OR REPLACE INTO geocode_cache (place, lat, lng)
	VALUES (?, ?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, q, name, coords.Lat, coords.Lng); err != nil {
		return fmt.Errorf("insert geocode cache place=%q: %w", name, err)
	}

	return nil
}

// Initialize the SQLite cache schema.
func InitSqliteSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
		place TEXT PRIMARY KEY,
		lat REAL NOT NULL,
		lng REAL NOT NULL
	);
	`

	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("init schema: create geocode_cache: %w", err)
	}

	return nil
}
