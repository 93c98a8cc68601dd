package stations

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/TwistedSD/uk-fishing-map/internal/models"
	_ "modernc.org/sqlite"
)

// The SQLite cache keeps the last successfully fetched station catalog so a
// later run can still offer tide predictions while the station proxy is
// down. It is a cache only: the live feed always wins when reachable.

const cacheSchema = `
	CREATE TABLE IF NOT EXISTS tide_stations (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		latitude REAL NOT NULL,
		longitude REAL NOT NULL
	);
`

// SaveCache replaces the cached station catalog with the given one.
func SaveCache(dbPath string, sts []models.TideStation) error {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening station cache: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(cacheSchema); err != nil {
		return fmt.Errorf("creating tide_stations table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning cache transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM tide_stations"); err != nil {
		return fmt.Errorf("clearing station cache: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO tide_stations (id, name, latitude, longitude) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing station insert: %w", err)
	}
	defer stmt.Close()

	for _, st := range sts {
		if _, err := stmt.Exec(st.ID, st.Name, st.Latitude, st.Longitude); err != nil {
			return fmt.Errorf("inserting station %s: %w", st.ID, err)
		}
	}

	return tx.Commit()
}

// LoadCache returns the cached station catalog. Rows come back in insertion
// order so nearest-station tie-breaking stays stable across a cache round
// trip.
func LoadCache(dbPath string) ([]models.TideStation, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("no station cache at %s: %w", dbPath, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening station cache: %w", err)
	}
	defer db.Close()

	rows, err := db.Query("SELECT id, name, latitude, longitude FROM tide_stations ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("querying station cache: %w", err)
	}
	defer rows.Close()

	var sts []models.TideStation
	for rows.Next() {
		var st models.TideStation
		if err := rows.Scan(&st.ID, &st.Name, &st.Latitude, &st.Longitude); err != nil {
			return nil, fmt.Errorf("scanning cached station: %w", err)
		}
		sts = append(sts, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading station cache: %w", err)
	}

	return sts, nil
}
