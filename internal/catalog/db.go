// Package catalog provides the SQLite-backed store of named species
// parameter sets. It holds configuration only — run results are never
// written back.
package catalog

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/fauna/internal/species"
)

// DB wraps a SQLite connection for the species catalog.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates the catalog at the given path. A fresh catalog is
// seeded with the builtin species profiles.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate catalog: %w", err)
	}
	if err := db.seedBuiltins(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("seed catalog: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS species (
		name TEXT PRIMARY KEY,
		min_breeding_age INTEGER NOT NULL,
		max_breeding_age INTEGER NOT NULL,
		min_tolerance REAL NOT NULL,
		max_tolerance REAL NOT NULL,
		required_food INTEGER NOT NULL,
		required_water INTEGER NOT NULL,
		gestation_period INTEGER NOT NULL,
		max_age INTEGER NOT NULL
	);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// seedBuiltins inserts the builtin profiles into an empty catalog.
func (db *DB) seedBuiltins() error {
	var count int
	if err := db.conn.Get(&count, "SELECT COUNT(*) FROM species"); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, sp := range Builtins() {
		if err := db.Put(sp); err != nil {
			return err
		}
	}
	return nil
}

// Put inserts or replaces a species profile after validating it.
func (db *DB) Put(sp *species.Species) error {
	if err := sp.Validate(); err != nil {
		return err
	}
	_, err := db.conn.NamedExec(`
		INSERT OR REPLACE INTO species (
			name, min_breeding_age, max_breeding_age,
			min_tolerance, max_tolerance,
			required_food, required_water,
			gestation_period, max_age
		) VALUES (
			:name, :min_breeding_age, :max_breeding_age,
			:min_tolerance, :max_tolerance,
			:required_food, :required_water,
			:gestation_period, :max_age
		)`, sp)
	return err
}

// Get loads one species profile by name.
func (db *DB) Get(name string) (*species.Species, error) {
	var sp species.Species
	err := db.conn.Get(&sp, "SELECT * FROM species WHERE name = ?", name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("species %q not in catalog", name)
	}
	if err != nil {
		return nil, err
	}
	return &sp, nil
}

// List loads every species profile, ordered by name.
func (db *DB) List() ([]*species.Species, error) {
	var rows []*species.Species
	if err := db.conn.Select(&rows, "SELECT * FROM species ORDER BY name"); err != nil {
		return nil, err
	}
	return rows, nil
}
