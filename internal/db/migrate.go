package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// One row per distinct encoded entry: the encoding is the identity.
	`CREATE TABLE IF NOT EXISTS mood_entries (
		entry      TEXT PRIMARY KEY,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS habits (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL UNIQUE COLLATE NOCASE,
		time_of_day TEXT NOT NULL DEFAULT 'Morning',
		progress    INTEGER NOT NULL DEFAULT 0, -- percent, steps of 25
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS preferences (
		namespace  TEXT NOT NULL,
		key        TEXT NOT NULL,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (namespace, key)
	)`,
}
