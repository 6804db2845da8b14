package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/moodtrack/internal/db"
)

// SQLitePreferenceRepo implements PreferenceRepo using a SQLite database.
type SQLitePreferenceRepo struct {
	db db.DBTX
}

// NewSQLitePreferenceRepo creates a new SQLitePreferenceRepo.
func NewSQLitePreferenceRepo(conn db.DBTX) *SQLitePreferenceRepo {
	return &SQLitePreferenceRepo{db: conn}
}

func (r *SQLitePreferenceRepo) Get(ctx context.Context, namespace, key string) (string, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT value FROM preferences WHERE namespace = ? AND key = ?`, namespace, key)
	var value string
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("preference %s.%s: %w", namespace, key, ErrNotFound)
		}
		return "", fmt.Errorf("scanning preference: %w", err)
	}
	return value, nil
}

func (r *SQLitePreferenceRepo) Set(ctx context.Context, namespace, key, value string) error {
	query := `INSERT INTO preferences (namespace, key, value, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(namespace, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, namespace, key, value, nowUTC()); err != nil {
		return fmt.Errorf("setting preference %s.%s: %w", namespace, key, err)
	}
	return nil
}

func (r *SQLitePreferenceRepo) ListNamespace(ctx context.Context, namespace string) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM preferences WHERE namespace = ?`, namespace)
	if err != nil {
		return nil, fmt.Errorf("listing preferences: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scanning preference: %w", err)
		}
		out[k] = v
	}
	return out, rows.Err()
}

func (r *SQLitePreferenceRepo) DeleteNamespace(ctx context.Context, namespace string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM preferences WHERE namespace = ?`, namespace); err != nil {
		return fmt.Errorf("deleting preferences in %s: %w", namespace, err)
	}
	return nil
}
