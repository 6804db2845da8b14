package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/moodtrack/internal/db"
	"github.com/alexanderramin/moodtrack/internal/domain"
)

// SQLiteMoodStore implements MoodStore using a SQLite database. The encoded
// entry is the primary key, so appending an identical entry twice stores it
// once.
type SQLiteMoodStore struct {
	db db.DBTX
}

// NewSQLiteMoodStore creates a new SQLiteMoodStore.
func NewSQLiteMoodStore(conn db.DBTX) *SQLiteMoodStore {
	return &SQLiteMoodStore{db: conn}
}

func (s *SQLiteMoodStore) Append(ctx context.Context, e domain.MoodEntry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	query := `INSERT OR IGNORE INTO mood_entries (entry, created_at) VALUES (?, ?)`
	if _, err := s.db.ExecContext(ctx, query, e.Encode(), nowUTC()); err != nil {
		return fmt.Errorf("inserting mood entry: %w", err)
	}
	return nil
}

func (s *SQLiteMoodStore) Remove(ctx context.Context, e domain.MoodEntry) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM mood_entries WHERE entry = ?`, e.Encode())
	if err != nil {
		return fmt.Errorf("deleting mood entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting mood entry: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("mood entry %q: %w", e.Encode(), ErrNotFound)
	}
	return nil
}

// ListEncoded returns every stored record as written. The order carries no
// meaning.
func (s *SQLiteMoodStore) ListEncoded(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT entry FROM mood_entries ORDER BY created_at, entry`)
	if err != nil {
		return nil, fmt.Errorf("listing mood entries: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scanning mood entry: %w", err)
		}
		out = append(out, raw)
	}
	return out, rows.Err()
}

func (s *SQLiteMoodStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM mood_entries`); err != nil {
		return fmt.Errorf("clearing mood entries: %w", err)
	}
	return nil
}
