package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/moodtrack/internal/db"
	"github.com/alexanderramin/moodtrack/internal/domain"
)

// SQLiteHabitRepo implements HabitRepo using a SQLite database.
type SQLiteHabitRepo struct {
	db db.DBTX
}

// NewSQLiteHabitRepo creates a new SQLiteHabitRepo.
func NewSQLiteHabitRepo(conn db.DBTX) *SQLiteHabitRepo {
	return &SQLiteHabitRepo{db: conn}
}

const habitColumns = `id, name, time_of_day, progress, created_at, updated_at`

func (r *SQLiteHabitRepo) Create(ctx context.Context, h *domain.Habit) error {
	query := `INSERT INTO habits (` + habitColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		h.ID,
		h.Name,
		h.TimeOfDay,
		h.Progress,
		formatStoredTime(h.CreatedAt),
		formatStoredTime(h.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("habit %q: %w", h.Name, ErrDuplicate)
		}
		return fmt.Errorf("inserting habit: %w", err)
	}
	return nil
}

func (r *SQLiteHabitRepo) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+habitColumns+` FROM habits WHERE id = ?`, id)
	h, err := scanHabit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("habit %s: %w", id, ErrNotFound)
	}
	return h, err
}

// GetByName matches the name case-insensitively.
func (r *SQLiteHabitRepo) GetByName(ctx context.Context, name string) (*domain.Habit, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+habitColumns+` FROM habits WHERE name = ? COLLATE NOCASE`, name)
	h, err := scanHabit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("habit %q: %w", name, ErrNotFound)
	}
	return h, err
}

func (r *SQLiteHabitRepo) List(ctx context.Context) ([]*domain.Habit, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+habitColumns+` FROM habits ORDER BY created_at, name`)
	if err != nil {
		return nil, fmt.Errorf("listing habits: %w", err)
	}
	defer rows.Close()

	var habits []*domain.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (r *SQLiteHabitRepo) Update(ctx context.Context, h *domain.Habit) error {
	query := `UPDATE habits SET name = ?, time_of_day = ?, progress = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, h.Name, h.TimeOfDay, h.Progress, formatStoredTime(h.UpdatedAt), h.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("habit %q: %w", h.Name, ErrDuplicate)
		}
		return fmt.Errorf("updating habit: %w", err)
	}
	return requireAffected(res, "habit "+h.ID)
}

func (r *SQLiteHabitRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM habits WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting habit: %w", err)
	}
	return requireAffected(res, "habit "+id)
}

func (r *SQLiteHabitRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM habits`); err != nil {
		return fmt.Errorf("deleting habits: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHabit(s rowScanner) (*domain.Habit, error) {
	var h domain.Habit
	var createdAt, updatedAt string
	if err := s.Scan(&h.ID, &h.Name, &h.TimeOfDay, &h.Progress, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning habit: %w", err)
	}
	h.CreatedAt = parseStoredTime(createdAt)
	h.UpdatedAt = parseStoredTime(updatedAt)
	return &h, nil
}

func requireAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}
