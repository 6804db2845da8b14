package repository

import (
	"context"

	"github.com/alexanderramin/moodtrack/internal/domain"
)

// MoodStore is the persisted set of mood entries. Entries are stored in their
// wire encoding; decoding is left to callers so corrupt records can be
// skipped where they are consumed.
type MoodStore interface {
	Append(ctx context.Context, e domain.MoodEntry) error
	Remove(ctx context.Context, e domain.MoodEntry) error
	ListEncoded(ctx context.Context) ([]string, error)
	Clear(ctx context.Context) error
}

type HabitRepo interface {
	Create(ctx context.Context, h *domain.Habit) error
	GetByID(ctx context.Context, id string) (*domain.Habit, error)
	GetByName(ctx context.Context, name string) (*domain.Habit, error)
	List(ctx context.Context) ([]*domain.Habit, error)
	Update(ctx context.Context, h *domain.Habit) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

// PreferenceRepo stores string values grouped by namespace.
type PreferenceRepo interface {
	Get(ctx context.Context, namespace, key string) (string, error)
	Set(ctx context.Context, namespace, key, value string) error
	ListNamespace(ctx context.Context, namespace string) (map[string]string, error)
	DeleteNamespace(ctx context.Context, namespace string) error
}
