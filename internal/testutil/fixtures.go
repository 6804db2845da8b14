package testutil

import (
	"time"

	"github.com/alexanderramin/moodtrack/internal/domain"
	"github.com/google/uuid"
)

// RefMonday is a fixed Monday used as "today" across tests.
var RefMonday = time.Date(2024, time.October, 14, 10, 30, 0, 0, time.UTC)

// Mood entry options
type MoodOption func(*domain.MoodEntry)

func OnDate(d time.Time) MoodOption {
	return func(e *domain.MoodEntry) {
		e.Date = d.Format(domain.EntryDateLayout)
	}
}

func AtTime(clock string) MoodOption {
	return func(e *domain.MoodEntry) {
		e.Time = clock
	}
}

func WithIndicator(indicator string) MoodOption {
	return func(e *domain.MoodEntry) {
		e.Indicator = indicator
	}
}

// NewTestMoodEntry builds an entry for mood on RefMonday at 09:00 AM.
func NewTestMoodEntry(mood string, opts ...MoodOption) domain.MoodEntry {
	e := domain.NewMoodEntry(mood, time.Date(2024, time.October, 14, 9, 0, 0, 0, time.UTC))
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// Habit options
type HabitOption func(*domain.Habit)

func WithTimeOfDay(tod string) HabitOption {
	return func(h *domain.Habit) {
		h.TimeOfDay = tod
	}
}

func WithProgress(p int) HabitOption {
	return func(h *domain.Habit) {
		h.Progress = p
	}
}

func WithCreatedAt(t time.Time) HabitOption {
	return func(h *domain.Habit) {
		h.CreatedAt = t
		h.UpdatedAt = t
	}
}

func NewTestHabit(name string, opts ...HabitOption) *domain.Habit {
	now := time.Now().UTC()
	h := &domain.Habit{
		ID:        uuid.New().String(),
		Name:      name,
		TimeOfDay: domain.DefaultHabitTime,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}
