package service

import (
	"context"

	"github.com/alexanderramin/moodtrack/internal/analytics"
	"github.com/alexanderramin/moodtrack/internal/domain"
)

type MoodService interface {
	// Log records a mood for the current time. The name is normalized and
	// mapped to its catalog indicator.
	Log(ctx context.Context, mood string) (domain.MoodEntry, error)
	// List returns every readable entry, newest first.
	List(ctx context.Context) ([]domain.MoodEntry, error)
	Delete(ctx context.Context, e domain.MoodEntry) error
	// WeekSummary recomputes the aggregates and insights for the week at
	// offset. A store read failure yields a degraded summary, not an error.
	WeekSummary(ctx context.Context, offset int) (*WeekSummary, error)
}

// WeekSummary is everything shown for one week of the mood chart.
type WeekSummary struct {
	Window      analytics.WeekWindow
	Aggregates  analytics.WeekAggregates
	Insights    []string
	Skipped     int  // malformed records ignored during aggregation
	Unavailable bool // entries could not be read
}

// Chart lays the aggregates out on a canvas of the given size.
func (s *WeekSummary) Chart(width, height float64, g analytics.Geometry) analytics.ChartPlan {
	return analytics.Layout(s.Aggregates.Days, width, height, g)
}

type HabitService interface {
	Add(ctx context.Context, name, timeOfDay string) (*domain.Habit, error)
	// Edit renames and/or retimes the habit matched by ref. Empty fields are
	// left unchanged.
	Edit(ctx context.Context, ref, name, timeOfDay string) (*domain.Habit, error)
	Delete(ctx context.Context, ref string) (*domain.Habit, error)
	List(ctx context.Context) ([]*domain.Habit, error)
	AdvanceProgress(ctx context.Context, ref string) (*domain.Habit, error)
	// Tick increments a built-in counter, wrapping to zero past its goal.
	Tick(ctx context.Context, counter string) (CounterStatus, error)
	Summary(ctx context.Context) (*HabitSummary, error)
}

// CounterStatus is the current value of a built-in counter.
type CounterStatus struct {
	Spec    domain.CounterSpec
	Value   int
	Percent int
}

// Done reports whether the counter has reached its goal.
func (c CounterStatus) Done() bool { return c.Value >= c.Spec.Goal }

// HabitSummary is the daily habit overview.
type HabitSummary struct {
	Counters  []CounterStatus
	Habits    []*domain.Habit
	Completed int
	Total     int
}

type PreferenceService interface {
	ReminderInterval(ctx context.Context) (int, error)
	SetReminderInterval(ctx context.Context, minutes int) error
	Settings(ctx context.Context) (domain.AppSettings, error)
	SetSetting(ctx context.Context, name string, enabled bool) (domain.AppSettings, error)
	Profile(ctx context.Context) (domain.UserProfile, error)
	// UpdateProfile stores the non-empty fields of p.
	UpdateProfile(ctx context.Context, p domain.UserProfile) (domain.UserProfile, error)
	// ClearAll removes habits, counters, mood entries and the profile.
	ClearAll(ctx context.Context) error
	// ClearHabits removes habits and counters.
	ClearHabits(ctx context.Context) error
}
