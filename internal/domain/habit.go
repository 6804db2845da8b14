package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidHabit    = errors.New("invalid habit")
	ErrInvalidInterval = errors.New("invalid reminder interval")
)

// DefaultHabitTime is used when a habit has no time of day recorded.
const DefaultHabitTime = "Morning"

// progressStep is how far one check-in advances a custom habit.
const progressStep = 25

type Habit struct {
	ID        string
	Name      string
	TimeOfDay string
	Progress  int // percent, 0-100 in steps of 25
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the user-editable fields.
func (h *Habit) Validate() error {
	if strings.TrimSpace(h.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidHabit)
	}
	if strings.TrimSpace(h.TimeOfDay) == "" {
		return fmt.Errorf("%w: time of day is required", ErrInvalidHabit)
	}
	return nil
}

// AdvanceProgress moves the habit one step forward, wrapping to 0 once it
// has reached 100.
func (h *Habit) AdvanceProgress(now time.Time) {
	if h.Progress < 100 {
		h.Progress += progressStep
	} else {
		h.Progress = 0
	}
	h.UpdatedAt = now
}

// Emoji picks a decorative symbol from keywords in the habit name.
func (h *Habit) Emoji() string {
	name := strings.ToLower(h.Name)
	for _, kw := range habitKeywords {
		if strings.Contains(name, kw.word) {
			return kw.emoji
		}
	}
	return "⭐"
}

var habitKeywords = []struct{ word, emoji string }{
	{"read", "📖"},
	{"sleep", "😴"},
	{"walk", "🚶"},
	{"yoga", "🧘"},
	{"fruit", "🍎"},
	{"vegetable", "🥦"},
	{"water", "💧"},
	{"meditate", "🧘"},
	{"exercise", "🏋️"},
	{"journal", "📖"},
}

// CounterKind identifies one of the built-in daily habit counters.
type CounterKind string

const (
	CounterWater      CounterKind = "water_glasses"
	CounterMeditation CounterKind = "meditation_minutes"
	CounterExercise   CounterKind = "exercise_minutes"
	CounterJournal    CounterKind = "journal_entries"
)

// CounterSpec describes the goal and increment of a built-in counter.
type CounterSpec struct {
	Kind  CounterKind
	Title string
	Unit  string
	Goal  int
	Step  int
}

// Counters lists the built-in counters in display order.
var Counters = []CounterSpec{
	{Kind: CounterWater, Title: "Drink Water", Unit: "glasses", Goal: 8, Step: 1},
	{Kind: CounterMeditation, Title: "Meditate", Unit: "minutes", Goal: 20, Step: 5},
	{Kind: CounterExercise, Title: "Exercise", Unit: "minutes", Goal: 30, Step: 10},
	{Kind: CounterJournal, Title: "Journal", Unit: "entries", Goal: 1, Step: 1},
}

// LookupCounter finds a counter by kind or by its short alias
// ("water", "meditation", "exercise", "journal").
func LookupCounter(name string) (CounterSpec, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range Counters {
		if string(c.Kind) == name || strings.HasPrefix(string(c.Kind), name+"_") {
			return c, true
		}
	}
	return CounterSpec{}, false
}

// Next returns the counter value after one tick. A counter already at its
// goal resets to zero.
func (c CounterSpec) Next(current int) int {
	if current < c.Goal {
		return current + c.Step
	}
	return 0
}

// Percent converts a counter value into percent of goal.
func (c CounterSpec) Percent(value int) int {
	if c.Goal <= 0 {
		return 0
	}
	return value * 100 / c.Goal
}

// ValidReminderIntervals are the hydration reminder choices in minutes.
var ValidReminderIntervals = []int{30, 60, 120, 180}

// DefaultReminderInterval is the hydration reminder interval when unset.
const DefaultReminderInterval = 60

// ValidateReminderInterval rejects intervals outside ValidReminderIntervals.
func ValidateReminderInterval(minutes int) error {
	for _, v := range ValidReminderIntervals {
		if v == minutes {
			return nil
		}
	}
	return fmt.Errorf("%w: %d (choose 30, 60, 120 or 180)", ErrInvalidInterval, minutes)
}

// ReminderIntervalLabel renders an interval for display.
func ReminderIntervalLabel(minutes int) string {
	switch minutes {
	case 30:
		return "30 minutes"
	case 120:
		return "2 hours"
	case 180:
		return "3 hours"
	default:
		return "1 hour"
	}
}
