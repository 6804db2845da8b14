package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHabit_AdvanceProgressCycles(t *testing.T) {
	h := &Habit{Name: "Yoga", TimeOfDay: "Morning"}
	now := time.Date(2024, 10, 14, 8, 0, 0, 0, time.UTC)

	var seen []int
	for i := 0; i < 6; i++ {
		h.AdvanceProgress(now)
		seen = append(seen, h.Progress)
	}
	assert.Equal(t, []int{25, 50, 75, 100, 0, 25}, seen)
	assert.Equal(t, now, h.UpdatedAt)
}

func TestHabit_Validate(t *testing.T) {
	assert.NoError(t, (&Habit{Name: "Walk", TimeOfDay: "Evening"}).Validate())
	assert.ErrorIs(t, (&Habit{Name: " ", TimeOfDay: "Evening"}).Validate(), ErrInvalidHabit)
	assert.ErrorIs(t, (&Habit{Name: "Walk"}).Validate(), ErrInvalidHabit)
}

func TestHabit_Emoji(t *testing.T) {
	assert.Equal(t, "📖", (&Habit{Name: "Read 20 pages"}).Emoji())
	assert.Equal(t, "💧", (&Habit{Name: "Drink WATER"}).Emoji())
	assert.Equal(t, "⭐", (&Habit{Name: "Call mom"}).Emoji())
}

func TestCounterSpec_NextResetsAtGoal(t *testing.T) {
	water, ok := LookupCounter("water")
	assert.True(t, ok)
	assert.Equal(t, 1, water.Next(0))
	assert.Equal(t, 8, water.Next(7))
	assert.Equal(t, 0, water.Next(8))

	med, ok := LookupCounter("meditation_minutes")
	assert.True(t, ok)
	assert.Equal(t, 20, med.Next(15))
	assert.Equal(t, 0, med.Next(20))
	assert.Equal(t, 75, med.Percent(15))

	_, ok = LookupCounter("steps")
	assert.False(t, ok)
}

func TestReminderInterval(t *testing.T) {
	for _, v := range ValidReminderIntervals {
		assert.NoError(t, ValidateReminderInterval(v))
	}
	assert.ErrorIs(t, ValidateReminderInterval(45), ErrInvalidInterval)
	assert.Equal(t, "30 minutes", ReminderIntervalLabel(30))
	assert.Equal(t, "1 hour", ReminderIntervalLabel(60))
	assert.Equal(t, "3 hours", ReminderIntervalLabel(180))
}
