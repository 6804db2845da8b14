package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/moodtrack/internal/domain"
	"github.com/alexanderramin/moodtrack/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHabitService_AddDefaultsTimeOfDay(t *testing.T) {
	env := setupEnv(t)
	h, err := env.habitService().Add(context.Background(), "  Drink water ", "")
	require.NoError(t, err)
	assert.Equal(t, "Drink water", h.Name)
	assert.Equal(t, "Morning", h.TimeOfDay)
	assert.NotEmpty(t, h.ID)
}

func TestHabitService_AddValidation(t *testing.T) {
	env := setupEnv(t)
	svc := env.habitService()
	ctx := context.Background()

	_, err := svc.Add(ctx, "", "Evening")
	assert.ErrorIs(t, err, domain.ErrInvalidHabit)

	_, err = svc.Add(ctx, "Yoga", "Evening")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "yoga", "Morning")
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestHabitService_EditByFuzzyName(t *testing.T) {
	env := setupEnv(t)
	svc := env.habitService()
	ctx := context.Background()

	_, err := svc.Add(ctx, "Read a book", "Evening")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "Walk outside", "Morning")
	require.NoError(t, err)

	h, err := svc.Edit(ctx, "rdbook", "", "Night")
	require.NoError(t, err)
	assert.Equal(t, "Read a book", h.Name)
	assert.Equal(t, "Night", h.TimeOfDay)

	stored, err := env.habits.GetByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, "Night", stored.TimeOfDay)
}

func TestHabitService_ResolveAmbiguousAndMissing(t *testing.T) {
	env := setupEnv(t)
	svc := env.habitService()
	ctx := context.Background()

	_, err := svc.Add(ctx, "Read news", "")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "Read a book", "")
	require.NoError(t, err)

	_, err = svc.Delete(ctx, "read")
	assert.ErrorIs(t, err, ErrAmbiguousHabit)

	_, err = svc.Delete(ctx, "swim")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	deleted, err := svc.Delete(ctx, "read news")
	require.NoError(t, err)
	assert.Equal(t, "Read news", deleted.Name)

	habits, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, habits, 1)
	assert.Equal(t, "Read a book", habits[0].Name)
}

func TestHabitService_ResolveFoldsDiacritics(t *testing.T) {
	env := setupEnv(t)
	svc := env.habitService()
	ctx := context.Background()

	_, err := svc.Add(ctx, "Méditer", "")
	require.NoError(t, err)

	h, err := svc.AdvanceProgress(ctx, "mediter")
	require.NoError(t, err)
	assert.Equal(t, 25, h.Progress)
}

func TestHabitService_ResolveByIDPrefix(t *testing.T) {
	env := setupEnv(t)
	svc := env.habitService()
	ctx := context.Background()

	h, err := svc.Add(ctx, "Stretch", "")
	require.NoError(t, err)

	got, err := svc.AdvanceProgress(ctx, h.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, h.ID, got.ID)
	assert.Equal(t, 25, got.Progress)

	_, err = svc.Delete(ctx, h.ID)
	require.NoError(t, err)
	_, err = svc.Delete(ctx, h.ID[:8])
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestHabitService_AdvanceProgressCycles(t *testing.T) {
	env := setupEnv(t)
	svc := env.habitService()
	ctx := context.Background()

	_, err := svc.Add(ctx, "Stretch", "")
	require.NoError(t, err)

	var seen []int
	for i := 0; i < 5; i++ {
		h, err := svc.AdvanceProgress(ctx, "Stretch")
		require.NoError(t, err)
		seen = append(seen, h.Progress)
	}
	assert.Equal(t, []int{25, 50, 75, 100, 0}, seen)
}

func TestHabitService_TickCounters(t *testing.T) {
	env := setupEnv(t)
	svc := env.habitService()
	ctx := context.Background()

	var st CounterStatus
	var err error
	for i := 0; i < 8; i++ {
		st, err = svc.Tick(ctx, "water")
		require.NoError(t, err)
	}
	assert.Equal(t, 8, st.Value)
	assert.Equal(t, 100, st.Percent)
	assert.True(t, st.Done())

	st, err = svc.Tick(ctx, "water")
	require.NoError(t, err)
	assert.Equal(t, 0, st.Value, "ticking at goal resets")

	st, err = svc.Tick(ctx, "exercise")
	require.NoError(t, err)
	assert.Equal(t, 10, st.Value)
	assert.Equal(t, 33, st.Percent)

	_, err = svc.Tick(ctx, "steps")
	assert.Error(t, err)
}

func TestHabitService_Summary(t *testing.T) {
	env := setupEnv(t)
	svc := env.habitService()
	ctx := context.Background()

	_, err := svc.Tick(ctx, "journal")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "Floss", "Night")
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		_, err = svc.AdvanceProgress(ctx, "Floss")
		require.NoError(t, err)
	}
	_, err = svc.Add(ctx, "Stretch", "")
	require.NoError(t, err)

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)
	require.Len(t, summary.Counters, 4)
	assert.Equal(t, domain.CounterWater, summary.Counters[0].Spec.Kind)
	assert.Equal(t, 1, summary.Counters[3].Value)
	assert.Equal(t, 2, summary.Completed)
	assert.Equal(t, 6, summary.Total)
}
