package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/moodtrack/internal/analytics"
	"github.com/alexanderramin/moodtrack/internal/domain"
	"github.com/alexanderramin/moodtrack/internal/repository"
	"github.com/alexanderramin/moodtrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoodService_LogStampsClockAndIndicator(t *testing.T) {
	env := setupEnv(t)
	svc := env.moodService()
	ctx := context.Background()

	e, err := svc.Log(ctx, "  happy ")
	require.NoError(t, err)
	assert.Equal(t, domain.MoodEntry{Mood: "Happy", Indicator: "😊", Time: "10:30 AM", Date: "2024-10-14"}, e)

	raws, err := env.moods.ListEncoded(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Happy|😊|10:30 AM|2024-10-14"}, raws)
	assert.Contains(t, env.log.String(), "use_case=log-mood")
}

func TestMoodService_LogUnknownMoodUsesNeutralIndicator(t *testing.T) {
	env := setupEnv(t)
	e, err := env.moodService().Log(context.Background(), "bored")
	require.NoError(t, err)
	assert.Equal(t, "Bored", e.Mood)
	assert.Equal(t, domain.DefaultIndicator, e.Indicator)
}

func TestMoodService_LogRejectsEmptyMood(t *testing.T) {
	env := setupEnv(t)
	_, err := env.moodService().Log(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidEntry)
}

func TestMoodService_ListNewestFirst(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	mon := testutil.RefMonday

	older := testutil.NewTestMoodEntry("Sad", testutil.OnDate(mon.AddDate(0, 0, -1)), testutil.AtTime("11:00 PM"))
	morning := testutil.NewTestMoodEntry("Happy", testutil.AtTime("09:00 AM"))
	noon := testutil.NewTestMoodEntry("Tired", testutil.AtTime("12:15 PM"))
	for _, e := range []domain.MoodEntry{morning, older, noon} {
		require.NoError(t, env.moods.Append(ctx, e))
	}
	_, err := env.db.ExecContext(ctx, `INSERT INTO mood_entries (entry, created_at) VALUES ('bad', 'x')`)
	require.NoError(t, err)

	got, err := env.moodService().List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.MoodEntry{noon, morning, older}, got)
}

func TestMoodService_Delete(t *testing.T) {
	env := setupEnv(t)
	svc := env.moodService()
	ctx := context.Background()

	e, err := svc.Log(ctx, "Content")
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, e))

	err = svc.Delete(ctx, e)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMoodService_WeekSummary(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	mon := testutil.RefMonday

	entries := []domain.MoodEntry{
		testutil.NewTestMoodEntry("Happy"),
		testutil.NewTestMoodEntry("Sad", testutil.AtTime("08:00 PM")),
		testutil.NewTestMoodEntry("Content", testutil.OnDate(mon.AddDate(0, 0, 2))),
		testutil.NewTestMoodEntry("Happy", testutil.OnDate(mon.AddDate(0, 0, -3))),
	}
	for _, e := range entries {
		require.NoError(t, env.moods.Append(ctx, e))
	}
	_, err := env.db.ExecContext(ctx, `INSERT INTO mood_entries (entry, created_at) VALUES ('a|b', 'x')`)
	require.NoError(t, err)

	summary, err := env.moodService().WeekSummary(ctx, 0)
	require.NoError(t, err)

	assert.Equal(t, "This Week (Oct 14 - Oct 20)", summary.Window.RangeLabel)
	assert.False(t, summary.Unavailable)
	assert.Equal(t, 1, summary.Skipped)
	require.Len(t, summary.Aggregates.Days, 7)
	assert.Equal(t, 3, summary.Aggregates.Days[0].AverageValue) // (5+2)/2
	assert.Equal(t, 4, summary.Aggregates.Days[2].AverageValue)
	assert.Equal(t, []string{
		"Overall, you had a good week! 😊",
		"You tracked 2 of 7 days",
		"Best day: Wed",
		"Toughest day: Mon",
	}, summary.Insights)
	assert.Contains(t, env.log.String(), "skipped=1")

	last, err := env.moodService().WeekSummary(ctx, -1)
	require.NoError(t, err)
	assert.Equal(t, 5, last.Aggregates.Days[4].AverageValue)
}

func TestMoodService_WeekSummaryDegradesWhenStoreFails(t *testing.T) {
	env := setupEnv(t)
	svc := NewMoodService(brokenMoodStore{}, env.clock, NewLogUseCaseObserver(env.log))

	summary, err := svc.WeekSummary(context.Background(), 0)
	require.NoError(t, err)
	assert.True(t, summary.Unavailable)
	assert.True(t, summary.Aggregates.IsEmpty())
	assert.Equal(t, analytics.UnavailableInsights(), summary.Insights)
	assert.Equal(t, analytics.ChartNoData, summary.Chart(800, 600, analytics.DefaultGeometry).State)
	assert.Contains(t, env.log.String(), "degraded=entries_unavailable")
}

func TestMoodService_WeekSummaryFollowsClock(t *testing.T) {
	env := setupEnv(t)
	svc := env.moodService()

	env.clock.Set(time.Date(2024, 10, 20, 23, 0, 0, 0, time.UTC))
	s1, err := svc.WeekSummary(context.Background(), 0)
	require.NoError(t, err)
	env.clock.Advance(2 * time.Hour)
	s2, err := svc.WeekSummary(context.Background(), 0)
	require.NoError(t, err)

	assert.Equal(t, "Oct 14", s1.Window.Start().Format("Jan 02"))
	assert.Equal(t, "Oct 21", s2.Window.Start().Format("Jan 02"))
}
