package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"monday", time.Date(2024, 10, 14, 18, 45, 0, 0, time.UTC), day(2024, 10, 14)},
		{"wednesday", time.Date(2024, 10, 16, 9, 0, 0, 0, time.UTC), day(2024, 10, 14)},
		{"sunday goes back six days", time.Date(2024, 10, 20, 23, 59, 0, 0, time.UTC), day(2024, 10, 14)},
		{"across month boundary", time.Date(2024, 10, 2, 12, 0, 0, 0, time.UTC), day(2024, 9, 30)},
		{"across year boundary", time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC), day(2024, 12, 30)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StartOfWeek(tt.in))
		})
	}
}

func TestComputeWindow_Labels(t *testing.T) {
	today := time.Date(2024, 10, 16, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		offset int
		want   string
	}{
		{0, "This Week (Oct 14 - Oct 20)"},
		{-1, "Last Week (Oct 07 - Oct 13)"},
		{-3, "3 Weeks Ago (Sep 23 - Sep 29)"},
		{1, "In 1 Weeks (Oct 21 - Oct 27)"},
		{2, "In 2 Weeks (Oct 28 - Nov 03)"},
	}
	for _, tt := range tests {
		w := ComputeWindow(tt.offset, today)
		assert.Equal(t, tt.want, w.RangeLabel, "offset %d", tt.offset)
		assert.Equal(t, tt.offset, w.Offset)
	}
}

func TestComputeWindow_AlwaysSevenConsecutiveDaysFromMonday(t *testing.T) {
	todays := []time.Time{
		time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 30, 1, 30, 0, 0, time.UTC),
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, today := range todays {
		for offset := -60; offset <= MaxForwardOffset; offset++ {
			w := ComputeWindow(offset, today)
			require.Equal(t, time.Monday, w.Dates[0].Weekday(), "today=%s offset=%d", today, offset)
			for i := 1; i < DaysPerWeek; i++ {
				assert.Equal(t, w.Dates[i-1].AddDate(0, 0, 1), w.Dates[i])
			}
			assert.Equal(t, time.Sunday, w.End().Weekday())
		}
	}
}

func TestComputeWindow_OffsetShiftsByWholeWeeks(t *testing.T) {
	today := time.Date(2024, 10, 16, 9, 0, 0, 0, time.UTC)
	cur := ComputeWindow(0, today)
	prev := ComputeWindow(-1, today)
	assert.Equal(t, cur.Start().AddDate(0, 0, -7), prev.Start())
}

func TestWeekNav_NextRefusedAtMaxForward(t *testing.T) {
	var nav WeekNav
	for i := 0; i < MaxForwardOffset; i++ {
		assert.True(t, nav.CanNext())
		assert.True(t, nav.Next())
	}
	assert.Equal(t, MaxForwardOffset, nav.Offset())
	assert.False(t, nav.CanNext())
	assert.False(t, nav.Next())
	assert.Equal(t, MaxForwardOffset, nav.Offset(), "next is a no-op at the bound")
}

func TestWeekNav_PrevHasNoFloor(t *testing.T) {
	var nav WeekNav
	for i := 0; i < 200; i++ {
		nav.Prev()
	}
	assert.Equal(t, -200, nav.Offset())
	assert.True(t, nav.CanNext())

	nav.Current()
	assert.Equal(t, 0, nav.Offset())
}

func TestWeekNav_Window(t *testing.T) {
	var nav WeekNav
	nav.Prev()
	today := time.Date(2024, 10, 16, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, ComputeWindow(-1, today), nav.Window(today))
}

func TestComputeWindow_ConsecutiveAcrossDST(t *testing.T) {
	london, err := time.LoadLocation("Europe/London")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	// Clocks go back on Sunday 2024-10-27.
	w := ComputeWindow(0, time.Date(2024, 10, 23, 12, 0, 0, 0, london))
	for i := 1; i < DaysPerWeek; i++ {
		y, m, d := w.Dates[i-1].AddDate(0, 0, 1).Date()
		y2, m2, d2 := w.Dates[i].Date()
		assert.Equal(t, [3]int{y, int(m), d}, [3]int{y2, int(m2), d2}, "day %d", i)
	}
	assert.Equal(t, "2024-10-27", w.End().Format("2006-01-02"))
}

func TestComputeWindow_SkippedCalendarDay(t *testing.T) {
	apia, err := time.LoadLocation("Pacific/Apia")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	// Samoa skipped 2011-12-30. The window still has seven dates inside the
	// week, starting on Monday, but cannot contain the missing day.
	w := ComputeWindow(0, time.Date(2011, 12, 31, 12, 0, 0, 0, apia))
	require.Len(t, w.Dates, DaysPerWeek)
	assert.Equal(t, time.Monday, w.Start().Weekday())
	assert.Equal(t, "2011-12-26", w.Start().Format("2006-01-02"))
	for _, d := range w.Dates {
		assert.NotEqual(t, "2011-12-30", d.Format("2006-01-02"))
		assert.False(t, d.Before(w.Start()))
	}
}
