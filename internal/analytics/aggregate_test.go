package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/alexanderramin/moodtrack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(indicator string, d time.Time) domain.MoodEntry {
	return domain.MoodEntry{Mood: "m", Indicator: indicator, Time: "09:00 AM", Date: d.Format(domain.EntryDateLayout)}
}

func refWindow() WeekWindow {
	return ComputeWindow(0, time.Date(2024, 10, 16, 9, 0, 0, 0, time.UTC))
}

func TestAggregate_NoEntriesIsZero(t *testing.T) {
	got := AggregateWindow(refWindow(), nil)
	require.Len(t, got.Days, DaysPerWeek)
	assert.False(t, got.IsEmpty(), "seven zero days are not the empty result")
	assert.Equal(t, 0, got.DaysWithData())
	for _, d := range got.Days {
		assert.Equal(t, 0, d.AverageValue)
	}
}

func TestAggregate_Labels(t *testing.T) {
	got := AggregateWindow(refWindow(), nil)
	var labels []string
	for _, d := range got.Days {
		labels = append(labels, d.Label)
	}
	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}, labels)
}

func TestAggregate_TruncatedMean(t *testing.T) {
	w := refWindow()
	mon, tue := w.Dates[0], w.Dates[1]

	entries := []domain.MoodEntry{
		entry("😊", mon), entry("😐", mon), // 5,3 -> 4
		entry("😊", tue), entry("😔", tue), // 5,2 -> 3 (not 4)
	}
	got := AggregateWindow(w, entries)
	assert.Equal(t, 4, got.Days[0].AverageValue)
	assert.Equal(t, 3, got.Days[1].AverageValue)
	assert.Equal(t, 0, got.Days[2].AverageValue)
}

func TestAggregate_UnknownIndicatorFallsBackToOkay(t *testing.T) {
	w := refWindow()
	got := AggregateWindow(w, []domain.MoodEntry{entry("😠", w.Dates[3]), entry("😴", w.Dates[4])})
	assert.Equal(t, 3, got.Days[3].AverageValue)
	assert.Equal(t, 3, got.Days[4].AverageValue)
}

func TestAggregate_IgnoresOtherWeeks(t *testing.T) {
	w := refWindow()
	got := AggregateWindow(w, []domain.MoodEntry{
		entry("😊", w.Start().AddDate(0, 0, -1)),
		entry("😊", w.End().AddDate(0, 0, 1)),
	})
	assert.Equal(t, 0, got.DaysWithData())
}

func TestAggregate_Idempotent(t *testing.T) {
	w := refWindow()
	var entries []domain.MoodEntry
	indicators := []string{"😊", "😌", "😐", "😔", "😢", "🤩", "😕"}
	for i := 0; i < 40; i++ {
		entries = append(entries, entry(indicators[i%len(indicators)], w.Dates[i%DaysPerWeek]))
	}
	first := AggregateWindow(w, entries)
	second := AggregateWindow(w, entries)
	assert.Equal(t, first, second)
}

func TestAggregate_ValuesStayOnScale(t *testing.T) {
	w := refWindow()
	for n := 1; n <= 5; n++ {
		var entries []domain.MoodEntry
		for i := 0; i < n; i++ {
			entries = append(entries, entry([]string{"😢", "😭", "🤩", "🙂"}[i%4], w.Dates[0]))
		}
		got := AggregateWindow(w, entries)
		v := got.Days[0].AverageValue
		assert.True(t, v >= 1 && v <= 5, fmt.Sprintf("n=%d value=%d", n, v))
	}
}

func TestEmptyAggregates(t *testing.T) {
	assert.True(t, EmptyAggregates().IsEmpty())
}
