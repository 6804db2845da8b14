package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDisplayDate(t *testing.T) {
	now := time.Date(2024, 10, 16, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date string
		want string
	}{
		{"today", "2024-10-16", "Today"},
		{"yesterday", "2024-10-15", "Yesterday"},
		{"earlier this week", "2024-10-14", "Oct 14"},
		{"tomorrow is not special", "2024-10-17", "Oct 17"},
		{"across a year boundary", "2023-12-31", "Dec 31"},
		{"unparseable passes through", "sometime", "sometime"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayDate(tt.date, now))
		})
	}
}

func TestDisplayDate_YesterdayAcrossMonth(t *testing.T) {
	now := time.Date(2024, 11, 1, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, "Yesterday", DisplayDate("2024-10-31", now))
}

func TestOnOff(t *testing.T) {
	assert.Contains(t, stripANSI(OnOff(true)), "on")
	assert.Contains(t, stripANSI(OnOff(false)), "off")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "Medit…", Truncate("Meditation", 6))
	assert.Equal(t, "", Truncate("anything", 0))
}

func TestRenderBox(t *testing.T) {
	result := RenderBox("TEST", "content here")
	assert.Contains(t, result, "TEST")
	assert.Contains(t, result, "content here")
	assert.Contains(t, result, "╭")
	assert.Contains(t, result, "╰")
}

func TestRenderBoxWithoutTitle(t *testing.T) {
	result := RenderBox("", "just content")
	assert.Contains(t, result, "just content")
	assert.Contains(t, result, "╭")
}

func TestRenderTable_AlignsStyledCells(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"A", "B"},
		[][]string{{StyleGreen.Render("long cell"), "x"}, {"s", "y"}},
	))
	assert.Contains(t, out, "long cell  x")
	assert.Contains(t, out, "s          y")
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"a"}}))
}

func TestRenderKeyValues(t *testing.T) {
	out := stripANSI(RenderKeyValues([][2]string{{"name", "Ada"}, {"email", "ada@example.com"}}))
	assert.Contains(t, out, "name   Ada")
	assert.Contains(t, out, "email  ada@example.com")
}
