package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoodEntry_RoundTrip(t *testing.T) {
	entries := []MoodEntry{
		{Mood: "Happy", Indicator: "😊", Time: "09:05 AM", Date: "2024-10-14"},
		{Mood: "", Indicator: "", Time: "", Date: ""},
		{Mood: "Custom mood with spaces", Indicator: "🤔", Time: "11:59 PM", Date: "2024-02-29"},
	}
	for _, e := range entries {
		got, err := DecodeEntry(e.Encode())
		require.NoError(t, err)
		assert.Equal(t, e, got)
	}
}

func TestMoodEntry_EncodeFieldOrder(t *testing.T) {
	e := MoodEntry{Mood: "Sad", Indicator: "😔", Time: "08:30 PM", Date: "2024-10-15"}
	assert.Equal(t, "Sad|😔|08:30 PM|2024-10-15", e.Encode())
}

func TestDecodeEntry_WrongArity(t *testing.T) {
	for _, raw := range []string{"", "a", "a|b|c", "a|b|c|d|e"} {
		_, err := DecodeEntry(raw)
		assert.ErrorIs(t, err, ErrMalformedEntry, raw)
	}
}

func TestDecodeAll_SkipsMalformed(t *testing.T) {
	entries, skipped := DecodeAll([]string{
		"Happy|😊|09:00 AM|2024-10-14",
		"garbage",
		"Sad|😔|10:00 PM|2024-10-14|extra",
	})
	assert.Equal(t, 2, skipped)
	require.Len(t, entries, 1)
	assert.Equal(t, "Happy", entries[0].Mood)
}

func TestNewMoodEntry(t *testing.T) {
	at := time.Date(2024, 10, 14, 21, 7, 0, 0, time.UTC)
	e := NewMoodEntry("Content", at)
	assert.Equal(t, MoodEntry{Mood: "Content", Indicator: "😌", Time: "09:07 PM", Date: "2024-10-14"}, e)
	assert.NoError(t, e.Validate())
}

func TestMoodEntry_Validate(t *testing.T) {
	valid := MoodEntry{Mood: "Happy", Indicator: "😊", Time: "09:00 AM", Date: "2024-10-14"}

	bad := valid
	bad.Mood = "Happy|Sad"
	assert.ErrorIs(t, bad.Validate(), ErrInvalidEntry)

	bad = valid
	bad.Mood = ""
	assert.ErrorIs(t, bad.Validate(), ErrInvalidEntry)

	bad = valid
	bad.Date = "14/10/2024"
	assert.ErrorIs(t, bad.Validate(), ErrInvalidEntry)
}

func TestMoodEntry_LoggedAt(t *testing.T) {
	e := MoodEntry{Mood: "Happy", Indicator: "😊", Time: "02:30 PM", Date: "2024-10-14"}
	at, ok := e.LoggedAt(time.UTC)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 10, 14, 14, 30, 0, 0, time.UTC), at)

	e.Time = "whenever"
	at, ok = e.LoggedAt(time.UTC)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 10, 14, 0, 0, 0, 0, time.UTC), at)

	e.Date = "nope"
	_, ok = e.LoggedAt(time.UTC)
	assert.False(t, ok)
}
