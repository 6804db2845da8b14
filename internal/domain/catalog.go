package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Mood is a loggable mood and the indicator stored with it.
type Mood struct {
	Name      string
	Indicator string
}

// Moods lists the moods offered when logging, in display order.
var Moods = []Mood{
	{Name: "Happy", Indicator: "😊"},
	{Name: "Content", Indicator: "😌"},
	{Name: "Neutral", Indicator: "😐"},
	{Name: "Sad", Indicator: "😔"},
	{Name: "Angry", Indicator: "😠"},
	{Name: "Tired", Indicator: "😴"},
}

// DefaultIndicator is stored for mood names outside the catalog.
const DefaultIndicator = "😐"

var titleCaser = cases.Title(language.English)

// NormalizeMoodName trims and title-cases user input ("  happy " -> "Happy").
func NormalizeMoodName(name string) string {
	return titleCaser.String(strings.TrimSpace(name))
}

// IndicatorForMood returns the indicator stored with a mood name.
func IndicatorForMood(name string) string {
	for _, m := range Moods {
		if m.Name == name {
			return m.Indicator
		}
	}
	return DefaultIndicator
}

// IsKnownMood reports whether name is in the catalog.
func IsKnownMood(name string) bool {
	for _, m := range Moods {
		if m.Name == name {
			return true
		}
	}
	return false
}

// MoodNames returns the catalog names in display order.
func MoodNames() []string {
	names := make([]string, len(Moods))
	for i, m := range Moods {
		names[i] = m.Name
	}
	return names
}
