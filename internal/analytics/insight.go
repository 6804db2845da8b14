package analytics

import (
	"fmt"
	"strings"
)

// Fixed insight lines.
const (
	InsightNoData       = "No mood data recorded this week"
	InsightLogPrompt    = "Log moods to track your emotional patterns"
	InsightGreat        = "You were feeling great this week! 😄"
	InsightGood         = "Overall, you had a good week! 😊"
	InsightChallenging  = "This was a challenging week 💖"
	InsightConsistent   = "Very consistent mood pattern 📊"
	InsightVaried       = "Emotionally varied week 🌈"
	InsightFailure      = "Keep tracking your mood for better insights!"
	InsightNavigateHint = "Navigate to current week to see your latest moods"
	InsightHistoryHint  = "Mood data is saved for historical viewing"
)

// variedRangeThreshold is compared against the spread of integer day
// averages, so a spread of exactly 2 earns neither consistency line.
const variedRangeThreshold = 2.5

// GenerateInsights derives between one and five summary lines from a week of
// aggregates. Days with AverageValue 0 are treated as untracked.
func GenerateInsights(days []DayAggregate) []string {
	var tracked []int
	for _, d := range days {
		if d.HasData() {
			tracked = append(tracked, d.AverageValue)
		}
	}
	if len(tracked) == 0 {
		return []string{InsightNoData, InsightLogPrompt}
	}

	sum := 0
	maxVal, minVal := tracked[0], tracked[0]
	for _, v := range tracked {
		sum += v
		maxVal = max(maxVal, v)
		minVal = min(minVal, v)
	}
	mean := float64(sum) / float64(len(tracked))

	lines := make([]string, 0, 5)
	switch {
	case mean >= 4:
		lines = append(lines, InsightGreat)
	case mean >= 3:
		lines = append(lines, InsightGood)
	default:
		lines = append(lines, InsightChallenging)
	}
	lines = append(lines, fmt.Sprintf("You tracked %d of %d days", len(tracked), DaysPerWeek))

	if len(tracked) >= 2 {
		// Ties go to the earliest day of the week.
		if i := firstIndex(days, maxVal); i >= 0 {
			lines = append(lines, "Best day: "+days[i].Label)
		}
		if minVal != maxVal {
			if i := firstIndex(days, minVal); i >= 0 {
				lines = append(lines, "Toughest day: "+days[i].Label)
			}
		}
	}

	if len(tracked) >= 3 {
		spread := float64(maxVal - minVal)
		if spread <= 1 {
			lines = append(lines, InsightConsistent)
		} else if spread >= variedRangeThreshold {
			lines = append(lines, InsightVaried)
		}
	}
	return lines
}

// firstIndex returns the first day whose value equals v and has data.
func firstIndex(days []DayAggregate, v int) int {
	for i, d := range days {
		if d.HasData() && d.AverageValue == v {
			return i
		}
	}
	return -1
}

// SafeInsights runs GenerateInsights, replacing any panic with the failure
// line.
func SafeInsights(days []DayAggregate) (lines []string, failed bool) {
	defer func() {
		if r := recover(); r != nil {
			lines = []string{InsightFailure}
			failed = true
		}
	}()
	return GenerateInsights(days), false
}

// UnavailableInsights is shown when the week's entries could not be read.
func UnavailableInsights() []string {
	return []string{InsightNavigateHint, InsightHistoryHint}
}

// FormatBullets renders lines as a bullet list, one per line.
func FormatBullets(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return "• " + strings.Join(lines, "\n• ")
}
