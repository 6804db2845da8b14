package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/moodtrack/internal/analytics"
	"github.com/alexanderramin/moodtrack/internal/domain"
	"github.com/alexanderramin/moodtrack/internal/service"
)

// FormatMoodList renders logged moods newest first with a 1-based index
// usable by "mood rm --index".
func FormatMoodList(entries []domain.MoodEntry, now time.Time) string {
	if len(entries) == 0 {
		return Dim("No moods logged yet. Try: moodtrack mood log --mood happy") + "\n"
	}

	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		value := domain.OrdinalFor(e.Indicator)
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d", i+1)),
			e.Indicator + " " + HueStyle(analytics.HueFor(value)).Render(e.Mood),
			DisplayDate(e.Date, now),
			Dim(e.Time),
		})
	}
	return RenderTable([]string{"#", "MOOD", "DAY", "TIME"}, rows)
}

// FormatMoodLogged confirms a newly logged entry.
func FormatMoodLogged(e domain.MoodEntry) string {
	return fmt.Sprintf("%s Logged %s %s\n", StyleGreen.Render("✔"), e.Indicator, Bold(e.Mood)) +
		Dim(fmt.Sprintf("  %s at %s", e.Date, e.Time)) + "\n"
}

// FormatWeekHeader renders the range label of a summary.
func FormatWeekHeader(s *service.WeekSummary) string {
	return Header(s.Window.RangeLabel)
}

// FormatInsights renders insight lines as a bullet list.
func FormatInsights(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	bullets := analytics.FormatBullets(lines)
	var b strings.Builder
	for i, line := range strings.Split(bullets, "\n") {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(StyleFg.Render(line))
	}
	return b.String()
}

// FormatWeekDays renders one row per day of a summary: weekday, date and
// bucketed average.
func FormatWeekDays(s *service.WeekSummary) string {
	if s.Aggregates.IsEmpty() {
		return Dim("Mood entries are unavailable.") + "\n"
	}
	rows := make([][]string, 0, len(s.Aggregates.Days))
	for _, d := range s.Aggregates.Days {
		rows = append(rows, []string{
			d.Label,
			Dim(d.Date.Format("Jan 02")),
			MoodValueStyled(d.AverageValue, domain.BucketLabel(d.AverageValue)),
		})
	}
	return RenderTable([]string{"DAY", "DATE", "MOOD"}, rows)
}

// FormatWeekSummary renders the textual weekly report: range, days and
// insights.
func FormatWeekSummary(s *service.WeekSummary) string {
	var b strings.Builder
	b.WriteString(FormatWeekHeader(s))
	b.WriteString("\n\n")
	b.WriteString(FormatWeekDays(s))
	b.WriteString("\n")
	b.WriteString(FormatInsights(s.Insights))
	b.WriteString("\n")
	return b.String()
}

// FormatMoodChart renders the full chart screen for a summary on a canvas of
// width x height cells.
func FormatMoodChart(s *service.WeekSummary, width, height int) string {
	plan := s.Chart(float64(width), float64(height), TerminalGeometry)

	var b strings.Builder
	b.WriteString(FormatWeekHeader(s))
	b.WriteString("\n\n")
	b.WriteString(RenderChart(plan))
	b.WriteString("\n\n")
	b.WriteString(FormatInsights(s.Insights))
	b.WriteString("\n")
	return b.String()
}
