package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/moodtrack/internal/domain"
	"github.com/alexanderramin/moodtrack/internal/service"
)

const habitBarWidth = 12

// FormatHabitList renders custom habits with their progress.
func FormatHabitList(habits []*domain.Habit) string {
	if len(habits) == 0 {
		return Dim("No habits yet. Try: moodtrack habit add \"Morning walk\"") + "\n"
	}
	rows := make([][]string, 0, len(habits))
	for _, h := range habits {
		rows = append(rows, []string{
			h.Emoji() + " " + Bold(h.Name),
			Dim(h.TimeOfDay),
			RenderProgress(float64(h.Progress)/100, habitBarWidth),
			Dim(shortID(h.ID)),
		})
	}
	return RenderTable([]string{"HABIT", "WHEN", "PROGRESS", "ID"}, rows)
}

// FormatHabit renders a one-line description of a single habit.
func FormatHabit(verb string, h *domain.Habit) string {
	return fmt.Sprintf("%s %s %s %s %s\n",
		StyleGreen.Render("✔"), verb, h.Emoji(), Bold(h.Name),
		Dim(fmt.Sprintf("(%s, %d%%)", h.TimeOfDay, h.Progress)))
}

// FormatCounter renders one built-in counter.
func FormatCounter(c service.CounterStatus) string {
	mark := Dim("○")
	if c.Done() {
		mark = StyleGreen.Render("✔")
	}
	return fmt.Sprintf("%s %s %s", mark, padCell(Bold(c.Spec.Title), 12),
		RenderCounter(c.Value, c.Spec.Goal, c.Spec.Unit, habitBarWidth))
}

// FormatHabitSummary renders the daily overview: counters, custom habits and
// the completed count.
func FormatHabitSummary(s *service.HabitSummary) string {
	var b strings.Builder
	b.WriteString(Header("Today's habits"))
	b.WriteString("\n\n")
	for _, c := range s.Counters {
		b.WriteString(FormatCounter(c))
		b.WriteString("\n")
	}
	if len(s.Habits) > 0 {
		b.WriteString("\n")
		b.WriteString(FormatHabitList(s.Habits))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Completed:"), Bold(fmt.Sprintf("%d/%d", s.Completed, s.Total))))
	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
