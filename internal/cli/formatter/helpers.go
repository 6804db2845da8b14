package formatter

import (
	"strings"
	"time"

	"github.com/alexanderramin/moodtrack/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// DisplayDate renders a stored entry date relative to now: "Today",
// "Yesterday", or "Jan 02". Unparseable dates are returned unchanged.
func DisplayDate(date string, now time.Time) string {
	d, err := time.ParseInLocation(domain.EntryDateLayout, date, now.Location())
	if err != nil {
		return date
	}
	y1, m1, d1 := now.Date()
	y2, m2, d2 := d.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	y3, m3, d3 := now.AddDate(0, 0, -1).Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return d.Format("Jan 02")
}

// OnOff renders a toggle.
func OnOff(enabled bool) string {
	if enabled {
		return StyleGreen.Render("● on")
	}
	return StyleDim.Render("○ off")
}

// Truncate shortens s to width visible cells, marking the cut with "…".
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
