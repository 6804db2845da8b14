package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/moodtrack/internal/analytics"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// HueColor resolves a chart bucket to a palette color.
func HueColor(h analytics.Hue) lipgloss.Color {
	switch h {
	case analytics.HueGreat:
		return ColorGreen
	case analytics.HueGood:
		return ColorPurple
	case analytics.HueOkay:
		return ColorBlue
	case analytics.HueLow:
		return ColorRed
	default:
		return ColorDim
	}
}

// HueStyle returns the foreground style for a chart bucket.
func HueStyle(h analytics.Hue) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(HueColor(h))
}

// MoodValueStyled renders an ordinal value with its bucket label, e.g. "Good (4)".
func MoodValueStyled(value int, label string) string {
	if value <= 0 {
		return StyleDim.Render("--")
	}
	return HueStyle(analytics.HueFor(value)).Render(fmt.Sprintf("%s (%d)", label, value))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
