package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/moodtrack/internal/cli/formatter"
	"github.com/alexanderramin/moodtrack/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// moodsLoadedMsg signals that the mood history has been loaded.
type moodsLoadedMsg struct {
	entries []domain.MoodEntry
	err     error
}

// moodDeletedMsg reports the result of deleting the selected entry.
type moodDeletedMsg struct {
	entry domain.MoodEntry
	err   error
}

// moodListView shows logged moods newest first. The selected entry can be
// deleted.
type moodListView struct {
	state   *SharedState
	entries []domain.MoodEntry
	cursor  int
	offset  int // first visible row
	loading bool
	err     error
}

func newMoodListView(state *SharedState) *moodListView {
	return &moodListView{
		state:   state,
		loading: true,
	}
}

func (v *moodListView) ID() ViewID    { return ViewMoodList }
func (v *moodListView) Title() string { return "Entries" }

func (v *moodListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "k", "down", "j"), key.WithHelp("↑↓", "move")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	}
}

func (v *moodListView) Init() tea.Cmd {
	return v.loadMoods()
}

func (v *moodListView) loadMoods() tea.Cmd {
	moods := v.state.App.Moods
	return func() tea.Msg {
		entries, err := moods.List(context.Background())
		return moodsLoadedMsg{entries: entries, err: err}
	}
}

func (v *moodListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case moodsLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.entries = msg.entries
		}
		v.cursor = min(v.cursor, max(len(v.entries)-1, 0))
		return v, nil

	case moodDeletedMsg:
		if msg.err != nil {
			return v, outputCmd(errorOutput(msg.err))
		}
		out := fmt.Sprintf("Deleted %s %s from %s", msg.entry.Indicator, msg.entry.Mood,
			formatter.DisplayDate(msg.entry.Date, v.state.App.now()))
		return v, tea.Batch(outputCmd(out), v.loadMoods())

	case refreshViewMsg:
		return v, v.loadMoods()

	case tea.KeyMsg:
		return v.updateKeys(msg)
	}
	return v, nil
}

func (v *moodListView) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.entries)-1 {
			v.cursor++
		}
	case "d":
		if v.cursor < len(v.entries) {
			e := v.entries[v.cursor]
			moods := v.state.App.Moods
			return v, func() tea.Msg {
				return moodDeletedMsg{entry: e, err: moods.Delete(context.Background(), e)}
			}
		}
	}
	return v, nil
}

func (v *moodListView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading moods...")
	}
	if v.err != nil {
		return "\n  " + errorOutput(v.err)
	}

	var b strings.Builder
	b.WriteString("\n")

	if len(v.entries) == 0 {
		b.WriteString("  " + formatter.Dim("No moods logged yet. Press esc, then n to log one.") + "\n")
		return b.String()
	}

	// Keep the cursor inside the visible window.
	rows := max(v.state.ContentHeight()-2, 1)
	if v.cursor < v.offset {
		v.offset = v.cursor
	}
	if v.cursor >= v.offset+rows {
		v.offset = v.cursor - rows + 1
	}

	now := v.state.App.now()
	end := min(v.offset+rows, len(v.entries))
	for i := v.offset; i < end; i++ {
		e := v.entries[i]
		cursor := "  "
		nameStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}
		b.WriteString(fmt.Sprintf("%s%s %s  %s  %s\n",
			cursor,
			e.Indicator,
			nameStyle.Render(padRight(e.Mood, 10)),
			padRight(formatter.DisplayDate(e.Date, now), 10),
			formatter.Dim(e.Time),
		))
	}

	return b.String()
}

// padRight pads a string to a minimum width, truncating if needed.
func padRight(s string, width int) string {
	s = formatter.Truncate(s, width)
	return s + strings.Repeat(" ", max(width-lipgloss.Width(s), 0))
}
