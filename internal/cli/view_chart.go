package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/moodtrack/internal/analytics"
	"github.com/alexanderramin/moodtrack/internal/cli/formatter"
	"github.com/alexanderramin/moodtrack/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// weekLoadedMsg carries the summary for one load. seq identifies the load
// so results of superseded loads can be dropped.
type weekLoadedMsg struct {
	seq     int
	offset  int
	summary *service.WeekSummary
	err     error
}

// moodLoggedMsg reports the result of logging a mood from the chart view.
type moodLoggedMsg struct {
	output string
}

type chartKeyMap struct {
	Prev    key.Binding
	Next    key.Binding
	Current key.Binding
	Log     key.Binding
	Entries key.Binding
	Refresh key.Binding
}

func newChartKeyMap() chartKeyMap {
	return chartKeyMap{
		Prev:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev week")),
		Next:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next week")),
		Current: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "this week")),
		Log:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "log mood")),
		Entries: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "entries")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

// chartView shows the weekly mood chart and insights for the week selected
// by its WeekNav.
type chartView struct {
	state   *SharedState
	nav     analytics.WeekNav
	keys    chartKeyMap
	seq     int
	loading bool
	summary *service.WeekSummary
	err     error

	pendingMood string
}

func newChartView(state *SharedState) *chartView {
	return &chartView{
		state:   state,
		keys:    newChartKeyMap(),
		loading: true,
	}
}

func (v *chartView) ID() ViewID    { return ViewMoodChart }
func (v *chartView) Title() string { return "Mood chart" }

func (v *chartView) ShortHelp() []key.Binding {
	v.keys.Next.SetEnabled(v.nav.CanNext())
	return []key.Binding{
		v.keys.Prev, v.keys.Next, v.keys.Current,
		v.keys.Log, v.keys.Entries, v.keys.Refresh,
	}
}

func (v *chartView) Init() tea.Cmd {
	return v.load()
}

// load starts a fetch for the current offset. Any load still in flight is
// superseded.
func (v *chartView) load() tea.Cmd {
	v.seq++
	v.loading = true
	seq, offset := v.seq, v.nav.Offset()
	moods := v.state.App.Moods
	return func() tea.Msg {
		summary, err := moods.WeekSummary(context.Background(), offset)
		return weekLoadedMsg{seq: seq, offset: offset, summary: summary, err: err}
	}
}

func (v *chartView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case weekLoadedMsg:
		if msg.seq != v.seq || msg.offset != v.nav.Offset() {
			return v, nil
		}
		v.loading = false
		v.summary, v.err = msg.summary, msg.err
		return v, nil

	case refreshViewMsg:
		return v, v.load()

	case moodLoggedMsg:
		return v, tea.Batch(outputCmd(msg.output), v.load())

	case tea.KeyMsg:
		return v.updateKeys(msg)
	}
	return v, nil
}

func (v *chartView) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Prev):
		v.nav.Prev()
		return v, v.load()
	case key.Matches(msg, v.keys.Next):
		if !v.nav.Next() {
			return v, nil
		}
		return v, v.load()
	case key.Matches(msg, v.keys.Current):
		if v.nav.Offset() == 0 {
			return v, nil
		}
		v.nav.Current()
		return v, v.load()
	case key.Matches(msg, v.keys.Refresh):
		return v, v.load()
	case key.Matches(msg, v.keys.Entries):
		return v, pushView(newMoodListView(v.state))
	case key.Matches(msg, v.keys.Log):
		v.pendingMood = ""
		return v, startWizard(v.state, "Log mood", newMoodForm(&v.pendingMood), v.logPendingMood)
	}
	return v, nil
}

// logPendingMood stores the mood chosen in the wizard.
func (v *chartView) logPendingMood() tea.Cmd {
	mood := v.pendingMood
	moods := v.state.App.Moods
	return func() tea.Msg {
		entry, err := moods.Log(context.Background(), mood)
		if err != nil {
			return moodLoggedMsg{output: errorOutput(err)}
		}
		return moodLoggedMsg{output: strings.TrimRight(formatter.FormatMoodLogged(entry), "\n")}
	}
}

func (v *chartView) View() string {
	if v.summary == nil {
		if v.err != nil {
			return "\n  " + errorOutput(v.err)
		}
		return "\n  " + formatter.Dim("Loading mood chart...")
	}

	var b strings.Builder
	b.WriteString("\n")
	if v.err != nil {
		b.WriteString(errorOutput(v.err) + "\n")
	}
	w, h := v.state.ChartSize()
	b.WriteString(formatter.FormatMoodChart(v.summary, w, h))
	if !v.nav.CanNext() {
		b.WriteString(formatter.Dim(fmt.Sprintf("You can look at most %d weeks ahead.", analytics.MaxForwardOffset)) + "\n")
	}
	if v.loading {
		b.WriteString(formatter.Dim("Updating...") + "\n")
	}
	return b.String()
}
