package cli

import (
	"time"

	"github.com/alexanderramin/moodtrack/internal/config"
	"github.com/alexanderramin/moodtrack/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Moods       service.MoodService
	Habits      service.HabitService
	Preferences service.PreferenceService

	Config config.Config
	Clock  service.Clock

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Clock == nil {
		return time.Now()
	}
	return a.Clock.Now()
}

// NewRootCmd creates the top-level "moodtrack" command and registers all
// subcommands against the provided App. Run without arguments on a terminal
// it opens the mood chart TUI.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "moodtrack",
		Short:         "Habit and mood tracker with weekly mood analytics",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newMoodCmd(app),
		newHabitCmd(app),
		newSettingsCmd(app),
		newHydrationCmd(app),
		newProfileCmd(app),
		newDataCmd(app),
		newTUICmd(app),
	)

	return root
}

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive mood chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app)
		},
	}
}

// runTUI runs the full-screen app until the user quits.
func runTUI(app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
