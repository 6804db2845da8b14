package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/moodtrack/internal/cli/formatter"
	"github.com/alexanderramin/moodtrack/internal/domain"
	"github.com/spf13/cobra"
)

func newHabitCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Manage custom habits and daily counters",
	}

	cmd.AddCommand(
		newHabitAddCmd(app),
		newHabitEditCmd(app),
		newHabitRemoveCmd(app),
		newHabitListCmd(app),
		newHabitProgressCmd(app),
		newHabitTickCmd(app),
		newHabitSummaryCmd(app),
	)

	return cmd
}

func newHabitAddCmd(app *App) *cobra.Command {
	var timeOfDay string

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a custom habit",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			if strings.TrimSpace(name) == "" {
				if !app.interactive() {
					return errors.New("habit name is required")
				}
				if timeOfDay == "" {
					timeOfDay = domain.DefaultHabitTime
				}
				if err := newHabitForm(&name, &timeOfDay).Run(); err != nil {
					return fmt.Errorf("habit form: %w", err)
				}
			}

			h, err := app.Habits.Add(cmd.Context(), name, timeOfDay)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHabit("Added", h))
			return nil
		},
	}

	cmd.Flags().StringVar(&timeOfDay, "time", "", "Time of day (default \"Morning\")")

	return cmd
}

func newHabitEditCmd(app *App) *cobra.Command {
	var name, timeOfDay string

	cmd := &cobra.Command{
		Use:   "edit <habit>",
		Short: "Rename or retime a habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" && timeOfDay == "" {
				return errors.New("nothing to change: pass --name and/or --time")
			}
			h, err := app.Habits.Edit(cmd.Context(), args[0], name, timeOfDay)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHabit("Updated", h))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New habit name")
	cmd.Flags().StringVar(&timeOfDay, "time", "", "New time of day")

	return cmd
}

func newHabitRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <habit>",
		Aliases: []string{"remove"},
		Short:   "Delete a habit",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := app.Habits.Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHabit("Deleted", h))
			return nil
		},
	}
}

func newHabitListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List custom habits",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			habits, err := app.Habits.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHabitList(habits))
			return nil
		},
	}
}

func newHabitProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress <habit>",
		Short: "Advance a habit by 25% (wraps to 0 after 100%)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := app.Habits.AdvanceProgress(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHabit("Progressed", h))
			return nil
		},
	}
}

func newHabitTickCmd(app *App) *cobra.Command {
	var names []string
	for _, c := range domain.Counters {
		names = append(names, strings.SplitN(string(c.Kind), "_", 2)[0])
	}

	return &cobra.Command{
		Use:       "tick <counter>",
		Short:     "Increment a daily counter (" + strings.Join(names, ", ") + ")",
		Args:      cobra.ExactArgs(1),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := app.Habits.Tick(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCounter(status))
			return nil
		},
	}
}

func newHabitSummaryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show today's counters and habits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Habits.Summary(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHabitSummary(s))
			return nil
		},
	}
}
