package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/moodtrack/internal/analytics"
	"github.com/alexanderramin/moodtrack/internal/cli/formatter"
	"github.com/alexanderramin/moodtrack/internal/domain"
	"github.com/spf13/cobra"
)

func newMoodCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mood",
		Short: "Log moods and review the weekly mood chart",
	}

	cmd.AddCommand(
		newMoodLogCmd(app),
		newMoodListCmd(app),
		newMoodRemoveCmd(app),
		newMoodChartCmd(app),
		newMoodWeekCmd(app),
	)

	return cmd
}

func newMoodLogCmd(app *App) *cobra.Command {
	var mood string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log how you feel right now",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(mood) == "" {
				if !app.interactive() {
					return errors.New("--mood is required when not running in a terminal")
				}
				if err := newMoodForm(&mood).Run(); err != nil {
					return fmt.Errorf("choosing mood: %w", err)
				}
			}

			entry, err := app.Moods.Log(cmd.Context(), mood)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMoodLogged(entry))
			if !domain.IsKnownMood(entry.Mood) {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim(
					fmt.Sprintf("  %q is not one of %s; stored with %s",
						entry.Mood, strings.Join(domain.MoodNames(), ", "), entry.Indicator)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&mood, "mood", "m", "", "Mood name ("+strings.Join(domain.MoodNames(), ", ")+")")

	return cmd
}

func newMoodListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List logged moods, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Moods.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMoodList(entries, app.now()))
			return nil
		},
	}
}

func newMoodRemoveCmd(app *App) *cobra.Command {
	var raw string
	var index int

	cmd := &cobra.Command{
		Use:     "rm",
		Aliases: []string{"remove"},
		Short:   "Delete a logged mood",
		Long: `Delete a logged mood, either by its position in "mood list"
(--index) or by its exact stored form "mood|indicator|time|date" (--entry).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var entry domain.MoodEntry
			switch {
			case raw != "" && index != 0:
				return errors.New("use either --entry or --index, not both")
			case raw != "":
				e, err := domain.DecodeEntry(raw)
				if err != nil {
					return err
				}
				entry = e
			case index > 0:
				entries, err := app.Moods.List(ctx)
				if err != nil {
					return err
				}
				if index > len(entries) {
					return fmt.Errorf("index %d out of range (%d moods logged)", index, len(entries))
				}
				entry = entries[index-1]
			default:
				return errors.New("--entry or a positive --index is required")
			}

			if err := app.Moods.Delete(ctx, entry); err != nil {
				return fmt.Errorf("deleting mood: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %s from %s %s\n",
				entry.Indicator, entry.Mood, entry.Date, entry.Time)
			return nil
		},
	}

	cmd.Flags().StringVar(&raw, "entry", "", `Stored entry, e.g. "Happy|😊|09:00 AM|2024-10-14"`)
	cmd.Flags().IntVar(&index, "index", 0, "1-based position in mood list")

	return cmd
}

// validateOffset rejects week offsets past the navigation limit.
func validateOffset(offset int) error {
	if offset > analytics.MaxForwardOffset {
		return fmt.Errorf("offset %d is too far ahead (max %d weeks)", offset, analytics.MaxForwardOffset)
	}
	return nil
}

func newMoodChartCmd(app *App) *cobra.Command {
	var offset, width, height int

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Draw the weekly mood chart",
		Long: `Draw the mood chart for one week. --offset moves the week:
0 is this week, -1 last week, 1 next week (up to 4).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOffset(offset); err != nil {
				return err
			}
			if width <= 0 {
				width = app.Config.ChartWidth
			}
			if height <= 0 {
				height = app.Config.ChartHeight
			}

			summary, err := app.Moods.WeekSummary(cmd.Context(), offset)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMoodChart(summary, width, height))
			return nil
		},
	}

	cmd.Flags().IntVar(&offset, "offset", 0, "Week offset relative to this week")
	cmd.Flags().IntVar(&width, "width", 0, "Chart width in columns (default from config)")
	cmd.Flags().IntVar(&height, "height", 0, "Chart height in rows (default from config)")

	return cmd
}

func newMoodWeekCmd(app *App) *cobra.Command {
	var offset int

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show daily averages and insights for a week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOffset(offset); err != nil {
				return err
			}
			summary, err := app.Moods.WeekSummary(cmd.Context(), offset)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWeekSummary(summary))
			return nil
		},
	}

	cmd.Flags().IntVar(&offset, "offset", 0, "Week offset relative to this week")

	return cmd
}
