package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/moodtrack/internal/cli/formatter"
	"github.com/alexanderramin/moodtrack/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change app settings",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show all settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Preferences.Settings(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSettings(s))
			return nil
		},
	}

	set := &cobra.Command{
		Use:   "set <name> <on|off>",
		Short: "Turn a setting on or off",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			enabled, err := parseToggle(args[1])
			if err != nil {
				return err
			}
			s, err := app.Preferences.SetSetting(cmd.Context(), args[0], enabled)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSettings(s))
			return nil
		},
	}

	cmd.AddCommand(show, set)
	return cmd
}

// parseToggle accepts on/off as well as anything strconv.ParseBool does.
func parseToggle(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid toggle %q: use on or off", s)
	}
	return b, nil
}

func newHydrationCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hydration",
		Short: "Show or change the hydration reminder interval",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the reminder interval",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			minutes, err := app.Preferences.ReminderInterval(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHydration(minutes))
			return nil
		},
	}

	set := &cobra.Command{
		Use:   "set <minutes>",
		Short: "Set the reminder interval (30, 60, 120 or 180)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			minutes, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid minutes %q: %w", args[0], err)
			}
			if err := app.Preferences.SetReminderInterval(cmd.Context(), minutes); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHydration(minutes))
			return nil
		},
	}

	cmd.AddCommand(show, set)
	return cmd
}

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit your profile",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Preferences.Profile(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}

	var update domain.UserProfile
	set := &cobra.Command{
		Use:   "set",
		Short: "Update profile fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if update == (domain.UserProfile{}) {
				return errors.New("nothing to change: pass --name, --email or --avatar")
			}
			if blank := blankFlags(cmd.Flags()); len(blank) > 0 {
				return fmt.Errorf("%s cannot be blank", strings.Join(blank, ", "))
			}
			p, err := app.Preferences.UpdateProfile(cmd.Context(), update)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}
	set.Flags().StringVar(&update.Name, "name", "", "Display name")
	set.Flags().StringVar(&update.Email, "email", "", "Email address")
	set.Flags().StringVar(&update.Avatar, "avatar", "", "Avatar emoji")

	cmd.AddCommand(show, set)
	return cmd
}

// blankFlags lists the flags that were set explicitly to an empty value.
func blankFlags(fs *pflag.FlagSet) []string {
	var blank []string
	fs.Visit(func(f *pflag.Flag) {
		if strings.TrimSpace(f.Value.String()) == "" {
			blank = append(blank, "--"+f.Name)
		}
	})
	return blank
}

func newDataCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Manage stored data",
	}

	var habitsOnly, yes bool
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete stored habits, counters, moods and profile",
		Long: `Delete stored data. By default this removes habits, habit counters,
mood entries and the profile. --habits-only keeps moods and profile.
Settings and the hydration interval are kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			what := "all habits, counters, moods and your profile"
			if habitsOnly {
				what = "all habits and counters"
			}

			if !yes {
				if !app.interactive() {
					return errors.New("refusing to clear data without --yes")
				}
				confirmed := false
				if err := newConfirmForm("Delete "+what+"?", &confirmed).Run(); err != nil {
					return fmt.Errorf("confirm: %w", err)
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
					return nil
				}
			}

			var err error
			if habitsOnly {
				err = app.Preferences.ClearHabits(cmd.Context())
			} else {
				err = app.Preferences.ClearAll(cmd.Context())
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s.\n", what)
			return nil
		},
	}
	clearCmd.Flags().BoolVar(&habitsOnly, "habits-only", false, "Only clear habits and counters")
	clearCmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	cmd.AddCommand(clearCmd)
	return cmd
}
