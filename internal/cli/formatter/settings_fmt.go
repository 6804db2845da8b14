package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/moodtrack/internal/domain"
)

// FormatSettings renders the app toggles under their CLI names.
func FormatSettings(s domain.AppSettings) string {
	return Header("Settings") + "\n" + RenderKeyValues([][2]string{
		{"notifications", OnOff(s.Notifications)},
		{"dark-mode", OnOff(s.DarkMode)},
		{"daily-reminders", OnOff(s.DailyReminders)},
		{"vibration", OnOff(s.Vibration)},
	})
}

// FormatProfile renders the user profile as a boxed card.
func FormatProfile(p domain.UserProfile) string {
	card := strings.TrimRight(RenderKeyValues([][2]string{
		{"avatar", p.Avatar},
		{"name", Bold(p.Name)},
		{"email", p.Email},
	}), "\n")
	return RenderBox("Profile", card) + "\n"
}

// FormatHydration renders the reminder interval.
func FormatHydration(minutes int) string {
	return fmt.Sprintf("%s %s\n", Dim("Hydration reminder every"), Bold(domain.ReminderIntervalLabel(minutes)))
}
