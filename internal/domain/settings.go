package domain

// Preference namespaces. Each groups keys that are cleared together.
const (
	NSHabitProgress = "habits"
	NSHydration     = "hydration_settings"
	NSAppSettings   = "app_settings"
	NSUserProfile   = "user_profile"
)

// Preference keys.
const (
	KeyReminderInterval      = "reminder_interval"
	KeyNotificationsEnabled  = "notifications_enabled"
	KeyDarkModeEnabled       = "dark_mode_enabled"
	KeyDailyRemindersEnabled = "daily_reminders_enabled"
	KeyVibrationEnabled      = "vibration_enabled"
	KeyUserName              = "user_name"
	KeyUserEmail             = "user_email"
	KeyUserAvatar            = "user_avatar"
)

// AppSettings holds the boolean toggles from the settings screen.
type AppSettings struct {
	Notifications  bool
	DarkMode       bool
	DailyReminders bool
	Vibration      bool
}

// DefaultAppSettings returns the toggles used before the user changes anything.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Notifications:  true,
		DarkMode:       false,
		DailyReminders: true,
		Vibration:      true,
	}
}

// SettingKeys maps the CLI-facing setting names to their preference keys.
var SettingKeys = map[string]string{
	"notifications":   KeyNotificationsEnabled,
	"dark-mode":       KeyDarkModeEnabled,
	"daily-reminders": KeyDailyRemindersEnabled,
	"vibration":       KeyVibrationEnabled,
}

type UserProfile struct {
	Name   string
	Email  string
	Avatar string
}

// DefaultUserProfile returns the profile shown before the user edits it.
func DefaultUserProfile() UserProfile {
	return UserProfile{
		Name:   "Wellness Warrior",
		Email:  "warrior@wellness.com",
		Avatar: "👤",
	}
}
