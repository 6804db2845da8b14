package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/moodtrack/internal/db"
	"github.com/alexanderramin/moodtrack/internal/domain"
	"github.com/alexanderramin/moodtrack/internal/repository"
)

type preferenceService struct {
	prefs    repository.PreferenceRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewPreferenceService(prefs repository.PreferenceRepo, uow db.UnitOfWork, observers ...UseCaseObserver) PreferenceService {
	return &preferenceService{
		prefs:    prefs,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *preferenceService) ReminderInterval(ctx context.Context) (int, error) {
	v, err := intPref(ctx, s.prefs, domain.NSHydration, domain.KeyReminderInterval, domain.DefaultReminderInterval)
	if err != nil {
		return 0, fmt.Errorf("reading reminder interval: %w", err)
	}
	if domain.ValidateReminderInterval(v) != nil {
		return domain.DefaultReminderInterval, nil
	}
	return v, nil
}

func (s *preferenceService) SetReminderInterval(ctx context.Context, minutes int) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"minutes": minutes}
	defer func() { observe(ctx, s.observer, "set-reminder-interval", startedAt, fields, &err) }()

	if err = domain.ValidateReminderInterval(minutes); err != nil {
		return err
	}
	return s.prefs.Set(ctx, domain.NSHydration, domain.KeyReminderInterval, strconv.Itoa(minutes))
}

func (s *preferenceService) Settings(ctx context.Context) (domain.AppSettings, error) {
	values, err := s.prefs.ListNamespace(ctx, domain.NSAppSettings)
	if err != nil {
		return domain.AppSettings{}, fmt.Errorf("reading settings: %w", err)
	}
	def := domain.DefaultAppSettings()
	return domain.AppSettings{
		Notifications:  boolValue(values, domain.KeyNotificationsEnabled, def.Notifications),
		DarkMode:       boolValue(values, domain.KeyDarkModeEnabled, def.DarkMode),
		DailyReminders: boolValue(values, domain.KeyDailyRemindersEnabled, def.DailyReminders),
		Vibration:      boolValue(values, domain.KeyVibrationEnabled, def.Vibration),
	}, nil
}

func (s *preferenceService) SetSetting(ctx context.Context, name string, enabled bool) (settings domain.AppSettings, err error) {
	startedAt := time.Now()
	fields := map[string]any{"setting": name, "enabled": enabled}
	defer func() { observe(ctx, s.observer, "set-setting", startedAt, fields, &err) }()

	key, ok := domain.SettingKeys[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return domain.AppSettings{}, fmt.Errorf("unknown setting %q (choose %s)", name, strings.Join(settingNames(), ", "))
	}
	if err = s.prefs.Set(ctx, domain.NSAppSettings, key, strconv.FormatBool(enabled)); err != nil {
		return domain.AppSettings{}, err
	}
	return s.Settings(ctx)
}

func (s *preferenceService) Profile(ctx context.Context) (domain.UserProfile, error) {
	values, err := s.prefs.ListNamespace(ctx, domain.NSUserProfile)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("reading profile: %w", err)
	}
	def := domain.DefaultUserProfile()
	return domain.UserProfile{
		Name:   stringValue(values, domain.KeyUserName, def.Name),
		Email:  stringValue(values, domain.KeyUserEmail, def.Email),
		Avatar: stringValue(values, domain.KeyUserAvatar, def.Avatar),
	}, nil
}

func (s *preferenceService) UpdateProfile(ctx context.Context, p domain.UserProfile) (profile domain.UserProfile, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "update-profile", startedAt, fields, &err) }()

	updates := map[string]string{
		domain.KeyUserName:   strings.TrimSpace(p.Name),
		domain.KeyUserEmail:  strings.TrimSpace(p.Email),
		domain.KeyUserAvatar: strings.TrimSpace(p.Avatar),
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPrefs := repository.NewSQLitePreferenceRepo(tx)
		for key, v := range updates {
			if v == "" {
				continue
			}
			fields[key] = true
			if err := txPrefs.Set(ctx, domain.NSUserProfile, key, v); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return domain.UserProfile{}, err
	}
	return s.Profile(ctx)
}

func (s *preferenceService) ClearAll(ctx context.Context) (err error) {
	startedAt := time.Now()
	defer func() { observe(ctx, s.observer, "clear-all-data", startedAt, nil, &err) }()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := clearHabitData(ctx, tx); err != nil {
			return err
		}
		if err := repository.NewSQLiteMoodStore(tx).Clear(ctx); err != nil {
			return err
		}
		return repository.NewSQLitePreferenceRepo(tx).DeleteNamespace(ctx, domain.NSUserProfile)
	})
}

func (s *preferenceService) ClearHabits(ctx context.Context) (err error) {
	startedAt := time.Now()
	defer func() { observe(ctx, s.observer, "clear-habits", startedAt, nil, &err) }()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return clearHabitData(ctx, tx)
	})
}

func clearHabitData(ctx context.Context, tx db.DBTX) error {
	if err := repository.NewSQLiteHabitRepo(tx).DeleteAll(ctx); err != nil {
		return err
	}
	return repository.NewSQLitePreferenceRepo(tx).DeleteNamespace(ctx, domain.NSHabitProgress)
}

func boolValue(values map[string]string, key string, def bool) bool {
	raw, ok := values[key]
	if !ok {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

func stringValue(values map[string]string, key, def string) string {
	if v := values[key]; v != "" {
		return v
	}
	return def
}

func settingNames() []string {
	names := make([]string, 0, len(domain.SettingKeys))
	for name := range domain.SettingKeys {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
