package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/alexanderramin/moodtrack/internal/db"
	"github.com/alexanderramin/moodtrack/internal/domain"
	"github.com/alexanderramin/moodtrack/internal/repository"
	"github.com/google/uuid"
	"github.com/sahilm/fuzzy"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrAmbiguousHabit is returned when a habit reference matches more than one
// habit.
var ErrAmbiguousHabit = errors.New("ambiguous habit")

type habitService struct {
	habits   repository.HabitRepo
	prefs    repository.PreferenceRepo
	uow      db.UnitOfWork
	clock    Clock
	observer UseCaseObserver
}

func NewHabitService(
	habits repository.HabitRepo,
	prefs repository.PreferenceRepo,
	uow db.UnitOfWork,
	clock Clock,
	observers ...UseCaseObserver,
) HabitService {
	return &habitService{
		habits:   habits,
		prefs:    prefs,
		uow:      uow,
		clock:    clockOrSystem(clock),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *habitService) Add(ctx context.Context, name, timeOfDay string) (h *domain.Habit, err error) {
	startedAt := time.Now()
	fields := map[string]any{"name": name}
	defer func() { observe(ctx, s.observer, "add-habit", startedAt, fields, &err) }()

	if strings.TrimSpace(timeOfDay) == "" {
		timeOfDay = domain.DefaultHabitTime
	}
	now := s.clock.Now().UTC()
	h = &domain.Habit{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		TimeOfDay: strings.TrimSpace(timeOfDay),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = h.Validate(); err != nil {
		return nil, err
	}
	if err = s.habits.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *habitService) Edit(ctx context.Context, ref, name, timeOfDay string) (h *domain.Habit, err error) {
	startedAt := time.Now()
	fields := map[string]any{"ref": ref}
	defer func() { observe(ctx, s.observer, "edit-habit", startedAt, fields, &err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txHabits := repository.NewSQLiteHabitRepo(tx)
		found, err := resolveHabit(ctx, txHabits, ref)
		if err != nil {
			return err
		}
		if n := strings.TrimSpace(name); n != "" {
			found.Name = n
		}
		if tod := strings.TrimSpace(timeOfDay); tod != "" {
			found.TimeOfDay = tod
		}
		if err := found.Validate(); err != nil {
			return err
		}
		found.UpdatedAt = s.clock.Now().UTC()
		if err := txHabits.Update(ctx, found); err != nil {
			return err
		}
		h = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (s *habitService) Delete(ctx context.Context, ref string) (h *domain.Habit, err error) {
	startedAt := time.Now()
	fields := map[string]any{"ref": ref}
	defer func() { observe(ctx, s.observer, "delete-habit", startedAt, fields, &err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txHabits := repository.NewSQLiteHabitRepo(tx)
		found, err := resolveHabit(ctx, txHabits, ref)
		if err != nil {
			return err
		}
		h = found
		return txHabits.Delete(ctx, found.ID)
	})
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (s *habitService) List(ctx context.Context) ([]*domain.Habit, error) {
	return s.habits.List(ctx)
}

func (s *habitService) AdvanceProgress(ctx context.Context, ref string) (h *domain.Habit, err error) {
	startedAt := time.Now()
	fields := map[string]any{"ref": ref}
	defer func() { observe(ctx, s.observer, "advance-habit", startedAt, fields, &err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txHabits := repository.NewSQLiteHabitRepo(tx)
		found, err := resolveHabit(ctx, txHabits, ref)
		if err != nil {
			return err
		}
		found.AdvanceProgress(s.clock.Now().UTC())
		if err := txHabits.Update(ctx, found); err != nil {
			return err
		}
		h = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["progress"] = h.Progress
	return h, nil
}

func (s *habitService) Tick(ctx context.Context, counter string) (status CounterStatus, err error) {
	startedAt := time.Now()
	fields := map[string]any{"counter": counter}
	defer func() { observe(ctx, s.observer, "tick-counter", startedAt, fields, &err) }()

	spec, ok := domain.LookupCounter(counter)
	if !ok {
		return CounterStatus{}, fmt.Errorf("unknown counter %q (choose water, meditation, exercise or journal)", counter)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPrefs := repository.NewSQLitePreferenceRepo(tx)
		current, err := intPref(ctx, txPrefs, domain.NSHabitProgress, string(spec.Kind), 0)
		if err != nil {
			return err
		}
		next := spec.Next(current)
		if err := txPrefs.Set(ctx, domain.NSHabitProgress, string(spec.Kind), strconv.Itoa(next)); err != nil {
			return err
		}
		status = CounterStatus{Spec: spec, Value: next, Percent: spec.Percent(next)}
		return nil
	})
	if err != nil {
		return CounterStatus{}, err
	}
	fields["value"] = status.Value
	return status, nil
}

func (s *habitService) Summary(ctx context.Context) (*HabitSummary, error) {
	values, err := s.prefs.ListNamespace(ctx, domain.NSHabitProgress)
	if err != nil {
		return nil, fmt.Errorf("loading counters: %w", err)
	}
	habits, err := s.habits.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := &HabitSummary{Habits: habits}
	for _, spec := range domain.Counters {
		v, _ := strconv.Atoi(values[string(spec.Kind)])
		st := CounterStatus{Spec: spec, Value: v, Percent: spec.Percent(v)}
		summary.Counters = append(summary.Counters, st)
		if st.Done() {
			summary.Completed++
		}
	}
	for _, h := range habits {
		if h.Progress >= 100 {
			summary.Completed++
		}
	}
	summary.Total = len(summary.Counters) + len(habits)
	return summary, nil
}

var habitNameFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldHabitName lowercases and strips diacritics so "Méditer" matches
// "mediter".
func foldHabitName(s string) string {
	folded, _, err := transform.String(habitNameFolder, strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return folded
}

// minIDPrefix is the shortest ID prefix accepted as a habit reference.
const minIDPrefix = 6

// resolveHabit finds a habit by exact name (case-insensitive), then by ID or
// unique ID prefix, then by fuzzy name match when exactly one habit matches.
func resolveHabit(ctx context.Context, habits repository.HabitRepo, ref string) (*domain.Habit, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("%w: habit name is required", domain.ErrInvalidHabit)
	}

	h, err := habits.GetByName(ctx, ref)
	if err == nil {
		return h, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	all, err := habits.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(all))
	var byPrefix []*domain.Habit
	for i, candidate := range all {
		if candidate.ID == ref {
			return candidate, nil
		}
		if len(ref) >= minIDPrefix && strings.HasPrefix(candidate.ID, strings.ToLower(ref)) {
			byPrefix = append(byPrefix, candidate)
		}
		names[i] = foldHabitName(candidate.Name)
	}
	if len(byPrefix) == 1 {
		return byPrefix[0], nil
	}

	matches := fuzzy.Find(foldHabitName(ref), names)
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("habit %q: %w", ref, repository.ErrNotFound)
	case 1:
		return all[matches[0].Index], nil
	default:
		candidates := make([]string, 0, len(matches))
		for _, m := range matches {
			candidates = append(candidates, all[m.Index].Name)
		}
		return nil, fmt.Errorf("%w %q: matches %s", ErrAmbiguousHabit, ref, strings.Join(candidates, ", "))
	}
}

// intPref reads an integer preference, returning def when it is unset or
// unparseable.
func intPref(ctx context.Context, prefs repository.PreferenceRepo, ns, key string, def int) (int, error) {
	raw, err := prefs.Get(ctx, ns, key)
	if errors.Is(err, repository.ErrNotFound) {
		return def, nil
	}
	if err != nil {
		return 0, err
	}
	v, convErr := strconv.Atoi(raw)
	if convErr != nil {
		return def, nil
	}
	return v, nil
}
