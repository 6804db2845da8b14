package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/moodtrack/internal/analytics"
	"github.com/alexanderramin/moodtrack/internal/domain"
	"github.com/alexanderramin/moodtrack/internal/repository"
)

type moodService struct {
	moods    repository.MoodStore
	clock    Clock
	observer UseCaseObserver
}

func NewMoodService(moods repository.MoodStore, clock Clock, observers ...UseCaseObserver) MoodService {
	return &moodService{
		moods:    moods,
		clock:    clockOrSystem(clock),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *moodService) Log(ctx context.Context, mood string) (entry domain.MoodEntry, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "log-mood", startedAt, fields, &err) }()

	name := domain.NormalizeMoodName(mood)
	entry = domain.NewMoodEntry(name, s.clock.Now())
	fields["mood"] = entry.Mood
	fields["known"] = domain.IsKnownMood(name)

	if err = s.moods.Append(ctx, entry); err != nil {
		return domain.MoodEntry{}, fmt.Errorf("logging mood: %w", err)
	}
	return entry, nil
}

func (s *moodService) List(ctx context.Context) ([]domain.MoodEntry, error) {
	raws, err := s.moods.ListEncoded(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing moods: %w", err)
	}
	entries, _ := domain.DecodeAll(raws)

	loc := s.clock.Now().Location()
	sort.SliceStable(entries, func(i, j int) bool {
		ti, okI := entries[i].LoggedAt(loc)
		tj, okJ := entries[j].LoggedAt(loc)
		if okI != okJ {
			return okI
		}
		return ti.After(tj)
	})
	return entries, nil
}

func (s *moodService) Delete(ctx context.Context, e domain.MoodEntry) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"mood": e.Mood, "date": e.Date}
	defer func() { observe(ctx, s.observer, "delete-mood", startedAt, fields, &err) }()

	return s.moods.Remove(ctx, e)
}

func (s *moodService) WeekSummary(ctx context.Context, offset int) (summary *WeekSummary, err error) {
	startedAt := time.Now()
	fields := map[string]any{"offset": offset}
	defer func() { observe(ctx, s.observer, "week-summary", startedAt, fields, &err) }()

	window := analytics.ComputeWindow(offset, s.clock.Now())
	summary = &WeekSummary{Window: window}
	fields["week_start"] = window.Start().Format(domain.EntryDateLayout)

	raws, readErr := s.moods.ListEncoded(ctx)
	if readErr != nil {
		summary.Aggregates = analytics.EmptyAggregates()
		summary.Insights = analytics.UnavailableInsights()
		summary.Unavailable = true
		fields["degraded"] = "entries_unavailable"
		fields["read_error"] = readErr.Error()
		return summary, nil
	}

	entries, skipped := domain.DecodeAll(raws)
	summary.Skipped = skipped
	summary.Aggregates = analytics.AggregateWindow(window, entries)
	fields["records"] = len(raws)
	fields["skipped"] = skipped
	fields["days_with_data"] = summary.Aggregates.DaysWithData()

	lines, failed := analytics.SafeInsights(summary.Aggregates.Days)
	if failed {
		fields["degraded"] = "insights_failed"
	}
	summary.Insights = lines
	return summary, nil
}
