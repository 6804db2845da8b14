package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/alexanderramin/moodtrack/internal/db"
	"github.com/alexanderramin/moodtrack/internal/domain"
	"github.com/alexanderramin/moodtrack/internal/repository"
	"github.com/alexanderramin/moodtrack/internal/testutil"
)

type testEnv struct {
	db     *sql.DB
	moods  *repository.SQLiteMoodStore
	habits *repository.SQLiteHabitRepo
	prefs  *repository.SQLitePreferenceRepo
	uow    db.UnitOfWork
	clock  *testutil.TestClock
	log    *bytes.Buffer
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &testEnv{
		db:     database,
		moods:  repository.NewSQLiteMoodStore(database),
		habits: repository.NewSQLiteHabitRepo(database),
		prefs:  repository.NewSQLitePreferenceRepo(database),
		uow:    testutil.NewTestUoW(database),
		clock:  testutil.NewTestClockAt(testutil.RefMonday),
		log:    &bytes.Buffer{},
	}
}

func (e *testEnv) moodService() MoodService {
	return NewMoodService(e.moods, e.clock, NewLogUseCaseObserver(e.log))
}

func (e *testEnv) habitService() HabitService {
	return NewHabitService(e.habits, e.prefs, e.uow, e.clock, NewLogUseCaseObserver(e.log))
}

func (e *testEnv) preferenceService() PreferenceService {
	return NewPreferenceService(e.prefs, e.uow, NewLogUseCaseObserver(e.log))
}

// brokenMoodStore fails every read.
type brokenMoodStore struct{}

var errStoreDown = errors.New("store unavailable")

func (brokenMoodStore) Append(context.Context, domain.MoodEntry) error { return errStoreDown }
func (brokenMoodStore) Remove(context.Context, domain.MoodEntry) error { return errStoreDown }
func (brokenMoodStore) ListEncoded(context.Context) ([]string, error)  { return nil, errStoreDown }
func (brokenMoodStore) Clear(context.Context) error                    { return errStoreDown }
