package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/moodtrack/internal/cli"
	"github.com/alexanderramin/moodtrack/internal/config"
	"github.com/alexanderramin/moodtrack/internal/db"
	"github.com/alexanderramin/moodtrack/internal/repository"
	"github.com/alexanderramin/moodtrack/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	moodStore := repository.NewSQLiteMoodStore(database)
	habitRepo := repository.NewSQLiteHabitRepo(database)
	prefRepo := repository.NewSQLitePreferenceRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	clock := service.SystemClock{}
	app := &cli.App{
		Moods:       service.NewMoodService(moodStore, clock, observers...),
		Habits:      service.NewHabitService(habitRepo, prefRepo, uow, clock, observers...),
		Preferences: service.NewPreferenceService(prefRepo, uow, observers...),
		Config:      cfg,
		Clock:       clock,
	}

	// Forms and the TUI need a terminal on stdin.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
