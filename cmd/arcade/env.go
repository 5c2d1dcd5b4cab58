package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-arcade/internal/achievements"
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/platform/tui"
	"github.com/vovakirdan/neon-arcade/internal/progress"
	"github.com/vovakirdan/neon-arcade/internal/session"
	"github.com/vovakirdan/neon-arcade/internal/storage"
)

// env is what every command works against: settings, the logger and the
// progression store.
type env struct {
	settings config.Settings
	logger   *log.Logger
	db       *storage.Store // nil when running on the in-memory fallback
	store    *progress.Store
}

// openEnv loads settings and opens the progression store. A database that
// cannot be opened degrades to an in-memory store for this run.
func openEnv(cmd *cobra.Command) *env {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "arcade",
	})
	if lvl, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.Warn("unknown log level, using warn", "level", flagLogLevel)
		logger.SetLevel(log.WarnLevel)
	}

	settings, err := config.LoadSettings(flagSettings)
	if err != nil {
		logger.Warn("ignoring settings", "path", flagSettings, "error", err)
	}

	dbPath := flagDBPath
	if !cmd.Flags().Changed("db") {
		dbPath = settings.DBPathOr(dbPath)
	}

	e := &env{settings: settings, logger: logger}

	var backend progress.Backend
	db, err := storage.Open(dbPath)
	if err != nil {
		logger.Warn("could not open database, progress will not be saved", "path", dbPath, "error", err)
		backend = storage.NewMemory()
	} else {
		e.db = db
		backend = db
	}
	e.store = progress.New(backend, progress.WithLogger(logger))

	// The settings name only seeds a profile that never picked one.
	if settings.PlayerName != nil && e.store.PlayerName() == progress.DefaultPlayerName {
		if !e.store.SetPlayerName(*settings.PlayerName) {
			logger.Warn("ignoring player name from settings", "name", *settings.PlayerName)
		}
	}

	return e
}

// Close releases the database.
func (e *env) Close() {
	if e.db != nil {
		e.db.Close()
	}
}

// fail closes the env, prints the error and exits.
func (e *env) fail(format string, args ...any) {
	e.Close()
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// history returns the score history, or nil on the in-memory fallback.
func (e *env) history() tui.StatsSource {
	if e.db == nil {
		return nil
	}
	return e.db
}

// sessionOptions configures every game recorder with the reward tables and
// achievement rules from the config files.
func (e *env) sessionOptions() []session.Option {
	rewards, err := config.LoadRewards("")
	if err != nil {
		e.logger.Warn("using default reward tables", "error", err)
		rewards = config.DefaultRewards()
	}
	engine := achievements.New(e.store, achievements.WithAllGamesTarget(e.allGamesTarget()))

	return []session.Option{
		session.WithLogger(e.logger),
		session.WithRewards(rewards),
		session.WithEngine(engine),
	}
}

// allGamesTarget is how many distinct games unlock Game Completionist.
func (e *env) allGamesTarget() int {
	return e.settings.AllGamesTargetOr(achievements.DefaultAllGamesTarget)
}

// runtime builds the runtime config from flags, settings and the terminal.
func (e *env) runtime(cmd *cobra.Command) core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	fps := flagFPS
	if !cmd.Flags().Changed("fps") {
		fps = e.settings.TickRateOr(fps)
	}

	return core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   fps,
		Seed:       flagSeed,
		Difficulty: string(e.settings.Preset(config.DifficultyNormal)),
	}
}
