package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/highscore"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

const (
	defaultLogFile       = "~/.arcade/flappy.log"
	defaultScreenshotDir = "~/.arcade/screenshots"
)

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          flappy.GameID,
		Level:           level,
	})
	return logger, nil
}

// openLogFile opens the log file for appending. The terminal UI owns
// stdout, so it logs here instead. Returns a no-op closer on failure.
func openLogFile() (io.Writer, func()) {
	path, err := storage.ExpandPath(flagLogFile)
	if err == nil {
		err = os.MkdirAll(filepath.Dir(path), 0o755)
	}
	if err != nil {
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}

// loadConfig loads the game config and applies --difficulty.
func loadConfig(logger *log.Logger) (config.FlappyConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.FlappyConfig{}, err
	}

	cfg, source, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyFlappyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("difficulty %s: %w", preset, err)
	}
	logger.Debug("config loaded", "source", source, "difficulty", preset)
	return cfg, nil
}

// openTracker loads the high score. An unavailable database only disables
// persistence; the returned closer is always safe to call.
func openTracker(logger *log.Logger) (*highscore.Tracker, func()) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("high scores will not be saved", "db", flagDBPath, "err", err)
		return highscore.Load(nil, flappy.GameID, logger), func() {}
	}
	return highscore.Load(store, flappy.GameID, logger), func() { store.Close() }
}

// screenshotDir expands the default screenshot directory, falling back
// to the working directory.
func screenshotDir() string {
	dir, err := storage.ExpandPath(defaultScreenshotDir)
	if err != nil {
		return "."
	}
	return dir
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
