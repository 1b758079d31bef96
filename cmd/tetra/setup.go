package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetra/internal/config"
	"github.com/vovakirdan/tui-tetra/internal/core"
	"github.com/vovakirdan/tui-tetra/internal/games/tetris"
	"github.com/vovakirdan/tui-tetra/internal/platform/tui"
	"github.com/vovakirdan/tui-tetra/internal/storage"
)

// loadConfig loads the game configuration and applies a difficulty preset.
func loadConfig(path string, preset config.DifficultyPreset) (config.TetrisConfig, error) {
	cfg, err := config.LoadTetris(path)
	if err != nil {
		return config.TetrisConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// gameFactory builds games from the config file at path. The file is read
// for every game so edits apply to the next one.
func gameFactory(path string) tui.GameFactory {
	return func(preset config.DifficultyPreset) (tui.Game, error) {
		cfg, err := loadConfig(path, preset)
		if err != nil {
			return nil, err
		}
		settings, err := tetris.SettingsFromConfig(cfg)
		if err != nil {
			return nil, err
		}
		return tetris.New(settings), nil
	}
}

// runtimeConfig reads the terminal size, falling back to 80x30.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// newLogger writes to the --log file when set and discards otherwise, since
// the terminal belongs to the game.
func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "tetra",
	})
	return logger, func() { f.Close() }, nil
}

// openStore opens the scores database. Failure is not fatal: the game runs
// without recording scores.
func openStore(path string, logger *log.Logger) *storage.Store {
	store, err := storage.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", path, "error", err)
		return nil
	}
	return store
}

// startLocalSession records a local session; the returned func closes it.
func startLocalSession(store *storage.Store, logger *log.Logger) (string, func()) {
	if store == nil {
		return "", func() {}
	}
	id, err := store.StartSession(localUser(), "", "local")
	if err != nil {
		logger.Warn("could not record session", "error", err)
		return "", func() {}
	}
	return id, func() {
		if err := store.EndSession(id); err != nil {
			logger.Warn("could not close session", "session", id, "error", err)
		}
	}
}

func localUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "local"
}

// parseDifficulty validates the --difficulty flag.
func parseDifficulty() (config.DifficultyPreset, error) {
	return config.ParsePreset(flagDifficulty)
}
