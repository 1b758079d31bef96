package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetra/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive menu",
	Long: `Start the interactive menu. Pick a difficulty, play, and browse
high scores without leaving the program.

Controls:
  Up/Down or W/S or J/K  - Navigate
  Left/Right             - Change difficulty
  Enter                  - Select
  Tab                    - High scores
  Q/Ctrl+C               - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	preset, err := parseDifficulty()
	if err != nil {
		return err
	}

	// Fail early on a broken config instead of on the first Play.
	if _, err := gameFactory(flagConfig)(preset); err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	logger, closeLog, err := newLogger(flagLogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(flagDBPath, logger)
	if store != nil {
		defer store.Close()
	}
	sessionID, endSession := startLocalSession(store, logger)
	defer endSession()

	err = tui.RunSession(tui.SessionOptions{
		Store:      store,
		SessionID:  sessionID,
		Difficulty: preset,
		NewGame:    gameFactory(flagConfig),
		Logger:     logger,
	}, runtimeConfig())
	if err != nil {
		return fmt.Errorf("error running menu: %w", err)
	}
	return nil
}
