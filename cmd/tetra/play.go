package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetra/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing right away.

Keyboard:
  Left/A, Right/D  - Move
  Up/W             - Rotate
  Down/S           - Soft drop
  Space            - Hard drop
  R/C              - Hold
  P                - Pause (Esc/B while paused leaves the game)
  G T L V N        - Toggle grid, hold, hold limit, landing preview, queue
  Ctrl+S           - Save a screenshot to ~/.tetra/screenshots
  Q/Ctrl+C         - Quit

Mouse:
  Drag sideways on the board to slide, drag down to lower the piece.
  Tap to rotate, flick down to hard drop, flick up to hold.
  Tap the top of the side panel to hold, lower down to pause.

Difficulty options:
  easy   - Start at level 0, levels up with score
  normal - Start at level 5, levels up with score
  hard   - Start at level 10, levels up with score
  fixed  - No leveling, stays at the configured start level

Examples:
  tetra play
  tetra play --difficulty hard
  tetra play --seed 42
  tetra play --config ./my-tetra.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	preset, err := parseDifficulty()
	if err != nil {
		return err
	}

	game, err := gameFactory(flagConfig)(preset)
	if err != nil {
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

	_, err = tui.Run(game, runtimeConfig(), tui.Options{
		Store:      store,
		SessionID:  sessionID,
		Difficulty: tui.DifficultyName(preset),
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
