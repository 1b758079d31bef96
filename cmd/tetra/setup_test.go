package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetra/internal/config"
	"github.com/vovakirdan/tui-tetra/internal/core"
	"github.com/vovakirdan/tui-tetra/internal/games/tetris"
	"github.com/vovakirdan/tui-tetra/internal/storage"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func startLevel(t *testing.T, path string, preset config.DifficultyPreset) int {
	t.Helper()
	g, err := gameFactory(path)(preset)
	require.NoError(t, err)
	tg, ok := g.(*tetris.Game)
	require.True(t, ok)
	tg.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: 1})
	return tg.Engine().Level()
}

func TestGameFactoryAppliesPreset(t *testing.T) {
	path := writeConfig(t, "engine:\n  start_level: 3\n")
	assert.Equal(t, 3, startLevel(t, path, ""))
	assert.Equal(t, 0, startLevel(t, path, config.DifficultyEasy))
	assert.Equal(t, 5, startLevel(t, path, config.DifficultyNormal))
	assert.Equal(t, 10, startLevel(t, path, config.DifficultyHard))
	assert.Equal(t, 3, startLevel(t, path, config.DifficultyFixed))
}

func TestGameFactoryCapsPresetAtMaxLevel(t *testing.T) {
	path := writeConfig(t, "engine:\n  max_level: 8\n")
	assert.Equal(t, 8, startLevel(t, path, config.DifficultyHard))
}

func TestGameFactoryRejectsBadConfig(t *testing.T) {
	path := writeConfig(t, "colors:\n  t: \"#000000\"\n")
	_, err := gameFactory(path)("")
	assert.Error(t, err)

	_, err = gameFactory(filepath.Join(t.TempDir(), "missing.yaml"))("")
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	logger, closeLog, err := newLogger("")
	require.NoError(t, err)
	logger.Info("discarded")
	closeLog()

	path := filepath.Join(t.TempDir(), "logs", "tetra.log")
	logger, closeLog, err = newLogger(path)
	require.NoError(t, err)
	logger.Debug("run finished", "score", 40)
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "run finished")
	assert.Contains(t, string(data), "score=40")
}

func testCommand() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	return cmd, &buf
}

func TestPrintScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	cmd, buf := testCommand()
	require.NoError(t, printScores(cmd, store, "", 10))
	assert.Contains(t, buf.String(), "No runs recorded yet.")

	_, err = store.SaveRun("", "hard", core.RunSummary{Score: 1200, Level: 11, Lines: 4, Pieces: 30, Duration: 2 * time.Minute})
	require.NoError(t, err)
	_, err = store.SaveRun("", "easy", core.RunSummary{Score: 40, Pieces: 5})
	require.NoError(t, err)

	cmd, buf = testCommand()
	require.NoError(t, printScores(cmd, store, "hard", 10))
	out := buf.String()
	assert.Contains(t, out, "High Scores - hard")
	assert.Contains(t, out, "1200")
	assert.NotContains(t, out, "easy")
	assert.Contains(t, out, "Best: 1200  Runs: 2")
}

func TestRunConfigPrintsEffectiveYAML(t *testing.T) {
	flagConfig = writeConfig(t, "engine:\n  max_level: 12\n")
	flagDifficulty = "hard"
	flagConfigDefaults = false
	t.Cleanup(func() { flagConfig, flagDifficulty = "", "" })

	cmd, buf := testCommand()
	require.NoError(t, runConfig(cmd, nil))
	assert.Contains(t, buf.String(), "max_level: 12")
	assert.Contains(t, buf.String(), "start_level: 10")
}

func TestRunConfigDefaults(t *testing.T) {
	flagConfigDefaults = true
	t.Cleanup(func() { flagConfigDefaults = false })

	cmd, buf := testCommand()
	require.NoError(t, runConfig(cmd, nil))
	assert.Equal(t, string(config.DefaultYAML()), buf.String())
}

func TestParseDifficultyRejectsUnknown(t *testing.T) {
	flagDifficulty = "insane"
	t.Cleanup(func() { flagDifficulty = "" })
	_, err := parseDifficulty()
	assert.Error(t, err)
}
