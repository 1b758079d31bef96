package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetra/internal/config"
	"github.com/vovakirdan/tui-tetra/internal/core"
	"github.com/vovakirdan/tui-tetra/internal/storage"
)

func menuKey(t *testing.T, m MenuModel, msg tea.KeyMsg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(MenuModel)
	require.True(t, ok)
	return out
}

func TestMenuDifficultyCycles(t *testing.T) {
	m := NewMenuModel(nil, testConfig(), config.DifficultyHard)
	assert.Equal(t, config.DifficultyHard, m.Difficulty())

	// Left/right only act on the difficulty entry.
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, config.DifficultyHard, m.Difficulty())

	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, config.DifficultyFixed, m.Difficulty())
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, config.DifficultyPreset(""), m.Difficulty(), "wraps to the configured settings")
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, config.DifficultyFixed, m.Difficulty())
	assert.Contains(t, m.View(), "Difficulty: < fixed >")
}

func TestMenuPlay(t *testing.T) {
	m := NewMenuModel(nil, testConfig(), "")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd)
	assert.True(t, next.(MenuModel).WantsPlay())
	assert.False(t, next.(MenuModel).IsQuitting())
}

func TestMenuScoresAndQuit(t *testing.T) {
	m := NewMenuModel(nil, testConfig(), "")
	assert.True(t, menuKey(t, m, tea.KeyMsg{Type: tea.KeyTab}).WantsScoreboard())

	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.True(t, menuKey(t, m, tea.KeyMsg{Type: tea.KeyEnter}).WantsScoreboard())

	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyDown}) // clamps at the last entry
	assert.True(t, menuKey(t, m, tea.KeyMsg{Type: tea.KeyEnter}).IsQuitting())
}

func TestMenuShowsBestScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	_, err = store.SaveRun("", "easy", core.RunSummary{Score: 1234})
	require.NoError(t, err)

	m := NewMenuModel(store, testConfig(), "")
	assert.Contains(t, m.View(), "Best score: 1234")
}

func TestDifficultyName(t *testing.T) {
	assert.Equal(t, CustomDifficulty, DifficultyName(""))
	assert.Equal(t, "hard", DifficultyName(config.DifficultyHard))
}

func TestCenterText(t *testing.T) {
	assert.Equal(t, "   ab", centerText("ab", 8))
	assert.Equal(t, "abcdef", centerText("abcdef", 4))
}
