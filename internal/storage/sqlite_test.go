package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetra/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func run(score int) core.RunSummary {
	return core.RunSummary{Score: score, Level: score / 100, Lines: score / 50, Pieces: score / 10, Duration: 90 * time.Second}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file and parent directories should be created")
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	_, err = store.SaveRun("", "normal", run(300))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	high, err := store.HighScore()
	require.NoError(t, err)
	assert.Equal(t, 300, high)
}

func TestSaveRunAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []struct {
		difficulty string
		score      int
	}{{"easy", 100}, {"easy", 50}, {"hard", 200}, {"easy", 400}} {
		_, err := store.SaveRun("", r.difficulty, run(r.score))
		require.NoError(t, err)
	}

	all, err := store.TopRuns("", 10)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, []int{400, 200, 100, 50}, scores(all))

	easy, err := store.TopRuns("easy", 2)
	require.NoError(t, err)
	assert.Equal(t, []int{400, 100}, scores(easy))

	top := all[0]
	assert.Equal(t, "easy", top.Difficulty)
	assert.Equal(t, 4, top.Level)
	assert.Equal(t, 8, top.Lines)
	assert.Equal(t, 40, top.Pieces)
	assert.Equal(t, 90*time.Second, top.Duration)
	assert.Empty(t, top.SessionID)
	assert.False(t, top.CreatedAt.IsZero())
}

func TestTopRunsDefaultLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 15; i++ {
		_, err := store.SaveRun("", "", run(i*10))
		require.NoError(t, err)
	}

	runs, err := store.TopRuns("", 0)
	require.NoError(t, err)
	assert.Len(t, runs, 10)
}

func TestHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)
	high, err := store.HighScore()
	require.NoError(t, err)
	assert.Zero(t, high)
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	st, err := store.Stats()
	require.NoError(t, err)
	assert.Equal(t, Stats{}, st)

	_, err = store.SaveRun("", "", run(500))
	require.NoError(t, err)
	_, err = store.SaveRun("", "", run(1000))
	require.NoError(t, err)

	st, err = store.Stats()
	require.NoError(t, err)
	assert.Equal(t, 2, st.Runs)
	assert.Equal(t, 1000, st.BestScore)
	assert.Equal(t, 10, st.BestLevel)
	assert.Equal(t, 30, st.Lines)
	assert.Equal(t, 150, st.Pieces)
	assert.Equal(t, 3*time.Minute, st.PlayTime)
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)
	_, err := store.SaveRun("", "", run(100))
	require.NoError(t, err)

	require.NoError(t, store.ClearRuns())
	runs, err := store.TopRuns("", 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestSessions(t *testing.T) {
	store := openTestStore(t)
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return start }

	id, err := store.StartSession("alice", "10.0.0.1:5555", "ssh")
	require.NoError(t, err)
	assert.Len(t, id, 36, "session IDs are UUIDs")

	_, err = store.SaveRun(id, "normal", run(700))
	require.NoError(t, err)

	sess, err := store.SessionByID(id)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "alice", sess.User)
	assert.Equal(t, "ssh", sess.Transport)
	assert.True(t, sess.StartedAt.Equal(start))
	assert.True(t, sess.EndedAt.IsZero(), "open session has no end time")

	store.now = func() time.Time { return start.Add(time.Hour) }
	require.NoError(t, store.EndSession(id))
	assert.Error(t, store.EndSession(id), "a session ends once")

	sess, err = store.SessionByID(id)
	require.NoError(t, err)
	assert.True(t, sess.EndedAt.Equal(start.Add(time.Hour)))

	runs, err := store.TopRuns("", 1)
	require.NoError(t, err)
	assert.Equal(t, id, runs[0].SessionID)
}

func TestSessionByIDMissing(t *testing.T) {
	store := openTestStore(t)
	sess, err := store.SessionByID("nope")
	require.NoError(t, err)
	assert.Nil(t, sess)
	assert.Error(t, store.EndSession("nope"))
}

func scores(runs []RunRecord) []int {
	out := make([]int, len(runs))
	for i, r := range runs {
		out[i] = r.Score
	}
	return out
}
