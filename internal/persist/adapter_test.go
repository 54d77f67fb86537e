package persist

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/verte-zerg/aetheris/internal/model"
	"github.com/verte-zerg/aetheris/internal/stats"
	"github.com/verte-zerg/aetheris/internal/store"
)

type failingKV struct{}

var errDiskGone = errors.New("disk gone")

func (failingKV) Get(context.Context, string, string) (string, bool, error) {
	return "", false, errDiskGone
}
func (failingKV) Set(context.Context, string, string, string) error { return errDiskGone }
func (failingKV) Remove(context.Context, string, string) error      { return errDiskGone }
func (failingKV) RemoveScope(context.Context, string) error         { return errDiskGone }

func openStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "aetheris.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func sampleStats() model.UserStats {
	return stats.Merge(stats.DefaultStats(), model.StatsDelta{
		QuizScore:     model.Int(120),
		NodesExplored: model.Int(3),
	}, time.Monday)
}

func TestLoadWithoutScopeReturnsDefaults(t *testing.T) {
	a := New(NewMemoryKV(), nil)
	assert.Equal(t, stats.DefaultStats(), a.Load())
}

func TestSaveLoadRoundTripSQLite(t *testing.T) {
	st := openStore(t)
	a := New(st, zap.NewNop())
	a.Scope("user-1")
	want := sampleStats()
	a.Save(want)

	reopened := New(st, zap.NewNop())
	reopened.Scope("user-1")
	assert.Equal(t, want, reopened.Load())

	reopened.Scope("user-2")
	assert.Equal(t, stats.DefaultStats(), reopened.Load())
	assert.False(t, reopened.Degraded())
}

func TestSaveIsLastWriteWins(t *testing.T) {
	a := New(NewMemoryKV(), nil)
	a.Scope("u")
	first := sampleStats()
	second := stats.Merge(first, model.StatsDelta{SessionsCompleted: model.Int(9)}, time.Tuesday)
	a.Save(first)
	a.Save(second)
	assert.Equal(t, second, a.Load())
}

func TestClearRemovesActiveScopeOnly(t *testing.T) {
	kv := NewMemoryKV()
	a := New(kv, nil)
	a.Scope("a")
	a.Save(sampleStats())
	a.Scope("b")
	a.Save(sampleStats())

	a.Clear()
	assert.Equal(t, stats.DefaultStats(), a.Load())
	a.Scope("a")
	assert.Equal(t, sampleStats(), a.Load())
}

func TestStorageFailureFallsBackToMemory(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	a := New(failingKV{}, zap.New(core))
	a.Scope("u")

	assert.Equal(t, stats.DefaultStats(), a.Load())
	assert.True(t, a.Degraded())
	assert.Equal(t, 1, logs.FilterMessage("local storage failed; continuing in memory").Len())

	want := sampleStats()
	a.Save(want)
	assert.Equal(t, want, a.Load(), "in-memory mode keeps working after degradation")
}

func TestNilKVStartsDegraded(t *testing.T) {
	a := New(nil, nil)
	assert.True(t, a.Degraded())
	a.Scope("u")
	a.Save(sampleStats())
	assert.Equal(t, sampleStats(), a.Load())
}

func TestUndecodableStatsAreDiscarded(t *testing.T) {
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(context.Background(), "u", statsKey, "{not json"))
	a := New(kv, nil)
	a.Scope("u")
	assert.Equal(t, stats.DefaultStats(), a.Load())
}

func TestLoadRepairsStoredRecord(t *testing.T) {
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(context.Background(), "u", statsKey, `{"quizScore":-5,"nodesExplored":4,"level":77}`))
	a := New(kv, nil)
	a.Scope("u")
	got := a.Load()
	assert.Zero(t, got.QuizScore)
	assert.Equal(t, 4, got.NodesExplored)
	assert.Equal(t, stats.LevelForScore(40), got.Level)
	assert.Len(t, got.WeeklyActivity, 7)
}

func TestSessionRoundTrip(t *testing.T) {
	a := New(openStore(t), nil)
	_, ok := a.LoadSession()
	assert.False(t, ok)

	desc := model.SessionDescriptor{
		User:      model.UserProfile{ID: "u1", Name: "Ada", Email: "ada@example.com", JoinedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		StartedAt: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC),
	}
	a.SaveSession(desc)
	got, ok := a.LoadSession()
	require.True(t, ok)
	assert.Equal(t, desc.User.ID, got.User.ID)
	assert.True(t, desc.StartedAt.Equal(got.StartedAt))

	a.ClearSession()
	_, ok = a.LoadSession()
	assert.False(t, ok)
}

func TestDropAndReset(t *testing.T) {
	kv := NewMemoryKV()
	a := New(kv, nil)
	a.SaveSession(model.SessionDescriptor{User: model.UserProfile{ID: "g"}})
	a.Scope("g")
	a.Save(sampleStats())

	a.Drop("g")
	assert.Equal(t, []string{`_session/current={"user":{"id":"g","name":"","email":"","joinedAt":"0001-01-01T00:00:00Z"},"startedAt":"0001-01-01T00:00:00Z"}`}, kv.Snapshot())

	a.Save(sampleStats())
	a.Reset()
	assert.Empty(t, kv.Snapshot())
}
