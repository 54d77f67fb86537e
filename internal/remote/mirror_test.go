package remote

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/verte-zerg/aetheris/internal/model"
	"github.com/verte-zerg/aetheris/internal/stats"
)

func newMirror(t *testing.T) (*Mirror, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	m, err := Open(context.Background(), "redis://"+mr.Addr()+"/0", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })
	return m, mr
}

func TestStatsRoundTrip(t *testing.T) {
	m, mr := newMirror(t)
	ctx := context.Background()

	s := stats.Merge(stats.DefaultStats(), model.StatsDelta{QuizScore: model.Int(100)}, time.Monday)
	require.NoError(t, m.PushStats(ctx, "u1", s))
	assert.True(t, mr.Exists("aetheris:user:u1:stats"))

	got, err := m.FetchStats(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestFetchMissing(t *testing.T) {
	m, _ := newMirror(t)
	_, err := m.FetchStats(context.Background(), "nobody")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = m.Hydrate(context.Background(), "nobody")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestFetchUndecodable(t *testing.T) {
	m, mr := newMirror(t)
	require.NoError(t, mr.Set("aetheris:user:u1:stats", "{not json"))
	_, err := m.FetchStats(context.Background(), "u1")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestProfileRoundTripSkipsGuests(t *testing.T) {
	m, mr := newMirror(t)
	ctx := context.Background()

	p := model.UserProfile{ID: "u1", Name: "Ada", Email: "ada@example.com", JoinedAt: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, m.PushProfile(ctx, p))
	raw, err := mr.Get("aetheris:user:u1:profile")
	require.NoError(t, err)
	var got model.UserProfile
	require.NoError(t, json.Unmarshal([]byte(raw), &got))
	assert.Equal(t, p, got)

	require.NoError(t, m.PushProfile(ctx, model.UserProfile{ID: "g1", IsGuest: true}))
	assert.False(t, mr.Exists("aetheris:user:g1:profile"))
}

func TestHydrateReturnsStats(t *testing.T) {
	m, _ := newMirror(t)
	ctx := context.Background()
	s := stats.DefaultStats()
	s.NodesExplored = 3
	s = stats.CalculateLevel(s)
	require.NoError(t, m.PushStats(ctx, "u1", s))

	got, err := m.Hydrate(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, got.NodesExplored)
}

func TestHydrateGivesUpWhenServerGone(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1, DialTimeout: 100 * time.Millisecond})
	m := New(client, nil)
	m.maxRetries = 1
	t.Cleanup(func() { _ = m.Close() })
	mr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := m.Hydrate(ctx, "u1")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestOpenRejectsBadURL(t *testing.T) {
	_, err := Open(context.Background(), "not a url", nil)
	assert.Error(t, err)
}

func TestOpenFailsWhenServerUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	core, logs := observer.New(zapcore.WarnLevel)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	m, err := Open(ctx, "redis://"+addr, zap.New(core))
	require.Error(t, err)
	assert.Nil(t, m)
	assert.Contains(t, err.Error(), "failed to reach redis")
	assert.Zero(t, logs.FilterMessage("failed to close redis client").Len())
}
