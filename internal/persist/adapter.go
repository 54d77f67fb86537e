package persist

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/verte-zerg/aetheris/internal/logging"
	"github.com/verte-zerg/aetheris/internal/model"
	"github.com/verte-zerg/aetheris/internal/stats"
)

const (
	sessionScope = "_session"
	sessionKey   = "current"
	statsKey     = "stats"
	opTimeout    = 2 * time.Second
)

// Adapter reads and writes the session descriptor and the active user's stats.
type Adapter struct {
	mu       sync.Mutex
	primary  KV
	fallback *MemoryKV
	degraded bool
	scope    string
	logger   *zap.Logger
}

// New returns an Adapter over kv. A nil kv starts in memory-only mode.
func New(kv KV, logger *zap.Logger) *Adapter {
	a := &Adapter{
		primary:  kv,
		fallback: NewMemoryKV(),
		logger:   logging.OrNop(logger).Named("persist"),
	}
	if kv == nil {
		a.degraded = true
	}
	return a
}

// Degraded reports whether the adapter has fallen back to memory.
func (a *Adapter) Degraded() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.degraded
}

// Scope selects the identity whose stats Load, Save and Clear operate on.
func (a *Adapter) Scope(userID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.scope = userID
}

// ActiveScope returns the identity selected by Scope.
func (a *Adapter) ActiveScope() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.scope
}

// Load returns the stored stats of the active identity or defaults.
func (a *Adapter) Load() model.UserStats {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.scope == "" {
		return stats.DefaultStats()
	}
	raw, ok := a.get(a.scope, statsKey)
	if !ok {
		return stats.DefaultStats()
	}
	var s model.UserStats
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		a.logger.Warn("discarding undecodable stats", zap.String("scope", a.scope), zap.Error(err))
		return stats.DefaultStats()
	}
	return stats.Normalize(s)
}

// Save overwrites the stored stats of the active identity.
func (a *Adapter) Save(s model.UserStats) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.scope == "" {
		a.logger.Debug("save without active identity ignored")
		return
	}
	data, err := json.Marshal(s)
	if err != nil {
		a.logger.Error("failed to encode stats", zap.Error(err))
		return
	}
	a.set(a.scope, statsKey, string(data))
}

// Clear removes everything stored for the active identity.
func (a *Adapter) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.scope == "" {
		return
	}
	a.removeScope(a.scope)
}

// Drop removes everything stored for userID, regardless of the active identity.
func (a *Adapter) Drop(userID string) {
	if userID == "" {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.removeScope(userID)
}

// LoadSession returns the persisted session descriptor.
func (a *Adapter) LoadSession() (model.SessionDescriptor, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	raw, ok := a.get(sessionScope, sessionKey)
	if !ok {
		return model.SessionDescriptor{}, false
	}
	var desc model.SessionDescriptor
	if err := json.Unmarshal([]byte(raw), &desc); err != nil || desc.User.ID == "" {
		a.logger.Warn("discarding undecodable session", zap.Error(err))
		return model.SessionDescriptor{}, false
	}
	return desc, true
}

// SaveSession persists desc as the current session.
func (a *Adapter) SaveSession(desc model.SessionDescriptor) {
	data, err := json.Marshal(desc)
	if err != nil {
		a.logger.Error("failed to encode session", zap.Error(err))
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.set(sessionScope, sessionKey, string(data))
}

// ClearSession removes the current session descriptor.
func (a *Adapter) ClearSession() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.remove(sessionScope, sessionKey)
}

// Reset removes the session descriptor and the active identity's data.
func (a *Adapter) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.remove(sessionScope, sessionKey)
	if a.scope != "" {
		a.removeScope(a.scope)
	}
}

func (a *Adapter) kv() KV {
	if a.degraded {
		return a.fallback
	}
	return a.primary
}

func (a *Adapter) degrade(op string, err error) {
	if a.degraded {
		return
	}
	a.degraded = true
	a.logger.Error("local storage failed; continuing in memory", zap.String("op", op), zap.Error(err))
}

func (a *Adapter) get(scope, key string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	v, ok, err := a.kv().Get(ctx, scope, key)
	if err != nil {
		a.degrade("get", err)
		v, ok, _ = a.fallback.Get(ctx, scope, key)
	}
	return v, ok
}

func (a *Adapter) set(scope, key, value string) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	if err := a.kv().Set(ctx, scope, key, value); err != nil {
		a.degrade("set", err)
		_ = a.fallback.Set(ctx, scope, key, value)
	}
}

func (a *Adapter) remove(scope, key string) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	if err := a.kv().Remove(ctx, scope, key); err != nil {
		a.degrade("remove", err)
	}
	_ = a.fallback.Remove(ctx, scope, key)
}

func (a *Adapter) removeScope(scope string) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	if err := a.kv().RemoveScope(ctx, scope); err != nil {
		a.degrade("remove_scope", err)
	}
	_ = a.fallback.RemoveScope(ctx, scope)
}
