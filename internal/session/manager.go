// Package session tracks who is using the shell: an authenticated user, a guest,
// or nobody. Identity survives restarts through the persistence adapter.
package session

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/verte-zerg/aetheris/internal/auth"
	"github.com/verte-zerg/aetheris/internal/logging"
	"github.com/verte-zerg/aetheris/internal/model"
	"github.com/verte-zerg/aetheris/internal/persist"
)

var (
	// ErrLoginInProgress is returned when a login is attempted while another is pending.
	ErrLoginInProgress = errors.New("login already in progress")
	// ErrSessionActive is returned when a guest session is requested while someone
	// is signed in or a login is pending. Log out first.
	ErrSessionActive = errors.New("a session is already active")
)

// State is the session lifecycle state.
type State int

// Session states.
const (
	Unauthenticated State = iota
	Pending
	Authenticated
	Guest
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Authenticated:
		return "authenticated"
	case Guest:
		return "guest"
	default:
		return "unauthenticated"
	}
}

// StatsSource supplies remotely mirrored stats for a user.
type StatsSource interface {
	Hydrate(ctx context.Context, userID string) (model.UserStats, error)
}

// Manager owns the current identity.
type Manager struct {
	auth    auth.Authenticator
	store   *persist.Adapter
	logger  *zap.Logger
	now     func() time.Time
	newID   func() string
	pending atomic.Bool

	mu      sync.Mutex
	current *model.SessionDescriptor
}

// NewManager restores any persisted session from store.
func NewManager(authn auth.Authenticator, store *persist.Adapter, logger *zap.Logger) *Manager {
	m := &Manager{
		auth:   authn,
		store:  store,
		logger: logging.OrNop(logger).Named("session"),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	if desc, ok := store.LoadSession(); ok {
		m.current = &desc
		store.Scope(desc.User.ID)
	}
	return m
}

// CurrentUser returns the active identity. It never touches the network.
func (m *Manager) CurrentUser() (model.UserProfile, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return model.UserProfile{}, false
	}
	return m.current.User, true
}

// State reports the lifecycle state.
func (m *Manager) State() State {
	if m.pending.Load() {
		return Pending
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	switch {
	case m.current == nil:
		return Unauthenticated
	case m.current.User.IsGuest:
		return Guest
	default:
		return Authenticated
	}
}

// Login authenticates creds and makes the result the active identity. On failure
// the previous identity is left untouched. A guest identity that is replaced has
// its local data dropped.
func (m *Manager) Login(ctx context.Context, creds model.Credentials) (model.UserProfile, error) {
	if m.auth == nil {
		return model.UserProfile{}, &auth.Error{Kind: auth.KindUnavailable, Op: "session", Message: "No sign-in provider is configured."}
	}
	if !m.pending.CompareAndSwap(false, true) {
		return model.UserProfile{}, ErrLoginInProgress
	}
	defer m.pending.Store(false)

	profile, err := m.auth.Authenticate(ctx, creds)
	if err != nil {
		m.logger.Info("login failed", zap.Bool("signup", creds.SignUp), zap.Error(err))
		return model.UserProfile{}, err
	}
	profile.IsGuest = false

	m.mu.Lock()
	prev := m.current
	desc := model.SessionDescriptor{User: profile, StartedAt: m.now().UTC()}
	m.current = &desc
	m.mu.Unlock()

	if prev != nil && prev.User.IsGuest {
		m.store.Drop(prev.User.ID)
	}
	m.store.SaveSession(desc)
	m.store.Scope(profile.ID)
	m.logger.Info("logged in", zap.String("user", profile.ID))
	return profile, nil
}

// StartGuestSession creates a local-only identity. No network is used. It is only
// allowed from the unauthenticated state.
func (m *Manager) StartGuestSession() (model.UserProfile, error) {
	if m.pending.Load() {
		return model.UserProfile{}, ErrSessionActive
	}
	profile := model.UserProfile{
		ID:       "guest-" + m.newID(),
		Name:     "Guest",
		JoinedAt: m.now().UTC(),
		IsGuest:  true,
	}
	desc := model.SessionDescriptor{User: profile, StartedAt: profile.JoinedAt}

	m.mu.Lock()
	if m.current != nil {
		m.mu.Unlock()
		return model.UserProfile{}, ErrSessionActive
	}
	m.current = &desc
	m.mu.Unlock()

	m.store.SaveSession(desc)
	m.store.Scope(profile.ID)
	m.logger.Info("guest session started", zap.String("user", profile.ID))
	return profile, nil
}

// Logout ends the session. Local state is cleared first; remote invalidation is
// best-effort and its errors are only logged. Guest data is removed entirely.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	prev := m.current
	m.current = nil
	m.mu.Unlock()

	m.store.ClearSession()
	m.store.Scope("")
	if prev == nil {
		return
	}
	if prev.User.IsGuest {
		m.store.Drop(prev.User.ID)
		m.logger.Info("guest session ended", zap.String("user", prev.User.ID))
		return
	}
	if m.auth != nil {
		if err := m.auth.InvalidateSession(ctx, prev.User.ID); err != nil {
			m.logger.Warn("failed to invalidate remote session", zap.String("user", prev.User.ID), zap.Error(err))
		}
	}
	m.logger.Info("logged out", zap.String("user", prev.User.ID))
}

// Hydrate replaces local stats of an authenticated user with mirrored ones when
// the source has a record. It reports whether local stats changed.
func (m *Manager) Hydrate(ctx context.Context, src StatsSource) bool {
	user, ok := m.CurrentUser()
	if !ok || user.IsGuest || src == nil {
		return false
	}
	s, err := src.Hydrate(ctx, user.ID)
	if err != nil {
		m.logger.Debug("no remote stats", zap.String("user", user.ID), zap.Error(err))
		return false
	}
	if cur, ok := m.CurrentUser(); !ok || cur.ID != user.ID {
		return false
	}
	m.store.Save(s)
	return true
}
