// Package app is the shell's application context: the current identity, its
// statistics and the UI language, plus the operations that change them.
package app

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/verte-zerg/aetheris/internal/logging"
	"github.com/verte-zerg/aetheris/internal/model"
	"github.com/verte-zerg/aetheris/internal/persist"
	"github.com/verte-zerg/aetheris/internal/session"
	"github.com/verte-zerg/aetheris/internal/stats"
	"github.com/verte-zerg/aetheris/internal/view"
)

const remoteTimeout = 3 * time.Second

// Remote mirrors stats off the machine.
type Remote interface {
	session.StatsSource
	PushStats(ctx context.Context, userID string, s model.UserStats) error
	PushProfile(ctx context.Context, p model.UserProfile) error
}

// Options wires an App.
type Options struct {
	Sessions *session.Manager
	Store    *persist.Adapter
	Engine   *stats.Engine
	Remote   Remote
	Language model.LanguageCode
	Logger   *zap.Logger
}

// App owns the shell state. All methods are safe for concurrent use.
type App struct {
	sessions *session.Manager
	store    *persist.Adapter
	engine   *stats.Engine
	remote   Remote
	logger   *zap.Logger
	pushes   sync.WaitGroup

	mu    sync.Mutex
	lang  model.LanguageCode
	stats model.UserStats
}

// New returns an App and loads the stats of any restored session.
func New(opts Options) *App {
	engine := opts.Engine
	if engine == nil {
		engine = stats.NewEngine(nil)
	}
	lang := opts.Language
	if lang == "" {
		lang = model.LangEnglish
	}
	a := &App{
		sessions: opts.Sessions,
		store:    opts.Store,
		engine:   engine,
		remote:   opts.Remote,
		logger:   logging.OrNop(opts.Logger).Named("app"),
		lang:     lang,
	}
	a.reload()
	return a
}

// User returns the active identity.
func (a *App) User() (model.UserProfile, bool) {
	return a.sessions.CurrentUser()
}

// State returns the session state.
func (a *App) State() session.State {
	return a.sessions.State()
}

// Stats returns the current statistics.
func (a *App) Stats() model.UserStats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats
}

// Language returns the UI language.
func (a *App) Language() model.LanguageCode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lang
}

// SetLanguage changes the UI language.
func (a *App) SetLanguage(lang model.LanguageCode) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.lang = lang
}

// Today returns the weekly slot merges credit now.
func (a *App) Today() string {
	return a.engine.Today()
}

// ViewContext returns the context handed to the active module.
func (a *App) ViewContext() view.Context {
	user, _ := a.User()
	a.mu.Lock()
	defer a.mu.Unlock()
	return view.Context{
		Stats:    a.stats,
		Language: a.lang,
		User:     user,
		Update:   func(d model.StatsDelta) { a.UpdateStats(d) },
	}
}

// UpdateStats folds delta into the current stats, persists the result and
// mirrors it for non-guest users.
func (a *App) UpdateStats(delta model.StatsDelta) model.UserStats {
	user, ok := a.User()
	a.mu.Lock()
	merged := a.engine.Merge(a.stats, delta)
	a.stats = merged
	a.mu.Unlock()

	if !ok {
		return merged
	}
	a.store.Save(merged)
	if !user.IsGuest {
		a.push(user.ID, merged)
	}
	return merged
}

// Login authenticates and switches to the new identity's stats.
func (a *App) Login(ctx context.Context, creds model.Credentials) (model.UserProfile, error) {
	profile, err := a.sessions.Login(ctx, creds)
	if err != nil {
		return model.UserProfile{}, err
	}
	if a.remote != nil {
		hctx, cancel := context.WithTimeout(ctx, remoteTimeout)
		a.sessions.Hydrate(hctx, a.remote)
		cancel()
		a.pushProfile(profile)
	}
	a.reload()
	return profile, nil
}

// StartGuest begins a local-only session. It fails while someone is signed in.
func (a *App) StartGuest() (model.UserProfile, error) {
	p, err := a.sessions.StartGuestSession()
	if err != nil {
		return model.UserProfile{}, err
	}
	a.reload()
	return p, nil
}

// Logout ends the session and resets in-memory stats.
func (a *App) Logout(ctx context.Context) {
	a.sessions.Logout(ctx)
	a.reload()
}

// Reset erases the active identity's stats.
func (a *App) Reset() {
	a.store.Clear()
	a.reload()
}

// Close waits for pending mirror writes.
func (a *App) Close() {
	a.pushes.Wait()
}

func (a *App) reload() {
	s := stats.DefaultStats()
	if _, ok := a.sessions.CurrentUser(); ok {
		s = a.store.Load()
	}
	a.mu.Lock()
	a.stats = s
	a.mu.Unlock()
}

func (a *App) push(userID string, s model.UserStats) {
	if a.remote == nil {
		return
	}
	a.pushes.Add(1)
	go func() {
		defer a.pushes.Done()
		ctx, cancel := context.WithTimeout(context.Background(), remoteTimeout)
		defer cancel()
		if err := a.remote.PushStats(ctx, userID, s); err != nil {
			a.logger.Warn("failed to mirror stats", zap.String("user", userID), zap.Error(err))
		}
	}()
}

func (a *App) pushProfile(p model.UserProfile) {
	a.pushes.Add(1)
	go func() {
		defer a.pushes.Done()
		ctx, cancel := context.WithTimeout(context.Background(), remoteTimeout)
		defer cancel()
		if err := a.remote.PushProfile(ctx, p); err != nil {
			a.logger.Warn("failed to mirror profile", zap.String("user", p.ID), zap.Error(err))
		}
	}()
}
