// Package model defines shared data structures.
package model

import "time"

// LanguageCode identifies a UI locale.
type LanguageCode string

// Supported UI locales.
const (
	LangEnglish LanguageCode = "en"
	LangBengali LanguageCode = "bn"
	LangSpanish LanguageCode = "es"
	LangFrench  LanguageCode = "fr"
	LangHindi   LanguageCode = "hi"
)

// Config defines shell settings resolved from flags and the config file.
type Config struct {
	Lang         LanguageCode
	TimerMinutes int
	AuthProvider string
	SyncEnabled  bool
	Verbose      bool
}

// UserProfile identifies the person using the shell.
type UserProfile struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	JoinedAt time.Time `json:"joinedAt"`
	IsGuest  bool      `json:"isGuest,omitempty"`
}

// SessionDescriptor is the persisted record of the active identity.
type SessionDescriptor struct {
	User      UserProfile `json:"user"`
	StartedAt time.Time   `json:"startedAt"`
}

// Credentials carries login or sign-up input for an auth provider.
type Credentials struct {
	Email    string
	Password string
	// Name is only used when SignUp is set.
	Name   string
	SignUp bool
}

// ActivityPoint is one day slot of the weekly activity sequence.
type ActivityPoint struct {
	Day   string  `json:"day"`
	Value float64 `json:"value"`
}

// UserStats is the cumulative progress record of a user.
type UserStats struct {
	SessionsCompleted int             `json:"sessionsCompleted"`
	NodesExplored     int             `json:"nodesExplored"`
	MinutesDebated    int             `json:"minutesDebated"`
	QuizScore         int             `json:"quizScore"`
	Level             int             `json:"level"`
	Title             string          `json:"title"`
	WeeklyActivity    []ActivityPoint `json:"weeklyActivity"`
}

// StatsDelta is a partial UserStats reported by a feature module.
// Nil fields are absent and leave the current value untouched.
type StatsDelta struct {
	SessionsCompleted *int
	NodesExplored     *int
	MinutesDebated    *int
	QuizScore         *int
	WeeklyActivity    []ActivityPoint
}

// Empty reports whether the delta carries no fields.
func (d StatsDelta) Empty() bool {
	return d.SessionsCompleted == nil &&
		d.NodesExplored == nil &&
		d.MinutesDebated == nil &&
		d.QuizScore == nil &&
		d.WeeklyActivity == nil
}

// Int returns a pointer to v, for building deltas.
func Int(v int) *int {
	return &v
}
