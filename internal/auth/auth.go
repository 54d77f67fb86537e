// Package auth verifies identities for the session manager.
//
// Two providers exist: Firebase, spoken to over its Identity Toolkit REST API,
// and Local, an offline account book kept in the application database. The shell
// uses Firebase when an API key is configured and Local otherwise.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/verte-zerg/aetheris/internal/model"
)

// Authenticator is the external identity collaborator.
type Authenticator interface {
	// Authenticate verifies (or, with SignUp set, registers) the credentials.
	Authenticate(ctx context.Context, creds model.Credentials) (model.UserProfile, error)
	// InvalidateSession drops any remote session held for userID.
	InvalidateSession(ctx context.Context, userID string) error
}

// Kind classifies an authentication failure.
type Kind int

// Failure kinds.
const (
	KindProvider Kind = iota
	KindInvalidCredentials
	KindUnavailable
	KindMalformed
)

// Sentinels for errors.Is checks against an *Error.
var (
	ErrProvider           = errors.New("auth provider error")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnavailable        = errors.New("auth provider unavailable")
	ErrMalformed          = errors.New("malformed auth response")
)

func (k Kind) sentinel() error {
	switch k {
	case KindInvalidCredentials:
		return ErrInvalidCredentials
	case KindUnavailable:
		return ErrUnavailable
	case KindMalformed:
		return ErrMalformed
	default:
		return ErrProvider
	}
}

// Error is an authentication failure. It is always retryable from the user's side.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.sentinel().Error()
	}
	if e.Err != nil {
		return fmt.Sprintf("auth.%s: %s: %v", e.Op, msg, e.Err)
	}
	return fmt.Sprintf("auth.%s: %s", e.Op, msg)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// UserMessage is the short text shown in the auth gate.
func (e *Error) UserMessage() string {
	switch e.Kind {
	case KindInvalidCredentials:
		if e.Message != "" {
			return e.Message
		}
		return "Invalid email or password."
	case KindUnavailable:
		return "Sign-in service is unreachable. Try again or continue as guest."
	case KindMalformed:
		return "Sign-in service returned an unexpected response. Try again."
	default:
		return "Sign-in failed. Try again."
	}
}

// UserMessage extracts a displayable message from any error.
func UserMessage(err error) string {
	var aerr *Error
	if errors.As(err, &aerr) {
		return aerr.UserMessage()
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

func newError(kind Kind, op, message string, err error) *Error {
	return &Error{Kind: kind, Op: op, Message: message, Err: err}
}
