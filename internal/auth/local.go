package auth

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/verte-zerg/aetheris/internal/model"
	"github.com/verte-zerg/aetheris/internal/store"
)

const minPasswordLen = 6

// AccountStore persists offline accounts.
type AccountStore interface {
	CreateAccount(ctx context.Context, acc store.Account) error
	AccountByEmail(ctx context.Context, email string) (store.Account, error)
}

// Local authenticates against accounts kept in the local database.
type Local struct {
	accounts AccountStore
	cost     int
	now      func() time.Time
}

// NewLocal returns a Local provider. Cost 0 selects bcrypt.DefaultCost.
func NewLocal(accounts AccountStore, cost int) *Local {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &Local{accounts: accounts, cost: cost, now: time.Now}
}

// Authenticate implements Authenticator.
func (l *Local) Authenticate(ctx context.Context, creds model.Credentials) (model.UserProfile, error) {
	email, err := normalizeEmail(creds.Email)
	if err != nil {
		return model.UserProfile{}, newError(KindInvalidCredentials, "local", "Enter a valid email address.", err)
	}
	if creds.SignUp {
		return l.signUp(ctx, email, creds)
	}
	acc, err := l.accounts.AccountByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return model.UserProfile{}, newError(KindInvalidCredentials, "local", "", nil)
	}
	if err != nil {
		return model.UserProfile{}, newError(KindUnavailable, "local", "", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(creds.Password)); err != nil {
		return model.UserProfile{}, newError(KindInvalidCredentials, "local", "", nil)
	}
	return profileFromAccount(acc), nil
}

func (l *Local) signUp(ctx context.Context, email string, creds model.Credentials) (model.UserProfile, error) {
	if len(creds.Password) < minPasswordLen {
		return model.UserProfile{}, newError(KindInvalidCredentials, "local", "Password must be at least 6 characters.", nil)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), l.cost)
	if err != nil {
		return model.UserProfile{}, newError(KindProvider, "local", "", err)
	}
	name := strings.TrimSpace(creds.Name)
	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}
	acc := store.Account{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		JoinedAt:     l.now().UTC(),
	}
	if err := l.accounts.CreateAccount(ctx, acc); err != nil {
		if errors.Is(err, store.ErrAccountExists) {
			return model.UserProfile{}, newError(KindInvalidCredentials, "local", "An account with this email already exists.", err)
		}
		return model.UserProfile{}, newError(KindUnavailable, "local", "", err)
	}
	return profileFromAccount(acc), nil
}

// InvalidateSession implements Authenticator. Local sessions live only in the
// session descriptor, so there is nothing remote to drop.
func (l *Local) InvalidateSession(context.Context, string) error {
	return nil
}

func profileFromAccount(acc store.Account) model.UserProfile {
	return model.UserProfile{
		ID:       acc.ID,
		Name:     acc.Name,
		Email:    acc.Email,
		JoinedAt: acc.JoinedAt,
	}
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return "", err
	}
	if addr.Address != email {
		return "", errors.New("email must not contain a display name")
	}
	return email, nil
}
