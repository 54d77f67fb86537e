package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/verte-zerg/aetheris/internal/logging"
	"github.com/verte-zerg/aetheris/internal/model"
)

const (
	defaultIdentityURL = "https://identitytoolkit.googleapis.com/v1"
	defaultHTTPTimeout = 10 * time.Second
	maxResponseBytes   = 1 << 20
)

// FirebaseConfig configures the Firebase provider.
type FirebaseConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Firebase authenticates with email/password through the Identity Toolkit REST API.
type Firebase struct {
	apiKey  string
	baseURL string
	client  *http.Client
	logger  *zap.Logger
	now     func() time.Time
}

// NewFirebase returns a Firebase provider.
func NewFirebase(cfg FirebaseConfig, logger *zap.Logger) *Firebase {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = defaultIdentityURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &Firebase{
		apiKey:  cfg.APIKey,
		baseURL: base,
		client:  &http.Client{Timeout: timeout},
		logger:  logging.OrNop(logger).Named("firebase"),
		now:     time.Now,
	}
}

type passwordRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type tokenResponse struct {
	LocalID     string `json:"localId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	IDToken     string `json:"idToken"`
}

type updateRequest struct {
	IDToken           string `json:"idToken"`
	DisplayName       string `json:"displayName"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type lookupRequest struct {
	IDToken string `json:"idToken"`
}

type lookupResponse struct {
	Users []struct {
		LocalID     string `json:"localId"`
		DisplayName string `json:"displayName"`
		CreatedAt   string `json:"createdAt"`
	} `json:"users"`
}

type errorEnvelope struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Authenticate implements Authenticator.
func (f *Firebase) Authenticate(ctx context.Context, creds model.Credentials) (model.UserProfile, error) {
	email := strings.TrimSpace(creds.Email)
	if email == "" || creds.Password == "" {
		return model.UserProfile{}, newError(KindInvalidCredentials, "firebase", "Email and password are required.", nil)
	}
	endpoint := "accounts:signInWithPassword"
	if creds.SignUp {
		endpoint = "accounts:signUp"
	}
	var tok tokenResponse
	if err := f.call(ctx, endpoint, passwordRequest{Email: email, Password: creds.Password, ReturnSecureToken: true}, &tok); err != nil {
		return model.UserProfile{}, err
	}
	if tok.LocalID == "" || tok.IDToken == "" {
		return model.UserProfile{}, newError(KindMalformed, "firebase", "", errors.New("response without localId or idToken"))
	}

	profile := model.UserProfile{
		ID:       tok.LocalID,
		Name:     tok.DisplayName,
		Email:    tok.Email,
		JoinedAt: f.now().UTC(),
	}
	if profile.Email == "" {
		profile.Email = email
	}
	if creds.SignUp && strings.TrimSpace(creds.Name) != "" {
		name := strings.TrimSpace(creds.Name)
		if err := f.call(ctx, "accounts:update", updateRequest{IDToken: tok.IDToken, DisplayName: name}, nil); err != nil {
			f.logger.Warn("failed to set display name", zap.String("user", tok.LocalID), zap.Error(err))
		} else {
			profile.Name = name
		}
	}
	f.enrich(ctx, tok.IDToken, &profile)
	if profile.Name == "" {
		profile.Name = strings.SplitN(profile.Email, "@", 2)[0]
	}
	return profile, nil
}

// enrich fills the creation time and display name from accounts:lookup. Failures are logged only.
func (f *Firebase) enrich(ctx context.Context, idToken string, profile *model.UserProfile) {
	var resp lookupResponse
	if err := f.call(ctx, "accounts:lookup", lookupRequest{IDToken: idToken}, &resp); err != nil {
		f.logger.Debug("account lookup failed", zap.Error(err))
		return
	}
	if len(resp.Users) == 0 {
		return
	}
	u := resp.Users[0]
	if profile.Name == "" {
		profile.Name = u.DisplayName
	}
	if ms, err := strconv.ParseInt(u.CreatedAt, 10, 64); err == nil && ms > 0 {
		profile.JoinedAt = time.UnixMilli(ms).UTC()
	}
}

// InvalidateSession implements Authenticator. Revoking refresh tokens needs admin
// credentials and the client keeps no tokens after Authenticate, so there is
// nothing to forget.
func (f *Firebase) InvalidateSession(_ context.Context, userID string) error {
	f.logger.Debug("session ended", zap.String("user", userID))
	return nil
}

func (f *Firebase) call(ctx context.Context, endpoint string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return newError(KindProvider, endpoint, "", err)
	}
	u := fmt.Sprintf("%s/%s?key=%s", f.baseURL, endpoint, url.QueryEscape(f.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return newError(KindProvider, endpoint, "", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return newError(KindUnavailable, endpoint, "", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			f.logger.Debug("failed to close response body", zap.String("endpoint", endpoint), zap.Error(cerr))
		}
	}()
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return newError(KindUnavailable, endpoint, "", err)
	}

	if resp.StatusCode != http.StatusOK {
		var env errorEnvelope
		if err := json.Unmarshal(data, &env); err != nil || env.Error.Message == "" {
			if resp.StatusCode >= http.StatusInternalServerError {
				return newError(KindUnavailable, endpoint, "", fmt.Errorf("status %d", resp.StatusCode))
			}
			return newError(KindMalformed, endpoint, "", fmt.Errorf("status %d", resp.StatusCode))
		}
		return classifyFirebaseError(endpoint, env.Error.Message)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return newError(KindMalformed, endpoint, "", err)
	}
	return nil
}

// classifyFirebaseError maps Identity Toolkit error codes. Messages may carry a
// suffix, e.g. "WEAK_PASSWORD : Password should be at least 6 characters".
func classifyFirebaseError(op, message string) *Error {
	code := strings.TrimSpace(strings.SplitN(message, ":", 2)[0])
	cause := errors.New(message)
	switch code {
	case "EMAIL_NOT_FOUND", "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS", "INVALID_EMAIL", "MISSING_PASSWORD":
		return newError(KindInvalidCredentials, op, "", cause)
	case "USER_DISABLED":
		return newError(KindInvalidCredentials, op, "This account has been disabled.", cause)
	case "EMAIL_EXISTS":
		return newError(KindInvalidCredentials, op, "An account with this email already exists.", cause)
	case "WEAK_PASSWORD":
		return newError(KindInvalidCredentials, op, "Password must be at least 6 characters.", cause)
	case "TOO_MANY_ATTEMPTS_TRY_LATER", "QUOTA_EXCEEDED":
		return newError(KindUnavailable, op, "", cause)
	default:
		return newError(KindProvider, op, "", cause)
	}
}
