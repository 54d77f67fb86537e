package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const placeholderAPIKey = "YOUR_API_KEY_HERE"

// Secrets holds credentials that only come from the environment.
type Secrets struct {
	FirebaseAPIKey     string `env:"FIREBASE_API_KEY"`
	FirebaseAuthDomain string `env:"FIREBASE_AUTH_DOMAIN"`
	FirebaseProjectID  string `env:"FIREBASE_PROJECT_ID"`
	IdentityBaseURL    string `env:"FIREBASE_IDENTITY_URL" envDefault:"https://identitytoolkit.googleapis.com/v1"`
	RedisURL           string `env:"AETHERIS_REDIS_URL"`
}

// LoadSecrets reads secrets from the environment. Each dotenv file that exists is
// loaded first; variables already present in the environment win.
func LoadSecrets(dotenvPaths ...string) (Secrets, error) {
	for _, path := range dotenvPaths {
		if path == "" {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Secrets{}, fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	var s Secrets
	if err := env.Parse(&s); err != nil {
		return Secrets{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return s, nil
}

// FirebaseConfigured reports whether a real Firebase API key is present.
func (s Secrets) FirebaseConfigured() bool {
	key := strings.TrimSpace(s.FirebaseAPIKey)
	return key != "" && key != placeholderAPIKey
}
