package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"

	"github.com/verte-zerg/aetheris/internal/auth"
	"github.com/verte-zerg/aetheris/internal/config"
	"github.com/verte-zerg/aetheris/internal/model"
	"github.com/verte-zerg/aetheris/internal/store"
	"github.com/verte-zerg/aetheris/internal/timer"
)

func TestDefaultConfigTemplateDecodesWhenUncommented(t *testing.T) {
	var lines []string
	for _, line := range strings.Split(defaultConfigTemplate(), "\n") {
		if strings.HasPrefix(line, "# ") && strings.Contains(line, " = ") {
			line = strings.TrimPrefix(line, "# ")
		}
		lines = append(lines, line)
	}
	var cfg config.FileConfig
	if _, err := toml.Decode(strings.Join(lines, "\n"), &cfg); err != nil {
		t.Fatalf("template does not decode: %v", err)
	}
	if cfg.Shell.Lang == nil || *cfg.Shell.Lang != defaultLang {
		t.Fatalf("unexpected lang %v", cfg.Shell.Lang)
	}
	if cfg.Shell.TimerMinutes == nil || *cfg.Shell.TimerMinutes != defaultTimerMinutes {
		t.Fatalf("unexpected timer %v", cfg.Shell.TimerMinutes)
	}
	if cfg.Auth.Provider == nil || *cfg.Auth.Provider != defaultAuthProvider {
		t.Fatalf("unexpected provider %v", cfg.Auth.Provider)
	}
	if cfg.Sync.Enabled == nil || *cfg.Sync.Enabled {
		t.Fatalf("unexpected sync %v", cfg.Sync.Enabled)
	}
}

func TestFlagsOverrideConfig(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{"--lang", "fr"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	fileLang := "es"
	fileTimer := 50
	applyStringConfig(cmd, "lang", &shellLang, &fileLang)
	applyIntConfig(cmd, "timer", &shellTimer, &fileTimer)
	applyIntConfig(cmd, "timer", &shellTimer, nil)
	if shellLang != "fr" {
		t.Fatalf("flag should win, got %q", shellLang)
	}
	if shellTimer != 50 {
		t.Fatalf("config should fill unset flag, got %d", shellTimer)
	}
}

func TestValidateConfig(t *testing.T) {
	valid := model.Config{Lang: model.LangEnglish, TimerMinutes: 25, AuthProvider: "auto"}
	if err := validateConfig(valid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bad := valid
	bad.TimerMinutes = 0
	if err := validateConfig(bad); err == nil {
		t.Fatalf("expected timer error")
	}
	bad = valid
	bad.AuthProvider = "oauth"
	if err := validateConfig(bad); err == nil {
		t.Fatalf("expected provider error")
	}
}

func TestSelectAuthenticator(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "aetheris.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer func() { _ = st.Close() }()
	logger := zap.NewNop()

	a, err := selectAuthenticator("auto", config.Secrets{}, st, logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := a.(*auth.Local); !ok {
		t.Fatalf("expected local provider without firebase key, got %T", a)
	}

	a, err = selectAuthenticator("auto", config.Secrets{FirebaseAPIKey: "key"}, st, logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := a.(*auth.Firebase); !ok {
		t.Fatalf("expected firebase provider, got %T", a)
	}

	if _, err := selectAuthenticator("firebase", config.Secrets{FirebaseAPIKey: "YOUR_API_KEY_HERE"}, st, logger); err == nil {
		t.Fatalf("expected error for placeholder key")
	}

	a, err = selectAuthenticator("local", config.Secrets{}, nil, logger)
	if err != nil || a != nil {
		t.Fatalf("expected no provider without a store, got %T %v", a, err)
	}
}

func TestRunFocusCompletes(t *testing.T) {
	var reports []string
	finished := runFocus(context.Background(), timer.New(3), time.Millisecond, func(s string) {
		reports = append(reports, s)
	})
	if !finished {
		t.Fatalf("expected countdown to finish")
	}
	want := []string{"0:03", "0:02", "0:01", "0:00"}
	if strings.Join(reports, ",") != strings.Join(want, ",") {
		t.Fatalf("unexpected reports %v", reports)
	}
}

func TestRunFocusInterrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if runFocus(ctx, timer.New(60), time.Hour, func(string) {}) {
		t.Fatalf("cancelled countdown must not report completion")
	}
}

func TestLangsCmd(t *testing.T) {
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"langs"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("langs: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"en", "Español", "हिन्दी"} {
		if !strings.Contains(out, want) {
			t.Fatalf("langs output missing %q:\n%s", want, out)
		}
	}
}

func TestResetRequiresConfirmation(t *testing.T) {
	resetYes = false
	cmd := newRootCmd()
	cmd.SetArgs([]string{"reset"})
	cmd.SetErr(&bytes.Buffer{})
	if err := cmd.Execute(); err == nil || !strings.Contains(err.Error(), "--yes") {
		t.Fatalf("expected confirmation error, got %v", err)
	}
}
