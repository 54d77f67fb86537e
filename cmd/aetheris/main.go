// Package main provides the CLI entrypoint for aetheris.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/verte-zerg/aetheris/internal/app"
	"github.com/verte-zerg/aetheris/internal/auth"
	"github.com/verte-zerg/aetheris/internal/config"
	"github.com/verte-zerg/aetheris/internal/i18n"
	"github.com/verte-zerg/aetheris/internal/logging"
	"github.com/verte-zerg/aetheris/internal/model"
	"github.com/verte-zerg/aetheris/internal/persist"
	"github.com/verte-zerg/aetheris/internal/remote"
	"github.com/verte-zerg/aetheris/internal/session"
	"github.com/verte-zerg/aetheris/internal/stats"
	"github.com/verte-zerg/aetheris/internal/store"
	"github.com/verte-zerg/aetheris/internal/timer"
	"github.com/verte-zerg/aetheris/internal/tui"
)

const (
	defaultLang         = "en"
	defaultTimerMinutes = 25
	defaultAuthProvider = "auto"
	remoteDialTimeout   = 3 * time.Second
)

var (
	shellLang    string
	shellTimer   int
	shellAuth    string
	shellSync    bool
	shellVerbose bool

	focusMinutes int
	statsTop     int

	resetYes     bool
	resetAccount bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "aetheris",
		Short:         "Flow state learning shell",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runShellCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&shellLang, "lang", defaultLang, "UI language (en, bn, es, fr, hi)")
	flags.IntVar(&shellTimer, "timer", defaultTimerMinutes, "focus timer length in minutes")
	flags.StringVar(&shellAuth, "auth", defaultAuthProvider, "identity provider (auto, firebase, local)")
	flags.BoolVar(&shellSync, "sync", false, "mirror stats to Redis (needs AETHERIS_REDIS_URL)")
	flags.BoolVarP(&shellVerbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newFocusCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLangsCmd())

	return rootCmd
}

// runtime holds everything opened for one command invocation.
type runtime struct {
	cfg    model.Config
	logger *zap.Logger
	store  *store.Store
	mirror *remote.Mirror
	app    *app.App
}

func resolveConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "lang", &shellLang, fileCfg.Shell.Lang)
	applyIntConfig(cmd, "timer", &shellTimer, fileCfg.Shell.TimerMinutes)
	applyStringConfig(cmd, "auth", &shellAuth, fileCfg.Auth.Provider)
	applyBoolConfig(cmd, "sync", &shellSync, fileCfg.Sync.Enabled)

	lang, ok := i18n.Parse(shellLang)
	if !ok {
		return model.Config{}, fmt.Errorf("unknown language %q (available: %s)", shellLang, availableLanguages())
	}
	cfg := model.Config{
		Lang:         lang,
		TimerMinutes: shellTimer,
		AuthProvider: strings.ToLower(strings.TrimSpace(shellAuth)),
		SyncEnabled:  shellSync,
		Verbose:      shellVerbose,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func openRuntime(cmd *cobra.Command) (*runtime, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	secrets, err := config.LoadSecrets(".env", config.DefaultEnvPath())
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(config.DefaultLogPath(), cfg.Verbose)
	if err != nil {
		logErrf("logging disabled: %v\n", err)
		logger = zap.NewNop()
	}

	rt := &runtime{cfg: cfg, logger: logger}

	var kv persist.KV
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		logger.Error("failed to open db; progress will not be saved", zap.Error(err))
	} else {
		rt.store = st
		kv = st
	}
	adapter := persist.New(kv, logger)

	authn, err := selectAuthenticator(cfg.AuthProvider, secrets, rt.store, logger)
	if err != nil {
		rt.Close()
		return nil, err
	}

	opts := app.Options{
		Sessions: session.NewManager(authn, adapter, logger),
		Store:    adapter,
		Language: cfg.Lang,
		Logger:   logger,
	}
	if cfg.SyncEnabled {
		rt.mirror = openMirror(cmd.Context(), secrets.RedisURL, logger)
		if rt.mirror != nil {
			opts.Remote = rt.mirror
		}
	}
	rt.app = app.New(opts)
	logger.Debug("runtime ready",
		zap.String("auth", cfg.AuthProvider),
		zap.Bool("sync", rt.mirror != nil),
		zap.Bool("degraded", adapter.Degraded()))
	return rt, nil
}

// Close flushes pending writes and releases resources. Errors are best-effort.
func (r *runtime) Close() {
	if r.app != nil {
		r.app.Close()
	}
	if r.mirror != nil {
		if err := r.mirror.Close(); err != nil {
			r.logger.Warn("failed to close redis client", zap.Error(err))
		}
	}
	if r.store != nil {
		if err := r.store.Close(); err != nil {
			logErrf("failed to close db: %v\n", err)
		}
	}
	// Sync reports EINVAL on some file targets; there is nowhere left to log it.
	_ = r.logger.Sync()
}

func selectAuthenticator(provider string, secrets config.Secrets, st *store.Store, logger *zap.Logger) (auth.Authenticator, error) {
	firebase := func() auth.Authenticator {
		return auth.NewFirebase(auth.FirebaseConfig{
			APIKey:  secrets.FirebaseAPIKey,
			BaseURL: secrets.IdentityBaseURL,
		}, logger)
	}
	local := func() auth.Authenticator {
		if st == nil {
			return nil
		}
		return auth.NewLocal(st, 0)
	}
	switch provider {
	case "firebase":
		if !secrets.FirebaseConfigured() {
			return nil, fmt.Errorf("--auth firebase needs FIREBASE_API_KEY")
		}
		return firebase(), nil
	case "local":
		return local(), nil
	default:
		if secrets.FirebaseConfigured() {
			return firebase(), nil
		}
		logger.Info("firebase not configured; using local accounts")
		return local(), nil
	}
}

func openMirror(ctx context.Context, url string, logger *zap.Logger) *remote.Mirror {
	if strings.TrimSpace(url) == "" {
		logger.Warn("sync enabled but AETHERIS_REDIS_URL is not set")
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, remoteDialTimeout)
	defer cancel()
	mirror, err := remote.Open(ctx, url, logger)
	if err != nil {
		logger.Warn("stats sync unavailable", zap.Error(err))
		return nil
	}
	return mirror
}

func runShellCmd(cmd *cobra.Command, _ []string) error {
	rt, err := openRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	shell := tui.NewModel(rt.app, rt.cfg, rt.logger)
	program := tea.NewProgram(shell, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print level, counters and weekly activity",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().IntVar(&statsTop, "top", 3, "number of busiest days to list")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	rt, err := openRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	user, ok := rt.app.User()
	if !ok {
		return fmt.Errorf("not signed in; run aetheris to sign in or start a guest session")
	}
	out := cmd.OutOrStdout()
	s := rt.app.Stats()
	if err := stats.RenderSummary(out, user, s); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := stats.RenderWeeklyWidth(out, s.WeeklyActivity, rt.app.Today(), stats.TerminalWidth()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if top := stats.TopDays(s.WeeklyActivity, statsTop); len(top) > 0 {
		if _, err := fmt.Fprintf(out, "Busiest: %s\n", strings.Join(top, ", ")); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newFocusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Run a focus countdown in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runFocusCmd,
	}
	cmd.Flags().IntVar(&focusMinutes, "minutes", 0, "countdown length (default: --timer)")
	return cmd
}

func runFocusCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	minutes := cfg.TimerMinutes
	if focusMinutes > 0 {
		minutes = focusMinutes
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	finished := runFocus(ctx, timer.New(minutes*60), time.Second, func(remaining string) {
		logErrf("\r%s %s ", i18n.T(cfg.Lang, i18n.KeyFocus), remaining)
	})
	logErrln()
	if !finished {
		return fmt.Errorf("focus interrupted")
	}
	logErrln("Focus block complete.")
	return nil
}

// runFocus drives t until it finishes or ctx ends, reporting each second.
func runFocus(ctx context.Context, t *timer.Timer, interval time.Duration, report func(string)) bool {
	var ticker timer.Ticker
	done := make(chan struct{})
	t.Start()
	report(t.Format())
	ticker.Start(ctx, interval, func() bool {
		finished := t.Tick()
		report(t.Format())
		if finished {
			close(done)
			return false
		}
		return true
	})
	defer ticker.Stop()
	select {
	case <-done:
		return true
	case <-ctx.Done():
		return false
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in identity",
		Args:  cobra.NoArgs,
		RunE:  runWhoamiCmd,
	}
}

func runWhoamiCmd(cmd *cobra.Command, _ []string) error {
	rt, err := openRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	out := cmd.OutOrStdout()
	user, ok := rt.app.User()
	if !ok {
		_, err := fmt.Fprintln(out, "Not signed in.")
		return err
	}
	kind := "account"
	if user.IsGuest {
		kind = "guest"
	}
	lines := []string{
		fmt.Sprintf("Name:   %s", user.Name),
		fmt.Sprintf("Email:  %s", user.Email),
		fmt.Sprintf("ID:     %s", user.ID),
		fmt.Sprintf("Kind:   %s", kind),
		fmt.Sprintf("Joined: %s", user.JoinedAt.Local().Format("2006-01-02")),
	}
	if rt.store != nil {
		keys, err := rt.store.Keys(cmd.Context(), user.ID)
		if err != nil {
			rt.logger.Warn("failed to list records", zap.Error(err))
		} else {
			lines = append(lines, fmt.Sprintf("Stored: %s", strings.Join(keys, ", ")))
		}
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Args:  cobra.NoArgs,
		RunE:  runLogoutCmd,
	}
}

func runLogoutCmd(cmd *cobra.Command, _ []string) error {
	rt, err := openRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	user, ok := rt.app.User()
	if !ok {
		logErrln("Not signed in.")
		return nil
	}
	rt.app.Logout(cmd.Context())
	if user.IsGuest {
		logErrln("Guest session ended; its progress was discarded.")
	} else {
		logErrf("Logged out %s.\n", user.Email)
	}
	return nil
}

func newResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase the current user's progress",
		Args:  cobra.NoArgs,
		RunE:  runResetCmd,
	}
	cmd.Flags().BoolVar(&resetYes, "yes", false, "confirm the reset")
	cmd.Flags().BoolVar(&resetAccount, "account", false, "also delete the local account and log out")
	return cmd
}

func runResetCmd(cmd *cobra.Command, _ []string) error {
	if !resetYes {
		return fmt.Errorf("refusing to reset without --yes")
	}
	rt, err := openRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	user, ok := rt.app.User()
	if !ok {
		return fmt.Errorf("not signed in")
	}
	rt.app.Reset()
	if !resetAccount {
		logErrln("Progress reset.")
		return nil
	}
	if user.IsGuest || rt.store == nil {
		return fmt.Errorf("--account only applies to local accounts")
	}
	if err := rt.store.DeleteAccount(cmd.Context(), user.ID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	rt.app.Logout(cmd.Context())
	logErrln("Account deleted.")
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newLangsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List UI languages",
		Args:  cobra.NoArgs,
		RunE:  runLangsCmd,
	}
}

func runLangsCmd(cmd *cobra.Command, _ []string) error {
	for _, l := range i18n.Languages() {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s  %s %s\n", l.Code, l.Flag, l.Name); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# aetheris configuration
# Uncomment a value to enable it. CLI flags override config values.
# Secrets (FIREBASE_API_KEY, AETHERIS_REDIS_URL) belong in the environment or %s.

[shell]
# lang = %q               # UI language: en, bn, es, fr, hi
# timer-minutes = %d      # Focus timer length

[auth]
# provider = %q         # auto, firebase or local

[sync]
# enabled = false         # Mirror stats to Redis
`,
		config.DefaultEnvPath(),
		defaultLang,
		defaultTimerMinutes,
		defaultAuthProvider,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.TimerMinutes <= 0 {
		return fmt.Errorf("--timer must be > 0")
	}
	switch cfg.AuthProvider {
	case "auto", "firebase", "local":
	default:
		return fmt.Errorf("--auth must be one of auto, firebase, local")
	}
	return nil
}

func availableLanguages() string {
	codes := make([]string, 0, 5)
	for _, l := range i18n.Languages() {
		codes = append(codes, string(l.Code))
	}
	return strings.Join(codes, ", ")
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
