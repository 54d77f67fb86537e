package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "aetheris.log")
	logger, err := New(path, false)
	require.NoError(t, err)

	logger.Info("shell started", zap.String("lang", "en"))
	logger.Debug("hidden at info level")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "shell started")
	assert.Contains(t, out, `"lang":"en"`)
	assert.False(t, strings.Contains(out, "hidden at info level"))
}

func TestNewVerboseEnablesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aetheris.log")
	logger, err := New(path, true)
	require.NoError(t, err)
	logger.Debug("tick")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "tick")
}

func TestNewRejectsEmptyPath(t *testing.T) {
	_, err := New("", false)
	require.Error(t, err)
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))
	l := zap.NewExample()
	assert.Same(t, l, OrNop(l))
}
