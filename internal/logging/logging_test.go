package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NoPathIsNop(t *testing.T) {
	logger, err := New("", true)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(-1))
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	logger, err := New(path, false)
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("hello")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"logger":"myarticles"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNew_Verbose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	logger, err := New(path, true)
	require.NoError(t, err)
	logger.Debug("details")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "details")
}

func TestNew_BadPath(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "dir", "app.log"), false)
	assert.Error(t, err)
}
