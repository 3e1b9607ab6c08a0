package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jimaku.log")

	log, closeFn, err := New(Options{Level: "debug", File: path})
	require.NoError(t, err)

	log.Debug("annotation pass finished", "tokens", 3)
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "annotation pass finished")
	assert.Contains(t, string(data), "tokens=3")
}

func TestNewJSONFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jimaku.log")

	log, closeFn, err := New(Options{Format: "json", File: path})
	require.NoError(t, err)

	log.Info("loaded dictionary", "entries", 12)
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"loaded dictionary"`)
}

func TestNewLevelFiltering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jimaku.log")

	log, closeFn, err := New(Options{Level: "warn", File: path})
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, _, err := New(Options{Level: "verbose"})
	require.Error(t, err)
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard().Info("dropped")
	})
}
