package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeConfig(t, "seed: 42\nwindow: 20\nversion: \"v2\"\nextra_key: ignored\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 20, cfg.Window)
	assert.Equal(t, "v2", cfg.Version)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoad_EmptyFile(t *testing.T) {
	_, err := Load(writeConfig(t, ""))
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestLoad_NotAMapping(t *testing.T) {
	_, err := Load(writeConfig(t, "- seed\n- window\n"))
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestLoad_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no seed", "window: 20\nversion: v1\n"},
		{"no window", "seed: 42\nversion: v1\n"},
		{"no version", "seed: 42\nwindow: 20\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrMissingField)
		})
	}
}

func TestLoad_TypeMismatch(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"seed string", "seed: abc\nwindow: 20\nversion: v1\n"},
		{"seed quoted", "seed: \"42\"\nwindow: 20\nversion: v1\n"},
		{"window float", "seed: 42\nwindow: 2.5\nversion: v1\n"},
		{"version int", "seed: 42\nwindow: 20\nversion: 3\n"},
		{"version bool", "seed: 42\nwindow: 20\nversion: yes\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrTypeMismatch)
		})
	}
}

func TestLoad_WindowBelowOne(t *testing.T) {
	_, err := Load(writeConfig(t, "seed: 42\nwindow: 0\nversion: v1\n"))
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = Load(writeConfig(t, "seed: 42\nwindow: -3\nversion: v1\n"))
	assert.ErrorIs(t, err, ErrInvalidValue)
}
