package cli

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/bingogrid/internal/card"
)

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	// --- Act ---
	cfg, shouldExit, err := Parse([]string{"items.txt"}, &bytes.Buffer{})

	// --- Assert ---
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "items.txt", cfg.ItemsPath)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, 10, cfg.Cards)
	assert.Equal(t, card.DefaultMaxAttempts, cfg.MaxAttempts)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestParse_AllFlags(t *testing.T) {
	t.Parallel()

	args := []string{
		"-items", "deck/items.txt",
		"-cards", "24",
		"-out", "pages",
		"-layout", "layout.hcl",
		"-background", "snow.png",
		"-seed", "1234",
		"-max-attempts", "50",
		"-log-format", "json",
		"-log-level", "debug",
	}

	cfg, shouldExit, err := Parse(args, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "deck/items.txt", cfg.ItemsPath)
	assert.Equal(t, 24, cfg.Cards)
	assert.Equal(t, "pages", cfg.OutputDir)
	assert.Equal(t, "layout.hcl", cfg.LayoutPath)
	assert.Equal(t, "snow.png", cfg.Background)
	assert.Equal(t, uint64(1234), cfg.Seed)
	assert.Equal(t, 50, cfg.MaxAttempts)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestParse_ShorthandItemsFlag(t *testing.T) {
	t.Parallel()

	cfg, shouldExit, err := Parse([]string{"-i", "short.txt"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "short.txt", cfg.ItemsPath)
}

func TestParse_NoPathPrintsUsage(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{}, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_HelpFlag(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{"-h"}, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		args        []string
		expectedErr string
	}{
		{
			name:        "unknown flag",
			args:        []string{"--not-a-flag"},
			expectedErr: "flag provided but not defined",
		},
		{
			name:        "invalid log format",
			args:        []string{"-log-format", "yaml", "items.txt"},
			expectedErr: "invalid log-format",
		},
		{
			name:        "invalid log level",
			args:        []string{"-log-level", "loud", "items.txt"},
			expectedErr: "invalid log-level",
		},
		{
			name:        "zero cards",
			args:        []string{"-cards", "0", "items.txt"},
			expectedErr: "Cards must be at least 1",
		},
		{
			name:        "zero max attempts",
			args:        []string{"-max-attempts", "0", "items.txt"},
			expectedErr: "MaxAttempts must be at least 1",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := Parse(tc.args, &bytes.Buffer{})

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.expectedErr)
		})
	}
}
