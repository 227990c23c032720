package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	require.Equal(t, "File Compressor", cfg.WindowTitle)
	require.Equal(t, float32(500), cfg.WindowWidth)
	require.Equal(t, float32(600), cfg.WindowHeight)
	require.Equal(t, slog.LevelInfo, cfg.LogLevel)
}
