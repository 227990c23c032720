package config

import "log/slog"

// Config holds runtime settings for the File Compressor application.
//
// Fields:
//   - WindowTitle: text shown in the window title bar.
//   - WindowWidth, WindowHeight: initial window geometry in device-independent pixels.
//   - LogLevel: minimum level emitted by the stderr logger.
type Config struct {
	WindowTitle  string
	WindowWidth  float32
	WindowHeight float32
	LogLevel     slog.Level
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.WindowTitle = "File Compressor"
	c.WindowWidth = 500
	c.WindowHeight = 600
	c.LogLevel = slog.LevelInfo
}

// LoadConfig constructs a Config and applies defaults. The application takes
// no command-line flags, environment variables, or configuration files, so
// defaults are the only layer. The returned value is treated as immutable
// after this call and shared read-only between components.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	return cfg
}
