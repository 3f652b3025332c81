package testsupport

import (
	"path/filepath"
	"testing"

	"cutline/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "projects")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithRippleDefaults sets the editor ripple flags on the test config.
func WithRippleDefaults(enabled, allTracks bool) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Editor.RippleEditDefault = enabled
		cfg.Editor.RippleAllTracks = allTracks
	}
}
