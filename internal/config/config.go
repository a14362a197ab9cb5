// Package config holds runtime configuration: defaults, the optional
// config file, and validation. Flag registration lives in cmd/mmv; the
// parsed values land here.
package config

import (
	"github.com/pkg/errors"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid with file defaults by [LoadFile], and then mutated
// by CLI flag parsing before being passed (by pointer) to packages that
// need it.
type Config struct {
	// Patterns (set from positional args).
	SourcePattern string // Wildcard pattern selecting the files to move.
	TargetPattern string // Template with #N markers for the new paths.

	// Behavior flags.
	Force  bool // Replace existing files at target paths.
	DryRun bool // Compute and report the plan without moving anything.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
}

// DefaultConfig returns a Config with mmv's defaults. Used as the base
// before file and flag overrides apply.
func DefaultConfig() Config {
	return Config{
		Force:     false,
		DryRun:    false,
		Verbose:   false,
		ColorMode: ColorAuto,
	}
}

// Validate checks that enum fields hold valid values and that both
// patterns are present.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	if c.SourcePattern == "" || c.TargetPattern == "" {
		return errors.New("need exactly source_pattern and target_pattern")
	}
	return nil
}
