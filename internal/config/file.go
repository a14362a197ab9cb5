package config

// This file implements the optional config file: a small YAML document
// supplying defaults for display and logging settings. CLI flags always
// win; cmd/mmv applies file values only for flags the user did not pass.

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// FileConfig mirrors the config file schema. Pointer fields distinguish
// "absent" from zero values.
type FileConfig struct {
	Color   string `yaml:"color"`   // auto | always | never
	Log     string `yaml:"log"`     // log file path
	Verbose *bool  `yaml:"verbose"` //
	Force   *bool  `yaml:"force"`   //
}

// DefaultFilePath returns the conventional config file location,
// honoring XDG_CONFIG_HOME. Empty when no home directory is resolvable.
func DefaultFilePath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "mmv", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "mmv", "config.yaml")
}

// LoadFile reads and parses the config file at path. A missing file is
// not an error when explicit is false (the default location simply may
// not exist); a malformed file always is.
func LoadFile(path string, explicit bool) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "cannot read config file %s", path)
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, errors.Wrapf(err, "cannot parse config file %s", path)
	}
	return &fc, nil
}

// Apply copies the file values into cfg. set reports whether the
// corresponding CLI flag was passed; flag values take precedence.
func (fc *FileConfig) Apply(cfg *Config, set func(flag string) bool) error {
	if fc == nil {
		return nil
	}
	if fc.Color != "" && !set("color") {
		cfg.ColorMode = ColorMode(fc.Color)
	}
	if fc.Log != "" && !set("log") {
		cfg.LogFile = fc.Log
	}
	if fc.Verbose != nil && !set("verbose") {
		cfg.Verbose = *fc.Verbose
	}
	if fc.Force != nil && !set("force") {
		cfg.Force = *fc.Force
	}
	return nil
}
