package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// allUnset simulates a run where the user passed no flags.
func allUnset(string) bool { return false }

func TestLoadFile_AppliesDefaults(t *testing.T) {
	path := writeConfigFile(t, "color: never\nlog: /tmp/mmv.log\nverbose: true\nforce: true\n")

	fc, err := LoadFile(path, true)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	cfg := DefaultConfig()
	if err := fc.Apply(&cfg, allUnset); err != nil {
		t.Fatal(err)
	}
	if cfg.ColorMode != ColorNever {
		t.Errorf("ColorMode = %q, want %q", cfg.ColorMode, ColorNever)
	}
	if cfg.LogFile != "/tmp/mmv.log" {
		t.Errorf("LogFile = %q", cfg.LogFile)
	}
	if !cfg.Verbose || !cfg.Force {
		t.Errorf("Verbose = %v, Force = %v, want both true", cfg.Verbose, cfg.Force)
	}
}

func TestLoadFile_FlagsWin(t *testing.T) {
	path := writeConfigFile(t, "color: never\nforce: true\n")

	fc, err := LoadFile(path, true)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	cfg := DefaultConfig()
	cfg.ColorMode = ColorAlways // as if --color=always was passed
	set := func(flag string) bool { return flag == "color" }
	if err := fc.Apply(&cfg, set); err != nil {
		t.Fatal(err)
	}
	if cfg.ColorMode != ColorAlways {
		t.Errorf("ColorMode = %q, flag value should win over file", cfg.ColorMode)
	}
	if !cfg.Force {
		t.Error("Force should still come from the file")
	}
}

func TestLoadFile_MissingDefaultLocation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")

	fc, err := LoadFile(path, false)
	if err != nil {
		t.Errorf("missing default-location file should not error, got %v", err)
	}
	if fc != nil {
		t.Errorf("fc = %+v, want nil", fc)
	}

	// Applying a nil file config is a no-op.
	cfg := DefaultConfig()
	if err := fc.Apply(&cfg, allUnset); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFile_MissingExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")
	if _, err := LoadFile(path, true); err == nil {
		t.Error("explicitly named missing file should error")
	}
}

func TestLoadFile_Malformed(t *testing.T) {
	path := writeConfigFile(t, "color: [this is\nnot: valid yaml: {")
	if _, err := LoadFile(path, false); err == nil {
		t.Error("malformed file should error")
	}
}
