package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing config file should not error: %v", err)
	}
	if cfg.Theme != "nord" {
		t.Errorf("theme = %q, want default nord", cfg.Theme)
	}
	if cfg.AutosaveDelayMs != 750 {
		t.Errorf("autosave delay = %d, want 750", cfg.AutosaveDelayMs)
	}
	if !cfg.Notifications {
		t.Error("notifications should default on")
	}
}

func TestLoadExpandsEnvVars(t *testing.T) {
	t.Setenv("TACK_TEST_DIR", "/tmp/tack-test")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "data_dir: ${TACK_TEST_DIR}\ndb_path: ${TACK_TEST_DIR}/tack.db\ntheme: dracula\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != "/tmp/tack-test" {
		t.Errorf("data_dir = %q, env not expanded", cfg.DataDir)
	}
	if cfg.Theme != "dracula" {
		t.Errorf("theme = %q, want dracula", cfg.Theme)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"unknown theme", "theme: solarized\n"},
		{"autosave too fast", "autosave_delay_ms: 5\n"},
		{"empty data dir", "data_dir: \"\"\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
