package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.Render.BDFFont != nil || cfg.Git.Branch != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[render]
bdf-font = "/fonts/5x7.bdf"
letter-spacing = 1

[git]
base = "trunk"
no-push = true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Render.BDFFont == nil || *cfg.Render.BDFFont != "/fonts/5x7.bdf" {
		t.Fatalf("unexpected font %v", cfg.Render.BDFFont)
	}
	if cfg.Render.LetterSpacing == nil || *cfg.Render.LetterSpacing != 1 {
		t.Fatalf("unexpected letter spacing %v", cfg.Render.LetterSpacing)
	}
	if cfg.Render.SpaceSpacing != nil {
		t.Fatalf("expected unset space spacing")
	}
	if cfg.Git.Base == nil || *cfg.Git.Base != "trunk" || cfg.Git.NoPush == nil || !*cfg.Git.NoPush {
		t.Fatalf("unexpected git config %+v", cfg.Git)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[render\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestDefaultPathsHonorXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")
	if got := DefaultConfigPath(); got != filepath.Join("/cfg", "gitart", "config.toml") {
		t.Fatalf("unexpected config path %q", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/data", "gitart", "gitart.db") {
		t.Fatalf("unexpected db path %q", got)
	}
	if got := DefaultFontCacheDir(); got != filepath.Join("/data", "gitart", "fonts") {
		t.Fatalf("unexpected font cache %q", got)
	}
}
