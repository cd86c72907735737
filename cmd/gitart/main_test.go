package main

import (
	"errors"
	"testing"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/gitart/internal/config"
	"github.com/verte-zerg/gitart/internal/model"
)

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	var cfg config.FileConfig
	if _, err := toml.Decode(defaultConfigTemplate(), &cfg); err != nil {
		t.Fatalf("template is not valid TOML: %v", err)
	}
	if cfg.Render.BDFFont != nil || cfg.Git.Branch != nil {
		t.Fatalf("expected every template value to be commented out, got %+v", cfg)
	}
}

func TestResolveStartDefaults(t *testing.T) {
	cmd := newRootCmd()
	now := time.Date(2025, time.December, 10, 12, 0, 0, 0, time.UTC)
	year, month := resolveStart(cmd, now)
	if year != 2025 || month != time.January {
		t.Fatalf("expected January 2025, got %s %d", month, year)
	}
}

func TestResolveStartFlags(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.Flags().Set("start-month", "3"); err != nil {
		t.Fatalf("set month: %v", err)
	}
	if err := cmd.Flags().Set("start-year", "2020"); err != nil {
		t.Fatalf("set year: %v", err)
	}
	year, month := resolveStart(cmd, time.Now())
	if year != 2020 || month != time.March {
		t.Fatalf("expected March 2020, got %s %d", month, year)
	}
}

func TestValidateFlagsRejectsMonth(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.Flags().Set("start-month", "13"); err != nil {
		t.Fatalf("set month: %v", err)
	}
	err := validateFlags(cmd)
	if !errors.Is(err, model.ErrInput) {
		t.Fatalf("expected input error, got %v", err)
	}
}

func TestValidateFlagsRejectsNegativeSpacing(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.Flags().Set("letter-spacing", "-1"); err != nil {
		t.Fatalf("set spacing: %v", err)
	}
	if err := validateFlags(cmd); !errors.Is(err, model.ErrInput) {
		t.Fatalf("expected input error, got %v", err)
	}
}

func TestApplyConfigRespectsChangedFlags(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.Flags().Set("branch", "art"); err != nil {
		t.Fatalf("set branch: %v", err)
	}
	fromFile := "from-file"
	applyStringConfig(cmd, "branch", &drawBranch, &fromFile)
	if drawBranch != "art" {
		t.Fatalf("flag should win over config, got %q", drawBranch)
	}
	applyStringConfig(cmd, "remote", &drawRemote, &fromFile)
	if drawRemote != "from-file" {
		t.Fatalf("config should fill unchanged flag, got %q", drawRemote)
	}
	applyStringConfig(cmd, "base", &drawBase, nil)
	if drawBase != defaultBase {
		t.Fatalf("nil config value should keep default, got %q", drawBase)
	}
}
