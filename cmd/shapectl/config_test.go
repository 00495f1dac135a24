package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danmuck/shapectl/internal/config"
	"github.com/danmuck/shapectl/internal/testutil/testlog"
)

func TestLoadPipelineConfigFlagOverrides(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
input = "from_file.dat"
surface = "log"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadPipelineConfig([]string{
		"-config", path,
		"-input", "from_flag.dat",
		"-strict",
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Input != "from_flag.dat" {
		t.Fatalf("flag must override file input, got %q", cfg.Input)
	}
	if cfg.Surface != config.SurfaceLog {
		t.Fatalf("file surface must survive, got %q", cfg.Surface)
	}
	if !cfg.StrictParams {
		t.Fatalf("strict flag not applied")
	}
}

func TestLoadPipelineConfigDefaultsWithoutFile(t *testing.T) {
	testlog.Start(t)
	cfg, err := loadPipelineConfig(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Input != "features.dat" || cfg.Surface != config.SurfaceNoop {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadPipelineConfigRejectsBadSurface(t *testing.T) {
	testlog.Start(t)
	if _, err := loadPipelineConfig([]string{"-surface", "vector"}); err == nil {
		t.Fatalf("expected validation failure for unknown surface")
	}
}
