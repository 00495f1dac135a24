package main

import (
	"flag"
	"strings"

	"github.com/danmuck/shapectl/internal/config"
)

// loadPipelineConfig resolves the effective config: defaults, then the
// optional TOML file, then flag overrides.
func loadPipelineConfig(args []string) (config.PipelineConfig, error) {
	fs := flag.NewFlagSet("shapectl", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a TOML pipeline config")
	input := fs.String("input", "", "record file to decode")
	surface := fs.String("surface", "", "render surface: noop, log, or raster")
	strict := fs.Bool("strict", false, "fail on short-parameter draws instead of skipping")
	if err := fs.Parse(args); err != nil {
		return config.PipelineConfig{}, err
	}

	cfg := config.DefaultPipelineConfig()
	if *configPath != "" {
		loaded, err := config.LoadPipelineConfig(*configPath)
		if err != nil {
			return config.PipelineConfig{}, err
		}
		cfg = loaded
	}

	if v := strings.TrimSpace(*input); v != "" {
		cfg.Input = v
	}
	if v := strings.TrimSpace(*surface); v != "" {
		cfg.Surface = config.SurfaceKind(v)
	}
	if *strict {
		cfg.StrictParams = true
	}

	if err := config.ValidatePipelineConfig(cfg); err != nil {
		return config.PipelineConfig{}, err
	}
	return cfg, nil
}
