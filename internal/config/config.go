package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// SurfaceKind selects the render backend.
type SurfaceKind string

const (
	SurfaceNoop   SurfaceKind = "noop"
	SurfaceLog    SurfaceKind = "log"
	SurfaceRaster SurfaceKind = "raster"
)

type RasterConfig struct {
	Width       int    `toml:"width"`
	Height      int    `toml:"height"`
	ScaleWidth  int    `toml:"scale_width"`
	ScaleHeight int    `toml:"scale_height"`
	Output      string `toml:"output"`
}

type PipelineConfig struct {
	Input        string       `toml:"input"`
	StrictParams bool         `toml:"strict_params"`
	Surface      SurfaceKind  `toml:"surface"`
	Raster       RasterConfig `toml:"raster"`
}

type ServerConfig struct {
	Addr        string         `toml:"addr"`
	CorsOrigins []string       `toml:"cors_origins"`
	AuthToken   string         `toml:"auth_token"`
	Pipeline    PipelineConfig `toml:"pipeline"`
}

func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		Input:   "features.dat",
		Surface: SurfaceNoop,
		Raster: RasterConfig{
			Width:  256,
			Height: 256,
			Output: "feature.png",
		},
	}
}

func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:     ":9400",
		Pipeline: DefaultPipelineConfig(),
	}
}

// LoadPipelineConfig reads path over the defaults; absent keys keep their
// default values.
func LoadPipelineConfig(path string) (PipelineConfig, error) {
	cfg := DefaultPipelineConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return PipelineConfig{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := ValidatePipelineConfig(cfg); err != nil {
		return PipelineConfig{}, err
	}
	return cfg, nil
}

func LoadServerConfig(path string) (ServerConfig, error) {
	cfg := DefaultServerConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return ServerConfig{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := ValidateServerConfig(cfg); err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}

func ValidatePipelineConfig(cfg PipelineConfig) error {
	if strings.TrimSpace(cfg.Input) == "" {
		return fmt.Errorf("pipeline config missing input")
	}
	return validateSurface(cfg)
}

// validateSurface checks the render backend selection; the server reuses
// it without requiring an input file.
func validateSurface(cfg PipelineConfig) error {
	switch cfg.Surface {
	case SurfaceNoop, SurfaceLog, SurfaceRaster:
	default:
		return fmt.Errorf("unknown surface %q", cfg.Surface)
	}
	if cfg.Surface == SurfaceRaster {
		if cfg.Raster.Width <= 0 || cfg.Raster.Height <= 0 {
			return fmt.Errorf("raster size must be positive, got %dx%d",
				cfg.Raster.Width, cfg.Raster.Height)
		}
		if strings.TrimSpace(cfg.Raster.Output) == "" {
			return fmt.Errorf("raster config missing output")
		}
	}
	return nil
}

func ValidateServerConfig(cfg ServerConfig) error {
	if strings.TrimSpace(cfg.Addr) == "" {
		return fmt.Errorf("server config missing addr")
	}
	return validateSurface(cfg.Pipeline)
}
