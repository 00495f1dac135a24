package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/danmuck/shapectl/internal/config"
	"github.com/danmuck/shapectl/internal/feature"
	"github.com/danmuck/shapectl/internal/logging"
	"github.com/danmuck/shapectl/internal/render"
	"github.com/danmuck/shapectl/internal/shape"
	"github.com/rs/zerolog/log"
)

var errNoRecord = errors.New("no record loaded")

func main() {
	logging.ConfigureRuntime()

	cfg, err := loadPipelineConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "shapectl: %v\n", err)
		os.Exit(1)
	}
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "shapectl: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.PipelineConfig) error {
	var opts []feature.Option
	if cfg.StrictParams {
		opts = append(opts, feature.WithParamPolicy(feature.PolicyStrict))
	}
	pipeline := feature.NewPipeline(shape.Builtin(), opts...)

	// Decode failures are recoverable; the exit code reflects loaded
	// state, not the specific failure.
	if err := decodeFile(pipeline, cfg.Input); err != nil {
		log.Warn().Err(err).Str("input", cfg.Input).Msg("decode_failed")
	}

	surface, finish, err := buildSurface(cfg)
	if err != nil {
		return err
	}
	if err := pipeline.Render(surface); err != nil {
		return err
	}
	if err := finish(); err != nil {
		return err
	}

	if !pipeline.IsLoaded() {
		return errNoRecord
	}
	kind, _ := pipeline.Kind()
	log.Info().Stringer("kind", kind).Msg("record_rendered")
	return nil
}

func decodeFile(p *feature.Pipeline, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return p.Decode(f)
}

// buildSurface returns the configured surface and a finish hook that
// flushes any backing output.
func buildSurface(cfg config.PipelineConfig) (render.Surface, func() error, error) {
	noFinish := func() error { return nil }

	switch cfg.Surface {
	case config.SurfaceLog:
		return render.Log{Logger: log.Logger}, noFinish, nil
	case config.SurfaceRaster:
		raster := render.NewRaster(cfg.Raster.Width, cfg.Raster.Height)
		finish := func() error {
			f, err := os.Create(cfg.Raster.Output)
			if err != nil {
				return err
			}
			defer f.Close()
			return raster.WritePNG(f, cfg.Raster.ScaleWidth, cfg.Raster.ScaleHeight)
		}
		return raster, finish, nil
	case config.SurfaceNoop, "":
		return render.Noop{}, noFinish, nil
	default:
		return nil, nil, fmt.Errorf("unknown surface %q", cfg.Surface)
	}
}
