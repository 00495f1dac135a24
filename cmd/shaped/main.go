package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/danmuck/shapectl/internal/config"
	"github.com/danmuck/shapectl/internal/feature"
	"github.com/danmuck/shapectl/internal/observability"
	"github.com/danmuck/shapectl/internal/server"
	"github.com/danmuck/shapectl/internal/shape"
)

func main() {
	observability.InitLogger("shaped")

	configPath := flag.String("config", "", "path to a TOML server config")
	flag.Parse()

	cfg := config.DefaultServerConfig()
	if *configPath != "" {
		loaded, err := config.LoadServerConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "shaped: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	var opts []feature.Option
	if cfg.Pipeline.StrictParams {
		opts = append(opts, feature.WithParamPolicy(feature.PolicyStrict))
	}
	pipeline := feature.NewPipeline(shape.Builtin(), opts...)

	srv := server.New(cfg, pipeline)
	if err := srv.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "shaped: %v\n", err)
		os.Exit(1)
	}
}
