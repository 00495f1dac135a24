package server

import (
	"sync"
	"time"

	"github.com/danmuck/shapectl/internal/config"
	"github.com/danmuck/shapectl/internal/feature"
	"github.com/danmuck/shapectl/internal/observability"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Server exposes one record pipeline over HTTP. All pipeline access goes
// through one mutex; the pipeline itself is single-threaded.
type Server struct {
	cfg      config.ServerConfig
	router   *gin.Engine
	appeared time.Time

	mu       sync.Mutex
	pipeline *feature.Pipeline
}

func New(cfg config.ServerConfig, pipeline *feature.Pipeline) *Server {
	observability.RegisterMetrics()
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestLogger(log.Logger))
	r.Use(observability.RequestMetrics("shaped"))
	r.Use(cors.New(cors.Config{
		AllowOrigins: normalizeOrigins(cfg.CorsOrigins),
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	s := &Server{
		cfg:      cfg,
		router:   r,
		pipeline: pipeline,
		appeared: time.Now(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) HTTPRouter() *gin.Engine {
	return s.router
}

func (s *Server) Run() error {
	log.Info().Str("addr", s.cfg.Addr).Msg("shaped_listening")
	return s.router.Run(s.cfg.Addr)
}

func normalizeOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"http://localhost:3000"}
	}
	return origins
}
