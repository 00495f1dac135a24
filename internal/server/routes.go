package server

import (
	"bytes"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/danmuck/shapectl/internal/auth"
	"github.com/danmuck/shapectl/internal/feature"
	"github.com/danmuck/shapectl/internal/observability"
	"github.com/danmuck/shapectl/internal/record"
	"github.com/danmuck/shapectl/internal/render"
	"github.com/danmuck/shapectl/internal/shape"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxRecordBytes bounds an upload well above the largest legal record
// (square: 4 + 8*8 bytes).
const maxRecordBytes = 1024

func (s *Server) registerRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(s.appeared).String(),
			"service": "shaped",
			"version": "0.0.1",
		})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router.GET("/status", s.handleStatus)

	guarded := s.router.Group("/")
	if s.cfg.AuthToken != "" {
		guarded.Use(bearerToken(auth.StaticToken{Token: s.cfg.AuthToken}))
	}
	guarded.POST("/records", s.handleDecode)
	guarded.POST("/render", s.handleRender)
}

func bearerToken(v auth.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer"))
		if err := v.Validate(token); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

func (s *Server) handleStatus(c *gin.Context) {
	s.mu.Lock()
	kind, loaded := s.pipeline.Kind()
	params := s.pipeline.Params()
	s.mu.Unlock()

	body := gin.H{"loaded": loaded}
	if loaded {
		body["kind"] = kind.String()
		body["params"] = params
	}
	c.JSON(http.StatusOK, body)
}

func (s *Server) handleDecode(c *gin.Context) {
	body := http.MaxBytesReader(c.Writer, c.Request.Body, maxRecordBytes)

	s.mu.Lock()
	err := s.pipeline.Decode(body)
	kind, _ := s.pipeline.Kind()
	s.mu.Unlock()

	if err != nil {
		reason := decodeReason(err)
		observability.RecordDecode("", "error")
		observability.RecordDecodeError(reason)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "reason": reason})
		return
	}

	observability.RecordDecode(kind.String(), "ok")
	c.JSON(http.StatusOK, gin.H{"status": "ok", "kind": kind.String()})
}

func (s *Server) handleRender(c *gin.Context) {
	raster := s.cfg.Pipeline.Raster
	surface := render.NewRaster(raster.Width, raster.Height)

	s.mu.Lock()
	kind, loaded := s.pipeline.Kind()
	err := s.pipeline.Render(surface)
	s.mu.Unlock()

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !loaded {
		c.Status(http.StatusNoContent)
		return
	}
	observability.RecordDraw(kind.String())

	var buf bytes.Buffer
	if err := surface.WritePNG(&buf, raster.ScaleWidth, raster.ScaleHeight); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func decodeReason(err error) string {
	switch {
	case errors.Is(err, record.ErrTruncated):
		return "truncated"
	case errors.Is(err, feature.ErrUnknownKind):
		return "unknown_kind"
	case errors.Is(err, shape.ErrKindNotRegistered):
		return "unregistered_kind"
	default:
		return "internal"
	}
}
