// Package server exposes voice logs and their proposals over HTTP: the
// call-recording webhook writes voice logs, the read endpoints synthesize
// and render proposals on demand.
package server

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	proposal "github.com/alnah/go-proposal"
	"github.com/alnah/go-proposal/internal/store"
)

// Rate limit defaults for the webhook.
const (
	DefaultRateLimit  = 60
	DefaultRatePeriod = time.Minute
)

// maxBodyBytes bounds a webhook request body.
const maxBodyBytes = 10 << 20

// Generator produces proposals. Satisfied by *proposal.Generator and
// *proposal.GeneratorPool.
type Generator interface {
	Generate(ctx context.Context, input proposal.Input) (*proposal.Result, error)
}

// Compile-time interface implementation checks.
var (
	_ Generator = (*proposal.Generator)(nil)
	_ Generator = (*proposal.GeneratorPool)(nil)
)

// Pinger is implemented by stores that can report connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Config holds server settings.
type Config struct {
	APIKey     string        // required by the webhook; empty rejects every call
	RateLimit  int64         // webhook requests per RatePeriod and client IP
	RatePeriod time.Duration // zero means DefaultRatePeriod
}

// Server wires handlers to a store and a generator.
type Server struct {
	cfg   Config
	store store.Store
	gen   Generator
	log   logrus.FieldLogger
	now   func() time.Time
}

// New returns a Server. A nil log discards output.
func New(cfg Config, st store.Store, gen Generator, log logrus.FieldLogger) *Server {
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = DefaultRateLimit
	}
	if cfg.RatePeriod <= 0 {
		cfg.RatePeriod = DefaultRatePeriod
	}
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	return &Server{cfg: cfg, store: st, gen: gen, log: log, now: time.Now}
}

// Router builds the gin engine with every route.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.log), errorHandler(s.log))

	r.GET("/healthz", s.health)

	api := r.Group("/api/v1")

	webhook := api.Group("/webhook")
	webhook.Use(rateLimit(s.cfg.RateLimit, s.cfg.RatePeriod), apiKeyAuth(s.cfg.APIKey))
	{
		webhook.POST("/n8n", s.createVoiceLog)
	}

	logs := api.Group("/voice_logs")
	logs.Use(rateLimit(s.cfg.RateLimit, s.cfg.RatePeriod))
	{
		logs.GET("", s.listVoiceLogs)
		logs.GET("/:id/proposal", s.proposalJSON)
		logs.GET("/:id/proposal/html", s.proposalHTML)
		logs.GET("/:id/proposal/pdf", s.proposalPDF)
	}

	return r
}
