// Package server exposes queue introspection and state control over HTTP.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-eventqueue/pkg/common/http/handler"
	"github.com/huynhanx03/go-eventqueue/pkg/registry"
	"github.com/huynhanx03/go-eventqueue/pkg/settings"
	"github.com/huynhanx03/go-eventqueue/pkg/utils"
)

// Server is the introspection HTTP server.
type Server struct {
	cfg      settings.Server
	registry *registry.Registry
	gatherer prometheus.Gatherer
	log      *zap.Logger
	engine   *gin.Engine
}

// New builds the router. gatherer serves /metrics; nil disables the route.
func New(cfg settings.Server, reg *registry.Registry, gatherer prometheus.Gatherer, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	s := &Server{
		cfg:      cfg,
		registry: reg,
		gatherer: gatherer,
		log:      log.Named("server"),
		engine:   gin.New(),
	}
	s.engine.Use(gin.Recovery(), s.accessLog())
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	if s.gatherer != nil {
		s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}

	q := s.engine.Group("/queues")
	q.GET("", s.dump)
	q.GET("/:name", handler.Wrap(s.log, s.describe))
	q.POST("/:name/events", s.submit)
	q.POST("/:name/:action", handler.Wrap(s.log, s.changeState))
}

// Handler returns the router, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), utils.ToDuration(s.cfg.ShutdownTimeout))
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.log.Info("stopped")
	return nil
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}
