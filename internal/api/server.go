// Package api exposes the assistant over HTTP.
//
// Routes live under /api with optional trailing
// slashes: init, analyze, upload, areas and test, plus a bare /health probe.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/sells-group/realty-insights/internal/assistant"
	"github.com/sells-group/realty-insights/internal/config"
)

const shutdownTimeout = 15 * time.Second

// Server is the HTTP API server.
type Server struct {
	router    chi.Router
	svc       *assistant.Service
	cfg       config.ServerConfig
	uploadDir string
	limiter   *rate.Limiter // nil when rate limiting is disabled
}

// NewServer builds a server with all routes and middleware.
func NewServer(svc *assistant.Service, cfg *config.Config) *Server {
	s := &Server{
		svc:       svc,
		cfg:       cfg.Server,
		uploadDir: cfg.Data.UploadDir,
	}
	if cfg.Server.RateLimit > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.Server.RateLimit), cfg.Server.Burst)
	}
	s.router = s.buildRouter()
	return s
}

// Router returns the chi router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zap.L().Info("api: listening", zap.String("addr", addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return eris.Wrap(err, "api: listen")
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		zap.L().Info("api: shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return eris.Wrap(httpSrv.Shutdown(shutdownCtx), "api: shutdown")
	})
	return g.Wait()
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	origins := []string{"*"}
	if len(s.cfg.CORSOrigins) > 0 {
		origins = s.cfg.CORSOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Use(rateLimit(s.limiter))

		r.Get("/init", s.handleInit)
		r.Post("/analyze", s.handleAnalyze)
		r.Post("/upload", s.handleUpload)
		r.Get("/areas", s.handleAreas)
		r.Get("/test", s.handleTest)
	})

	return r
}
