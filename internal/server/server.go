package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ziadkadry99/bpguide/internal/guide"
	"github.com/ziadkadry99/bpguide/internal/live"
	"github.com/ziadkadry99/bpguide/internal/logging"
	"github.com/ziadkadry99/bpguide/internal/search"
	"github.com/ziadkadry99/bpguide/internal/site"
	"github.com/ziadkadry99/bpguide/internal/view"
)

// Config holds server configuration.
type Config struct {
	Port              int
	AllowAll          bool // allow all CORS and websocket origins (dev mode)
	ReadHeaderTimeout time.Duration
	ScrollThreshold   int
}

// Server serves the live guide: pages, assets, the JSON API and the
// websocket channel.
type Server struct {
	cfg        Config
	reg        *guide.Registry
	renderer   *site.Renderer
	index      *search.Index
	hub        *live.Hub
	logger     *zap.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server. The renderer must be in live mode.
func New(cfg Config, reg *guide.Registry, renderer *site.Renderer, index *search.Index, logger *zap.Logger) *Server {
	if cfg.ReadHeaderTimeout <= 0 {
		cfg.ReadHeaderTimeout = 10 * time.Second
	}
	if cfg.ScrollThreshold <= 0 {
		cfg.ScrollThreshold = view.DefaultScrollThreshold
	}
	s := &Server{
		cfg:      cfg,
		reg:      reg,
		renderer: renderer,
		index:    index,
		hub:      live.NewHub(reg, renderer, logger, cfg.ScrollThreshold, cfg.AllowAll),
		logger:   logger,
	}

	s.router = s.buildRouter()
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.Middleware(s.logger.Named("http")))
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// The websocket outlives any request timeout.
	s.hub.RegisterRoutes(r)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{
				"status":      "ok",
				"connections": s.hub.Count(),
			})
		})

		s.registerPages(r)
		s.registerAPI(r)
	})

	return r
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Hub returns the live session hub.
func (s *Server) Hub() *live.Hub { return s.hub }

// ServerConfig returns the server configuration.
func (s *Server) ServerConfig() Config { return s.cfg }

// serve blocks until the server is shut down. A Shutdown that lands first
// makes Serve return ErrServerClosed immediately.
func (s *Server) serve(ln net.Listener) error {
	s.logger.Info("server listening", zap.String("addr", ln.Addr().String()))
	if err := s.httpServer.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown closes the live sessions, then gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.CloseAll()
	return s.httpServer.Shutdown(ctx)
}

// Run serves until ctx is cancelled, then shuts down within grace.
func (s *Server) Run(ctx context.Context, grace time.Duration) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.Port))
	if err != nil {
		return fmt.Errorf("listening on port %d: %w", s.cfg.Port, err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.serve(ln)
	})
	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down", zap.Int("connections", s.hub.Count()))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
