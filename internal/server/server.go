// Package server implements the preview HTTP server: rendered pages with the
// sidebar menu, a collapsible in-page outline and edit links, plus a small
// JSON API over the same data.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/docnav/internal/config"
	"git.home.luguber.info/inful/docnav/internal/content"
	"git.home.luguber.info/inful/docnav/internal/index"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/menu"
	"git.home.luguber.info/inful/docnav/internal/metrics"
	"git.home.luguber.info/inful/docnav/internal/outline"
	"git.home.luguber.info/inful/docnav/internal/server/middleware"
)

// Server represents the preview server.
type Server struct {
	cfg      *config.Config
	store    index.Store
	sessions *outline.SessionStore
	recorder metrics.Recorder
	registry *prom.Registry
	logger   *slog.Logger
	router   *chi.Mux
	server   *http.Server

	mu       sync.RWMutex
	snapshot snapshot
}

// snapshot is the page set served until the next Refresh.
type snapshot struct {
	bySlug    map[string]content.Page
	records   []menu.PageRecord
	indexedAt time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithRecorder attaches a metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(s *Server) { s.recorder = r }
}

// WithRegistry sets the registry served on the metrics path.
func WithRegistry(reg *prom.Registry) Option {
	return func(s *Server) { s.registry = reg }
}

// WithLogger overrides slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// New creates a server reading pages from store. Call Refresh to load them.
func New(cfg *config.Config, store index.Store, opts ...Option) *Server {
	s := &Server{
		cfg:      cfg,
		store:    store,
		sessions: outline.NewSessionStore(cfg.Server.SessionTTL),
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
		router:   chi.NewRouter(),
		snapshot: snapshot{bySlug: map[string]content.Page{}},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.setupRoutes()

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// setupRoutes configures all routes.
func (s *Server) setupRoutes() {
	s.router.Use(chimw.RequestID)
	s.router.Use(chimw.RealIP)
	s.router.Use(middleware.RequestLogger(s.logger))
	s.router.Use(middleware.Recover(s.logger))
	s.router.Use(chimw.Timeout(30 * time.Second))

	s.router.Get("/health", s.handleHealth)
	if s.cfg.Metrics.Enabled {
		s.router.Handle(s.cfg.Metrics.Path, metrics.HTTPHandler(s.registry))
	}

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/menu", s.handleMenu)
		r.Get("/outline", s.handleOutline)
		r.Post("/outline/{session}/toggle/{index}", s.handleToggle)
	})

	s.router.Get("/*", s.handlePage)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Refresh replaces the served page set with the current store content.
func (s *Server) Refresh(ctx context.Context) error {
	pages, err := s.store.Pages(ctx)
	if err != nil {
		return err
	}
	snap := snapshot{
		bySlug:    make(map[string]content.Page, len(pages)),
		records:   content.Records(pages, ""),
		indexedAt: time.Now().UTC(),
	}
	for _, p := range pages {
		snap.bySlug[p.Slug] = p
	}

	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()

	s.logger.Debug("Preview snapshot refreshed", logfields.Pages(len(pages)))
	return nil
}

func (s *Server) current() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Preview server listening", slog.String("addr", s.server.Addr))
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
