// Package server exposes the component registry over HTTP: the full index,
// per-component entries, a health probe, and Prometheus metrics.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/studiokit/workbench/registry"
)

// Server serves the registry API.
type Server struct {
	index    *registry.Index
	logger   *slog.Logger
	registry *prometheus.Registry

	requestsTotal  *prometheus.CounterVec
	requestSeconds *prometheus.HistogramVec

	shutdownTimeout time.Duration
}

// Options configures a Server.
type Options struct {
	// ShutdownTimeout bounds graceful shutdown. Defaults to 10s.
	ShutdownTimeout time.Duration
}

// New creates a server over the given registry index.
func New(index *registry.Index, logger *slog.Logger, opts Options) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}

	promReg := prometheus.NewRegistry()
	s := &Server{
		index:    index,
		logger:   logger,
		registry: promReg,
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "workbench_http_requests_total",
			Help: "HTTP requests served, by route and status code.",
		}, []string{"route", "code"}),
		requestSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "workbench_http_request_duration_seconds",
			Help:    "HTTP request latency, by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		shutdownTimeout: opts.ShutdownTimeout,
	}
	promReg.MustRegister(s.requestsTotal, s.requestSeconds)
	return s
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /registry", s.instrument("registry", s.handleRegistry))
	mux.Handle("GET /registry/{name}", s.instrument("registry_entry", s.handleEntry))
	mux.Handle("GET /healthz", s.instrument("healthz", s.handleHealthz))
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return mux
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("registry server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve %s: %w", addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down registry server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) instrument(route string, next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)
		s.requestsTotal.WithLabelValues(route, fmt.Sprintf("%d", rec.status)).Inc()
		s.requestSeconds.WithLabelValues(route).Observe(time.Since(start).Seconds())
		s.logger.Debug("request served",
			"route", route,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start))
	})
}

func (s *Server) handleRegistry(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.index)
}

func (s *Server) handleEntry(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	entry, ok := s.index.Get(name)
	if !ok {
		s.writeJSON(w, http.StatusNotFound, map[string]string{
			"error": fmt.Sprintf("unknown component %q", name),
		})
		return
	}
	s.writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"components": s.index.Len(),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}
