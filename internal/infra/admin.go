package infra

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gitlab.ozon.dev/safariproxd/hello-server/internal/workerpool"
)

type PoolStats interface {
	Stats() workerpool.Stats
}

type AdminServer struct {
	srv  *http.Server
	pool PoolStats
}

func NewAdmin(addr string, pool PoolStats) *AdminServer {
	as := &AdminServer{pool: pool}

	mux := chi.NewMux()
	mux.Get("/healthz", as.handleHealth)
	mux.Get("/stats", as.handleStats)
	mux.Method(http.MethodGet, "/metrics", promhttp.Handler())

	as.srv = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
	}
	return as
}

func (a *AdminServer) Handler() http.Handler {
	return a.srv.Handler
}

func (a *AdminServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	if a.pool.Stats().Alive == 0 {
		http.Error(w, "no live workers", http.StatusServiceUnavailable)
		return
	}
	if _, err := w.Write([]byte("ok")); err != nil {
		slog.Warn("admin write failed", "error", err)
	}
}

func (a *AdminServer) handleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(a.pool.Stats()); err != nil {
		slog.Error("failed to encode pool stats", "error", err)
		http.Error(w, "encoding error", http.StatusInternalServerError)
	}
}

func (a *AdminServer) Start() {
	go func() {
		if err := a.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("admin listen error", "error", err)
		}
	}()
}

func (a *AdminServer) Shutdown(ctx context.Context) error {
	if err := a.srv.Shutdown(ctx); err != nil {
		slog.Warn("admin shutdown error", "error", err)
		return err
	}
	return nil
}
