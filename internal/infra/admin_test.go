package infra

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.ozon.dev/safariproxd/hello-server/internal/workerpool"
)

type fixedStats workerpool.Stats

func (f fixedStats) Stats() workerpool.Stats { return workerpool.Stats(f) }

func TestAdminServer_Routes(t *testing.T) {
	t.Parallel()

	healthy := fixedStats{Workers: 4, Alive: 4, Queued: 2, Submitted: 10, Completed: 8}
	dead := fixedStats{Workers: 2, Alive: 0, Panicked: 2}

	tests := []struct {
		name       string
		pool       PoolStats
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "Health_OK", pool: healthy, method: http.MethodGet, path: "/healthz", wantStatus: http.StatusOK, wantBody: "ok"},
		{name: "Health_NoWorkers", pool: dead, method: http.MethodGet, path: "/healthz", wantStatus: http.StatusServiceUnavailable, wantBody: "no live workers"},
		{name: "Stats", pool: healthy, method: http.MethodGet, path: "/stats", wantStatus: http.StatusOK, wantBody: `"queued":2`},
		{name: "Stats_WrongMethod", pool: healthy, method: http.MethodPost, path: "/stats", wantStatus: http.StatusMethodNotAllowed},
		{name: "Metrics", pool: healthy, method: http.MethodGet, path: "/metrics", wantStatus: http.StatusOK, wantBody: "go_goroutines"},
		{name: "Unknown", pool: healthy, method: http.MethodGet, path: "/resize", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			admin := NewAdmin("127.0.0.1:0", tt.pool)
			rec := httptest.NewRecorder()
			admin.Handler().ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestAdminServer_StatsJSON(t *testing.T) {
	t.Parallel()

	want := workerpool.Stats{Workers: 3, Alive: 2, Queued: 1, Submitted: 7, Completed: 5, Panicked: 1}
	admin := NewAdmin("127.0.0.1:0", fixedStats(want))

	rec := httptest.NewRecorder()
	admin.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got workerpool.Stats
	require.NoError(t, json.NewDecoder(strings.NewReader(rec.Body.String())).Decode(&got))
	assert.Equal(t, want, got)
}

func TestRunShutdown_RunsAllCallbacks(t *testing.T) {
	t.Parallel()

	var order []string
	errFirst := errors.New("first failed")

	err := runShutdown(time.Second,
		func(context.Context) error {
			order = append(order, "server")
			return errFirst
		},
		func(ctx context.Context) error {
			order = append(order, "admin")
			_, ok := ctx.Deadline()
			assert.True(t, ok)
			return nil
		},
		func(context.Context) error {
			order = append(order, "pool")
			return errors.New("pool timeout")
		},
	)

	assert.Equal(t, []string{"server", "admin", "pool"}, order)
	require.Error(t, err)
	assert.ErrorIs(t, err, errFirst)
	assert.Contains(t, err.Error(), "pool timeout")
}

func TestGraceful_ContextCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	called := make(chan struct{})

	done := make(chan error, 1)
	go func() {
		done <- Graceful(ctx, time.Second, func(context.Context) error {
			close(called)
			return nil
		})
	}()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Graceful did not return after cancel")
	}
	_, ok := <-called
	assert.False(t, ok)
}
