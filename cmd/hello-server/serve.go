package main

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	"golang.org/x/sync/errgroup"

	"gitlab.ozon.dev/safariproxd/hello-server/internal/config"
	"gitlab.ozon.dev/safariproxd/hello-server/internal/infra"
	"gitlab.ozon.dev/safariproxd/hello-server/internal/metrics"
	"gitlab.ozon.dev/safariproxd/hello-server/internal/tracing"
	"gitlab.ozon.dev/safariproxd/hello-server/internal/webserver"
	"gitlab.ozon.dev/safariproxd/hello-server/internal/workerpool"
)

type serveOptions struct {
	configPath string
	addr       string
	adminAddr  string
	logLevel   string
	workers    int
}

func newServeCmd() *cobra.Command {
	return (&serveOptions{}).command()
}

func (opts *serveOptions) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the listener and the worker pool.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			slog.SetDefault(newLogger(cfg))
			return run(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to the YAML config file")
	cmd.Flags().StringVar(&opts.addr, "addr", config.DefaultAddress, "Address to listen on")
	cmd.Flags().StringVar(&opts.adminAddr, "admin-addr", config.DefaultAdminAddress, "Admin HTTP address")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", config.DefaultWorkers, "Number of pool workers")
	return cmd
}

// load reads the config file, if any, and the environment, then applies the
// flags the user set explicitly on top of them.
func (opts *serveOptions) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Read(opts.configPath)
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	flags := cmd.Flags()
	if flags.Changed("addr") {
		cfg.Server.Address = opts.addr
	}
	if flags.Changed("admin-addr") {
		cfg.Admin.Address = opts.adminAddr
		cfg.Admin.Enabled = true
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flags.Changed("workers") {
		cfg.Server.Workers = opts.workers
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(cfg.Log.Level))); err != nil {
		level = slog.LevelInfo
	}
	handlerOpts := &slog.HandlerOptions{Level: level}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, handlerOpts))
}

func run(ctx context.Context, cfg *config.Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var shutdownTracing func(context.Context) error
	if cfg.Tracing.Enabled {
		var err error
		shutdownTracing, err = tracing.Init(ctx, cfg.Tracing.Endpoint)
		if err != nil {
			slog.Error("tracing disabled", "error", err)
		}
	}

	provider := newMetricsProvider(cfg)
	pool, err := workerpool.New(cfg.Server.Workers,
		workerpool.WithLogger(slog.Default()),
		workerpool.WithRecorder(provider),
	)
	if err != nil {
		return errors.Wrap(err, "build worker pool")
	}

	router, err := webserver.NewRouter(webserver.PagesFromDir(cfg.Server.TemplatesDir), cfg.Server.SleepDelay)
	if err != nil {
		pool.Close()
		return errors.Wrap(err, "load pages")
	}

	srvOpts := []webserver.Option{
		webserver.WithLogger(slog.Default()),
		webserver.WithMetrics(provider),
		webserver.WithReadTimeout(cfg.Server.ReadTimeout),
	}
	if cfg.Server.RateLimit.Limit > 0 {
		rate := limiter.Rate{Period: cfg.Server.RateLimit.Period, Limit: cfg.Server.RateLimit.Limit}
		srvOpts = append(srvOpts, webserver.WithLimiter(limiter.New(memory.NewStore(), rate)))
	}
	srv := webserver.New(cfg.Server.Address, pool, router, srvOpts...)
	if err := srv.Listen(); err != nil {
		pool.Close()
		return err
	}
	slog.Info("listening", "addr", srv.Addr().String(), "workers", pool.Size())

	callbacks := []func(context.Context) error{srv.Shutdown}
	if cfg.Admin.Enabled {
		admin := infra.NewAdmin(cfg.Admin.Address, pool)
		admin.Start()
		slog.Info("admin HTTP listening", "addr", cfg.Admin.Address)
		// curl -XGET 'http://localhost:6060/stats'
		// curl -XGET 'http://localhost:6060/metrics'
		callbacks = append(callbacks, admin.Shutdown)
	}
	callbacks = append(callbacks, closePool(pool))
	if shutdownTracing != nil {
		callbacks = append(callbacks, shutdownTracing)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Serve(gctx)
	})
	g.Go(func() error {
		reportPoolStats(gctx, pool, provider, cfg.Admin.StatsInterval)
		return nil
	})
	g.Go(func() error {
		defer cancel()
		return infra.Graceful(gctx, cfg.ShutdownTimeout, callbacks...)
	})
	return g.Wait()
}

// newMetricsProvider returns the Prometheus provider when the admin server
// is there to expose it.
func newMetricsProvider(cfg *config.Config) metrics.MetricsProvider {
	if !cfg.Admin.Enabled {
		return metrics.NewNoOpProvider()
	}
	return metrics.NewPrometheusProvider()
}

// closePool waits for the pool to drain, giving up when ctx expires. The
// workers keep draining in the background in that case.
func closePool(pool *workerpool.Pool) func(context.Context) error {
	return func(ctx context.Context) error {
		done := make(chan struct{})
		go func() {
			pool.Close()
			close(done)
		}()

		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "close worker pool")
		}
	}
}

func reportPoolStats(ctx context.Context, pool *workerpool.Pool, provider metrics.MetricsProvider, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stats := pool.Stats()
			provider.UpdateWorkerPoolMetrics(stats.Alive, stats.Queued)

			slog.Debug("Worker pool stats",
				"alive", stats.Alive,
				"total", stats.Workers,
				"queue_size", stats.Queued,
				"completed", stats.Completed,
				"panicked", stats.Panicked)
		}
	}
}
