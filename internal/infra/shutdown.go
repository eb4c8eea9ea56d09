package infra

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/multierr"
)

// Graceful blocks until SIGINT/SIGTERM or ctx is done, then runs every
// callback in order under one shared timeout. All callbacks run even if an
// earlier one fails; their errors are combined.
func Graceful(ctx context.Context, timeout time.Duration, cb ...func(context.Context) error) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		slog.Info("shutdown signal received", "signal", sig.String())
	case <-ctx.Done():
		slog.Info("shutdown requested", "reason", context.Cause(ctx))
	}

	return runShutdown(timeout, cb...)
}

func runShutdown(timeout time.Duration, cb ...func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var err error
	for _, f := range cb {
		err = multierr.Append(err, f(ctx))
	}
	if err != nil {
		slog.Error("shutdown finished with errors", "error", err)
		return err
	}
	slog.Info("shutdown complete")
	return nil
}
