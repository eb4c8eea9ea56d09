package workerpool

import (
	"log/slog"

	"gitlab.ozon.dev/safariproxd/hello-server/internal/metrics"
)

type options struct {
	logger   *slog.Logger
	recorder Recorder
	spawner  Spawner
}

type Option func(*options)

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func WithRecorder(r Recorder) Option {
	return func(o *options) {
		if r != nil {
			o.recorder = r
		}
	}
}

// WithSpawner replaces the goroutine launcher used for workers.
func WithSpawner(s Spawner) Option {
	return func(o *options) {
		if s != nil {
			o.spawner = s
		}
	}
}

func defaultOptions() options {
	return options{
		logger:   slog.Default(),
		recorder: metrics.NewNoOpProvider(),
		spawner:  goSpawner,
	}
}
