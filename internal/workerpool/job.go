package workerpool

import "time"

// Job is a unit of work executed exactly once by one of the pool's workers.
type Job func()

//go:generate minimock -i Recorder -o ./mock/recorder_mock.go -n RecorderMock -p mock

// Recorder receives job lifecycle events. metrics.PrometheusProvider
// satisfies it.
type Recorder interface {
	JobSubmitted()
	JobCompleted(duration time.Duration)
	JobPanicked()
}

// Spawner starts run on a new goroutine for the worker with the given id.
// A non-nil error means the worker was not started.
type Spawner func(id int, run func()) error

func goSpawner(_ int, run func()) error {
	go run()
	return nil
}
