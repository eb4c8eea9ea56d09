package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	JobsSubmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hello_pool_jobs_submitted_total",
		Help: "The total number of jobs accepted by the worker pool",
	})

	JobsCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hello_pool_jobs_completed_total",
		Help: "The total number of jobs that ran to completion",
	})

	JobPanicsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hello_pool_job_panics_total",
		Help: "The total number of jobs that panicked and took their worker down",
	})

	JobDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "hello_pool_job_duration_seconds",
		Help:    "Duration of completed jobs in seconds",
		Buckets: prometheus.DefBuckets,
	})

	WorkerPoolAlive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hello_pool_workers_alive",
		Help: "Number of workers still running",
	})

	WorkerPoolQueueSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hello_pool_queue_size",
		Help: "Number of jobs waiting for a worker",
	})

	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hello_requests_total",
		Help: "Total number of answered requests by status line",
	}, []string{"status"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hello_request_duration_seconds",
		Help:    "Time from job start to response written, by route",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	ConnectionsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hello_connections_rejected_total",
		Help: "Total number of connections closed without being handled",
	}, []string{"reason"})
)
