package metrics

import "time"

type MetricsProvider interface {
	JobSubmitted()
	JobCompleted(duration time.Duration)
	JobPanicked()

	UpdateWorkerPoolMetrics(alive, queueSize int)

	RequestHandled(status, route string, duration time.Duration)
	ConnectionRejected(reason string)
}

type PrometheusProvider struct{}

func NewPrometheusProvider() *PrometheusProvider {
	return &PrometheusProvider{}
}

func (p *PrometheusProvider) JobSubmitted() {
	JobsSubmittedTotal.Inc()
}

func (p *PrometheusProvider) JobCompleted(duration time.Duration) {
	JobsCompletedTotal.Inc()
	JobDuration.Observe(duration.Seconds())
}

func (p *PrometheusProvider) JobPanicked() {
	JobPanicsTotal.Inc()
}

func (p *PrometheusProvider) UpdateWorkerPoolMetrics(alive, queueSize int) {
	WorkerPoolAlive.Set(float64(alive))
	WorkerPoolQueueSize.Set(float64(queueSize))
}

func (p *PrometheusProvider) RequestHandled(status, route string, duration time.Duration) {
	RequestsTotal.WithLabelValues(status).Inc()
	RequestDuration.WithLabelValues(route).Observe(duration.Seconds())
}

func (p *PrometheusProvider) ConnectionRejected(reason string) {
	ConnectionsRejected.WithLabelValues(reason).Inc()
}

type NoOpProvider struct{}

func NewNoOpProvider() *NoOpProvider {
	return &NoOpProvider{}
}

func (p *NoOpProvider) JobSubmitted()                                               {}
func (p *NoOpProvider) JobCompleted(duration time.Duration)                         {}
func (p *NoOpProvider) JobPanicked()                                                {}
func (p *NoOpProvider) UpdateWorkerPoolMetrics(alive, queueSize int)                {}
func (p *NoOpProvider) RequestHandled(status, route string, duration time.Duration) {}
func (p *NoOpProvider) ConnectionRejected(reason string)                            {}
