// Package workerpool runs fire-and-forget jobs on a fixed number of
// goroutines that share one unbounded FIFO queue. Close stops intake, lets
// the workers finish everything already queued and waits for them to exit.
package workerpool

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Pool runs jobs on a fixed set of long-lived workers. The worker count is
// decided in New and never changes.
type Pool struct {
	log      *slog.Logger
	recorder Recorder

	mu     sync.RWMutex
	sender *queue // producer side; nil once Close has begun
	queue  *queue // consumer side shared by the workers

	closeMu sync.Mutex
	workers []*worker

	alive     atomic.Int32
	submitted atomic.Int64
	completed atomic.Int64
	panicked  atomic.Int64
}

// Stats is a point-in-time snapshot of the pool's counters.
type Stats struct {
	Workers   int   `json:"workers"`
	Alive     int   `json:"alive"`
	Queued    int   `json:"queued"`
	Submitted int64 `json:"submitted"`
	Completed int64 `json:"completed"`
	Panicked  int64 `json:"panicked"`
}

// New starts size workers. A worker whose spawn fails is logged and left
// out, so the pool may be smaller than requested; New fails only when size
// is not positive or no worker started at all.
func New(size int, opts ...Option) (*Pool, error) {
	if size <= 0 {
		return nil, InvalidSizeError(size)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	q := newQueue()
	p := &Pool{
		log:      o.logger,
		recorder: o.recorder,
		sender:   q,
		queue:    q,
		workers:  make([]*worker, 0, size),
	}

	var spawnErr error
	for id := 0; id < size; id++ {
		w := &worker{id: id, done: make(chan struct{})}
		p.alive.Add(1)
		if err := o.spawner(id, func() { p.runWorker(w, q) }); err != nil {
			p.alive.Add(-1)
			spawnErr = multierr.Append(spawnErr, errors.Wrapf(err, "spawn worker %d", id))
			p.log.Warn("worker spawn failed; slot omitted", "worker", id, "error", err)
			continue
		}
		p.workers = append(p.workers, w)
	}

	if len(p.workers) == 0 {
		q.close()
		return nil, NoWorkersError(size, spawnErr)
	}

	p.log.Info("worker pool started",
		"requested", size,
		"workers", len(p.workers),
		"ids", p.WorkerIDs(),
	)
	return p, nil
}

// Execute enqueues job and returns without waiting for it to run.
// Calling Execute on a closed pool is a programming error and panics.
func (p *Pool) Execute(job Job) {
	if err := p.Submit(job); err != nil {
		panic(err)
	}
}

// Submit is Execute that reports ErrPoolClosed or ErrNilJob instead of
// panicking.
func (p *Pool) Submit(job Job) error {
	if job == nil {
		return ErrNilJob
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.sender == nil {
		return ErrPoolClosed
	}
	if err := p.sender.push(job); err != nil {
		return err
	}
	p.submitted.Add(1)
	p.recorder.JobSubmitted()
	return nil
}

// Close stops accepting jobs, lets the workers drain the queue and waits for
// every one of them to exit. It is safe to call more than once and from
// several goroutines.
func (p *Pool) Close() {
	p.closeMu.Lock()
	defer p.closeMu.Unlock()

	p.mu.Lock()
	sender := p.sender
	p.sender = nil
	p.mu.Unlock()

	if sender != nil {
		p.log.Info("shutting down all workers", "workers", len(p.workers))
		sender.close()
	}

	for _, w := range p.workers {
		if w.done != nil {
			p.log.Debug("shutting down worker", "worker", w.id)
		}
		w.join()
	}
}

// Size is the number of workers that were started.
func (p *Pool) Size() int {
	return len(p.workers)
}

// WorkerIDs lists the ids of the started workers in construction order.
func (p *Pool) WorkerIDs() []int {
	ids := make([]int, 0, len(p.workers))
	for _, w := range p.workers {
		ids = append(ids, w.id)
	}
	return ids
}

// Alive is the number of workers whose loop is still running.
func (p *Pool) Alive() int {
	return int(p.alive.Load())
}

// QueueLen is the number of jobs waiting for a worker.
func (p *Pool) QueueLen() int {
	return p.queue.len()
}

// Stats returns the current counters.
func (p *Pool) Stats() Stats {
	return Stats{
		Workers:   p.Size(),
		Alive:     p.Alive(),
		Queued:    p.QueueLen(),
		Submitted: p.submitted.Load(),
		Completed: p.completed.Load(),
		Panicked:  p.panicked.Load(),
	}
}
