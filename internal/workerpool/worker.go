package workerpool

import (
	"fmt"
	"runtime/debug"
	"time"
)

type worker struct {
	id int
	// done is closed when the loop returns; nil once the worker was joined.
	done chan struct{}
}

func (p *Pool) runWorker(w *worker, q *queue) {
	defer close(w.done)
	defer p.alive.Add(-1)

	for {
		job, ok := q.pop()
		if !ok {
			p.log.Debug("worker disconnected; shutting down", "worker", w.id)
			return
		}

		p.log.Debug("worker got a job; executing", "worker", w.id)
		if !p.runJob(w, job) {
			return
		}
	}
}

// runJob reports false when the job panicked. The panic is logged and the
// worker stops for good.
func (p *Pool) runJob(w *worker, job Job) (ok bool) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			p.panicked.Add(1)
			p.recorder.JobPanicked()
			p.log.Error("job panicked; worker terminated",
				"worker", w.id,
				"panic", fmt.Sprintf("%v", r),
				"stack_trace", string(debug.Stack()),
			)
			ok = false
		}
	}()

	job()

	p.completed.Add(1)
	p.recorder.JobCompleted(time.Since(start))
	return true
}

func (w *worker) join() {
	if w.done == nil {
		return
	}
	<-w.done
	w.done = nil
}
