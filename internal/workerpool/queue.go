package workerpool

import "sync"

// queue is an unbounded FIFO shared by every worker. Closing it is the
// disconnect signal: buffered jobs are still handed out, after that pop
// reports ok == false.
type queue struct {
	mu     sync.Mutex
	ready  *sync.Cond
	jobs   []Job
	closed bool
}

func newQueue() *queue {
	q := &queue{}
	q.ready = sync.NewCond(&q.mu)
	return q
}

func (q *queue) push(job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrPoolClosed
	}
	q.jobs = append(q.jobs, job)
	q.ready.Signal()
	return nil
}

// pop blocks until a job is available or the queue is closed and drained.
// The lock is released before the job is returned.
func (q *queue) pop() (Job, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.jobs) == 0 {
		if q.closed {
			return nil, false
		}
		q.ready.Wait()
	}

	job := q.jobs[0]
	q.jobs[0] = nil
	q.jobs = q.jobs[1:]
	if len(q.jobs) == 0 {
		q.jobs = nil
	}
	return job, true
}

func (q *queue) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.ready.Broadcast()
}

func (q *queue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.jobs)
}
