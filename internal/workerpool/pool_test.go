package workerpool

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.ozon.dev/safariproxd/hello-server/internal/workerpool/mock"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestPool(t *testing.T, size int, opts ...Option) *Pool {
	t.Helper()
	opts = append([]Option{WithLogger(quietLogger())}, opts...)
	p, err := New(size, opts...)
	require.NoError(t, err)
	t.Cleanup(p.Close)
	return p
}

func waitTimeout(t *testing.T, wg *sync.WaitGroup, d time.Duration) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(d):
		t.Fatalf("jobs did not finish within %s", d)
	}
}

func TestNew_Size(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		size    int
		wantErr error
	}{
		{name: "Zero", size: 0, wantErr: ErrInvalidSize},
		{name: "Negative", size: -3, wantErr: ErrInvalidSize},
		{name: "One", size: 1},
		{name: "Four", size: 4},
		{name: "Thirteen", size: 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := New(tt.size, WithLogger(quietLogger()))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, p)

				var cerr ConstructionError
				require.True(t, errors.As(err, &cerr))
				assert.Equal(t, ErrorCodeInvalidSize, cerr.Code)
				return
			}
			require.NoError(t, err)
			defer p.Close()

			assert.Equal(t, tt.size, p.Size())
			assert.Len(t, p.WorkerIDs(), tt.size)
			assert.Equal(t, 0, p.WorkerIDs()[0])
			assert.Equal(t, tt.size-1, p.WorkerIDs()[tt.size-1])
		})
	}
}

func TestNew_SpawnFailureOmitsWorker(t *testing.T) {
	t.Parallel()

	spawner := func(id int, run func()) error {
		if id%2 == 1 {
			return errors.New("thread limit reached")
		}
		go run()
		return nil
	}

	p := newTestPool(t, 4, WithSpawner(spawner))
	assert.Equal(t, 2, p.Size())
	assert.Equal(t, []int{0, 2}, p.WorkerIDs())
	assert.Eventually(t, func() bool { return p.Alive() == 2 }, time.Second, time.Millisecond)

	var ran atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		p.Execute(func() {
			defer wg.Done()
			ran.Add(1)
		})
	}
	waitTimeout(t, &wg, time.Second)
	assert.EqualValues(t, 10, ran.Load())
}

func TestNew_AllSpawnsFail(t *testing.T) {
	t.Parallel()

	spawner := func(int, func()) error { return errors.New("thread limit reached") }

	p, err := New(3, WithLogger(quietLogger()), WithSpawner(spawner))
	require.Error(t, err)
	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrNoWorkers)
	assert.NotErrorIs(t, err, ErrInvalidSize)
	assert.Contains(t, err.Error(), "spawn worker 0")
	assert.Contains(t, err.Error(), "spawn worker 2")
}

func TestPool_AllJobsRunExactlyOnce(t *testing.T) {
	t.Parallel()

	const (
		producers   = 8
		perProducer = 200
		total       = producers * perProducer
	)

	p, err := New(4, WithLogger(quietLogger()))
	require.NoError(t, err)

	runs := make([]atomic.Int32, total)
	var wg sync.WaitGroup
	for g := 0; g < producers; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				id := g*perProducer + i
				p.Execute(func() { runs[id].Add(1) })
			}
		}()
	}
	wg.Wait()
	p.Close()

	for id := range runs {
		require.EqualValues(t, 1, runs[id].Load(), "job %d", id)
	}
	stats := p.Stats()
	assert.EqualValues(t, total, stats.Submitted)
	assert.EqualValues(t, total, stats.Completed)
	assert.Zero(t, stats.Queued)
}

func TestPool_DequeuesInSubmissionOrder(t *testing.T) {
	t.Parallel()

	p, err := New(1, WithLogger(quietLogger()))
	require.NoError(t, err)

	var (
		mu  sync.Mutex
		got []int
	)
	for i := 0; i < 50; i++ {
		p.Execute(func() {
			mu.Lock()
			got = append(got, i)
			mu.Unlock()
		})
	}
	p.Close()

	require.Len(t, got, 50)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestPool_RunsJobsInParallel(t *testing.T) {
	t.Parallel()

	p := newTestPool(t, 4)

	var (
		mu  sync.Mutex
		ids []int
		wg  sync.WaitGroup
	)
	start := time.Now()
	for id := 0; id < 4; id++ {
		wg.Add(1)
		p.Execute(func() {
			defer wg.Done()
			time.Sleep(50 * time.Millisecond)
			mu.Lock()
			ids = append(ids, id)
			mu.Unlock()
		})
	}
	waitTimeout(t, &wg, time.Second)
	elapsed := time.Since(start)

	assert.ElementsMatch(t, []int{0, 1, 2, 3}, ids)
	assert.Less(t, elapsed, 150*time.Millisecond, "jobs ran serially")
}

func TestPool_LockNotHeldDuringExecution(t *testing.T) {
	t.Parallel()

	p := newTestPool(t, 2)

	slowStarted := make(chan struct{})
	var slowDone atomic.Bool
	p.Execute(func() {
		close(slowStarted)
		time.Sleep(200 * time.Millisecond)
		slowDone.Store(true)
	})
	<-slowStarted

	var fast atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 9; i++ {
		wg.Add(1)
		p.Execute(func() {
			defer wg.Done()
			fast.Add(1)
		})
	}
	waitTimeout(t, &wg, 150*time.Millisecond)

	assert.EqualValues(t, 9, fast.Load())
	assert.False(t, slowDone.Load(), "fast jobs waited for the slow one")
}

func TestPool_CloseIdlePoolReturnsPromptly(t *testing.T) {
	t.Parallel()

	p, err := New(2, WithLogger(quietLogger()))
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		p.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("Close hung on an idle pool")
	}
	assert.Zero(t, p.Alive())
}

func TestPool_CloseWaitsForQueuedJobs(t *testing.T) {
	t.Parallel()

	p, err := New(2, WithLogger(quietLogger()))
	require.NoError(t, err)

	var done atomic.Int32
	for i := 0; i < 20; i++ {
		p.Execute(func() {
			time.Sleep(2 * time.Millisecond)
			done.Add(1)
		})
	}
	p.Close()

	assert.EqualValues(t, 20, done.Load())
}

func TestPool_ExecuteAfterClose(t *testing.T) {
	t.Parallel()

	p, err := New(2, WithLogger(quietLogger()))
	require.NoError(t, err)
	p.Close()

	assert.PanicsWithError(t, ErrPoolClosed.Error(), func() { p.Execute(func() {}) })
	assert.ErrorIs(t, p.Submit(func() {}), ErrPoolClosed)
	assert.Zero(t, p.Stats().Submitted)
}

func TestPool_NilJob(t *testing.T) {
	t.Parallel()

	p := newTestPool(t, 1)

	assert.ErrorIs(t, p.Submit(nil), ErrNilJob)
	assert.PanicsWithError(t, ErrNilJob.Error(), func() { p.Execute(nil) })
}

func TestPool_CloseIdempotent(t *testing.T) {
	t.Parallel()

	p, err := New(3, WithLogger(quietLogger()))
	require.NoError(t, err)
	p.Execute(func() { time.Sleep(10 * time.Millisecond) })

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Close()
		}()
	}
	waitTimeout(t, &wg, time.Second)

	assert.NotPanics(t, p.Close)
	assert.Zero(t, p.Alive())
}

func TestPool_PanickingJobTerminatesWorker(t *testing.T) {
	t.Parallel()

	rec := mock.NewRecorderMock(minimock.NewController(t))
	rec.JobSubmittedMock.Times(6).Return()
	rec.JobCompletedMock.Times(5).Return()
	rec.JobPanickedMock.Times(1).Return()

	p := newTestPool(t, 2, WithRecorder(rec))
	require.Eventually(t, func() bool { return p.Alive() == 2 }, time.Second, time.Millisecond)

	p.Execute(func() { panic("boom") })
	require.Eventually(t, func() bool { return p.Alive() == 1 }, time.Second, time.Millisecond)

	var wg sync.WaitGroup
	var ran atomic.Int32
	for i := 0; i < 5; i++ {
		wg.Add(1)
		p.Execute(func() {
			defer wg.Done()
			ran.Add(1)
		})
	}
	waitTimeout(t, &wg, time.Second)
	assert.Equal(t, 1, p.Alive())

	p.Close()
	stats := p.Stats()
	assert.Equal(t, 2, stats.Workers)
	assert.EqualValues(t, 1, stats.Panicked)
	assert.EqualValues(t, 5, stats.Completed)
	assert.EqualValues(t, 5, ran.Load())
	assert.EqualValues(t, 1, rec.JobPanickedAfterCounter())
	assert.EqualValues(t, 6, rec.JobSubmittedAfterCounter())
	assert.EqualValues(t, 5, rec.JobCompletedAfterCounter())
}

func TestPool_CloseAfterEveryWorkerPanicked(t *testing.T) {
	t.Parallel()

	p, err := New(1, WithLogger(quietLogger()))
	require.NoError(t, err)

	p.Execute(func() { panic("boom") })
	p.Execute(func() {})
	require.Eventually(t, func() bool { return p.Alive() == 0 }, time.Second, time.Millisecond)

	done := make(chan struct{})
	go func() {
		p.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Close hung after the last worker died")
	}
	assert.Equal(t, 1, p.QueueLen())
}
