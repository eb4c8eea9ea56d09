package workerpool

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_FIFO(t *testing.T) {
	t.Parallel()

	q := newQueue()
	var got []int
	for i := 0; i < 5; i++ {
		require.NoError(t, q.push(func() { got = append(got, i) }))
	}
	assert.Equal(t, 5, q.len())

	for i := 0; i < 5; i++ {
		job, ok := q.pop()
		require.True(t, ok)
		job()
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
	assert.Zero(t, q.len())
}

func TestQueue_CloseDrainsBufferedJobs(t *testing.T) {
	t.Parallel()

	q := newQueue()
	require.NoError(t, q.push(func() {}))
	require.NoError(t, q.push(func() {}))
	q.close()

	assert.ErrorIs(t, q.push(func() {}), ErrPoolClosed)

	_, ok := q.pop()
	assert.True(t, ok)
	_, ok = q.pop()
	assert.True(t, ok)
	_, ok = q.pop()
	assert.False(t, ok)
}

func TestQueue_PopBlocksUntilPush(t *testing.T) {
	t.Parallel()

	q := newQueue()
	got := make(chan bool, 1)
	go func() {
		_, ok := q.pop()
		got <- ok
	}()

	select {
	case <-got:
		t.Fatal("pop returned on an empty queue")
	case <-time.After(20 * time.Millisecond):
	}

	require.NoError(t, q.push(func() {}))
	select {
	case ok := <-got:
		assert.True(t, ok)
	case <-time.After(time.Second):
		t.Fatal("pop did not wake up after push")
	}
}

func TestQueue_CloseWakesEveryWaiter(t *testing.T) {
	t.Parallel()

	const waiters = 4
	q := newQueue()

	var wg sync.WaitGroup
	results := make(chan bool, waiters)
	for i := 0; i < waiters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, ok := q.pop()
			results <- ok
		}()
	}

	time.Sleep(10 * time.Millisecond)
	q.close()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("waiters were not released by close")
	}

	close(results)
	for ok := range results {
		assert.False(t, ok)
	}
}
