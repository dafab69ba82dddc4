package goroutinepool

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolExecutesTasks(t *testing.T) {
	pool := NewPool(2, 16)
	pool.Start()
	defer pool.Stop()

	var executed int64
	done := make(chan struct{})

	err := pool.Submit(&Task{
		Function: func() error {
			atomic.AddInt64(&executed, 1)
			return nil
		},
		Callback: func(err error) {
			assert.NoError(t, err)
			close(done)
		},
	})
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("task did not complete")
	}
	assert.Equal(t, int64(1), atomic.LoadInt64(&executed))
}

func TestPoolReportsTaskError(t *testing.T) {
	pool := NewPool(1, 4)
	pool.Start()
	defer pool.Stop()

	done := make(chan error, 1)
	err := pool.Submit(&Task{
		Function: func() error { return errors.New("boom") },
		Callback: func(err error) { done <- err },
	})
	require.NoError(t, err)

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("callback never fired")
	}
}

func TestPoolRecoversFromPanic(t *testing.T) {
	pool := NewPool(1, 4)
	pool.Start()
	defer pool.Stop()

	done := make(chan error, 1)
	err := pool.Submit(&Task{
		Function: func() error { panic("kaboom") },
		Callback: func(err error) { done <- err },
	})
	require.NoError(t, err)

	select {
	case err := <-done:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "panic")
	case <-time.After(5 * time.Second):
		t.Fatal("callback never fired")
	}
}

func TestPoolRejectsWhenQueueFull(t *testing.T) {
	pool := NewPool(1, 1)
	// Deliberately not started: nothing drains the queue.

	require.NoError(t, pool.Submit(&Task{Function: func() error { return nil }}))

	var overloaded bool
	for i := 0; i < 4; i++ {
		if err := pool.Submit(&Task{Function: func() error { return nil }}); errors.Is(err, ErrPoolOverloaded) {
			overloaded = true
			break
		}
	}
	assert.True(t, overloaded)

	stats := pool.GetStats()
	assert.Greater(t, stats["failed_tasks"], int64(0))
}
