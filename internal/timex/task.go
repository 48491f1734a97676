package timex

import (
	"context"
	"sync"
	"time"
)

// Task is a deferred action that the caller can cancel or wait for.
type Task struct {
	cancel context.CancelFunc
	done   chan struct{}

	mu  sync.Mutex
	ran bool
}

// Schedule runs fn once after delay unless ctx is cancelled or Cancel is
// called first. A non-positive delay runs fn as soon as the goroutine starts.
func Schedule(ctx context.Context, delay time.Duration, fn func()) *Task {
	ctx, cancel := context.WithCancel(ctx)
	t := &Task{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(t.done)
		defer cancel()

		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-timer.C:
			t.mu.Lock()
			t.ran = true
			t.mu.Unlock()
			fn()
		case <-ctx.Done():
		}
	}()

	return t
}

// Cancel stops the task if it has not fired yet.
func (t *Task) Cancel() {
	t.cancel()
}

// Done is closed once the task either ran or was cancelled.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until Done and reports whether fn was executed.
func (t *Task) Wait() bool {
	<-t.done
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ran
}
