// Package dispatch provides the sequential execution context that owns all
// location and viewport state mutation.
package dispatch

import (
	"errors"
	"runtime/debug"
	"sync"

	"go.uber.org/zap"
)

// ErrClosed is returned by callers that could not hand work to a closed queue.
var ErrClosed = errors.New("dispatch queue closed")

// Queue runs submitted tasks one at a time, in submission order, on a single
// goroutine. Submitting never blocks on task execution.
type Queue struct {
	mu      sync.Mutex
	tasks   []func()
	closed  bool
	wake    chan struct{}
	stopped chan struct{}
	logger  *zap.Logger
}

func NewQueue(logger *zap.Logger) *Queue {
	q := &Queue{
		wake:    make(chan struct{}, 1),
		stopped: make(chan struct{}),
		logger:  logger.With(zap.String("component", "dispatch")),
	}
	go q.run()
	return q
}

// Async enqueues fn. It reports false when the queue is already closed.
func (q *Queue) Async(fn func()) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.tasks = append(q.tasks, fn)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
	return true
}

// Sync enqueues fn and waits until it has run. It must not be called from a
// task running on the queue.
func (q *Queue) Sync(fn func()) bool {
	done := make(chan struct{})
	if !q.Async(func() {
		defer close(done)
		fn()
	}) {
		return false
	}
	<-done
	return true
}

// Close stops accepting tasks, runs everything already queued and waits for
// the worker to exit. Calling Close more than once is safe.
func (q *Queue) Close() {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		select {
		case q.wake <- struct{}{}:
		default:
		}
	}
	q.mu.Unlock()
	<-q.stopped
}

func (q *Queue) run() {
	defer close(q.stopped)

	for range q.wake {
		for {
			q.mu.Lock()
			if len(q.tasks) == 0 {
				closed := q.closed
				q.mu.Unlock()
				if closed {
					return
				}
				break
			}
			task := q.tasks[0]
			q.tasks[0] = nil
			q.tasks = q.tasks[1:]
			q.mu.Unlock()

			q.execute(task)
		}
	}
}

func (q *Queue) execute(task func()) {
	defer func() {
		if err := recover(); err != nil {
			q.logger.Error("task panicked",
				zap.Any("error", err),
				zap.String("stack", string(debug.Stack())),
			)
		}
	}()
	task()
}
