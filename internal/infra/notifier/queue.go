package notifier

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"egress/internal/domain/reminder"
	"egress/internal/usecase/shared"
)

// ConfirmationQueue sends confirmation emails from a fixed pool of workers.
// Failures and drops are logged and never reach the request that enqueued.
type ConfirmationQueue struct {
	notifier shared.Notifier
	logger   *slog.Logger
	timeout  time.Duration
	workers  int

	jobs    chan *reminder.Reminder
	wg      sync.WaitGroup
	mu      sync.RWMutex
	closed  bool
	started bool
}

func NewConfirmationQueue(n shared.Notifier, logger *slog.Logger, size, workers int, timeout time.Duration) *ConfirmationQueue {
	if size < 1 {
		size = 1
	}
	if workers < 1 {
		workers = 1
	}
	return &ConfirmationQueue{
		notifier: n,
		logger:   logger,
		timeout:  timeout,
		workers:  workers,
		jobs:     make(chan *reminder.Reminder, size),
	}
}

func (q *ConfirmationQueue) Start() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.started || q.closed {
		return
	}
	q.started = true
	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.work()
	}
}

// Enqueue never blocks. A full or stopped queue drops the confirmation.
func (q *ConfirmationQueue) Enqueue(r *reminder.Reminder) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		q.logger.Warn("confirmation dropped: queue stopped", "reminder_id", r.ID())
		return
	}
	select {
	case q.jobs <- r:
	default:
		q.logger.Error("confirmation dropped: queue full", "reminder_id", r.ID())
	}
}

// Stop closes the queue and waits for in-flight sends until ctx is done.
func (q *ConfirmationQueue) Stop(ctx context.Context) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	close(q.jobs)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *ConfirmationQueue) work() {
	defer q.wg.Done()
	for r := range q.jobs {
		q.send(r)
	}
}

func (q *ConfirmationQueue) send(r *reminder.Reminder) {
	defer func() {
		if p := recover(); p != nil {
			q.logger.Error("failed to send confirmation email",
				"reminder_id", r.ID(),
				"panic", p,
				"stack", string(debug.Stack()))
		}
	}()

	ctx := context.Background()
	if q.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.timeout)
		defer cancel()
	}
	if err := q.notifier.Notify(ctx, shared.IntentConfirmation, r); err != nil {
		q.logger.Error("failed to send confirmation email", "reminder_id", r.ID(), "error", err)
	}
}
