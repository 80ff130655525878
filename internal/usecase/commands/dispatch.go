package commands

import (
	"context"
	"log/slog"
	"runtime/debug"
	"time"

	"egress/internal/domain/reminder"
	"egress/internal/pkg/clock"
	"egress/internal/pkg/errs"
	"egress/internal/usecase/shared"

	"golang.org/x/sync/errgroup"
)

type DispatchResult struct {
	Processed int `json:"processed"`
	Sent      int `json:"sent"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
}

type DispatchCommands interface {
	RunPass(ctx context.Context) (*DispatchResult, error)
}

type DispatchOptions struct {
	// Concurrency bounds how many reminders are in flight at once. Values
	// below 1 mean sequential processing in trigger order.
	Concurrency   int
	NotifyTimeout time.Duration
}

type dispatchOutcome int

const (
	outcomeSkipped dispatchOutcome = iota
	outcomeSent
	outcomeFailed
)

func (o dispatchOutcome) String() string {
	switch o {
	case outcomeSent:
		return "sent"
	case outcomeFailed:
		return "failed"
	default:
		return "skipped"
	}
}

type dispatchProcessor struct {
	store    shared.ReminderStore
	notifier shared.Notifier
	clock    clock.Clock
	logger   *slog.Logger
	opts     DispatchOptions
}

func NewDispatchProcessor(
	store shared.ReminderStore,
	notifier shared.Notifier,
	clk clock.Clock,
	logger *slog.Logger,
	opts DispatchOptions,
) DispatchCommands {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	return &dispatchProcessor{
		store:    store,
		notifier: notifier,
		clock:    clk,
		logger:   logger,
		opts:     opts,
	}
}

// RunPass processes every reminder due at the start of the pass. Only the
// initial lookup can fail the pass; per-reminder problems are logged and
// counted.
func (p *dispatchProcessor) RunPass(ctx context.Context) (*DispatchResult, error) {
	started := p.clock.Now()
	due, err := p.store.FindDuePending(ctx, started)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to find due reminders"), errs.ErrStoreUnavailable)
	}

	result := &DispatchResult{}
	if len(due) == 0 {
		return result, nil
	}

	// Each goroutine owns one slot; nothing else is shared between reminders.
	outcomes := make([]dispatchOutcome, len(due))
	var g errgroup.Group
	g.SetLimit(p.opts.Concurrency)
	for i, r := range due {
		g.Go(func() error {
			outcomes[i] = p.processOne(ctx, r)
			return nil
		})
	}
	// Workers never return errors; outcomes carry every per-reminder result.
	_ = g.Wait()

	for _, o := range outcomes {
		switch o {
		case outcomeSent:
			result.Sent++
		case outcomeFailed:
			result.Failed++
		default:
			result.Skipped++
		}
	}
	result.Processed = result.Sent + result.Failed

	p.logger.InfoContext(ctx, "dispatch pass finished",
		"due", len(due),
		"processed", result.Processed,
		"sent", result.Sent,
		"failed", result.Failed,
		"skipped", result.Skipped,
		"duration", p.clock.Now().Sub(started))
	return result, nil
}

func (p *dispatchProcessor) processOne(ctx context.Context, candidate *reminder.Reminder) (outcome dispatchOutcome) {
	log := p.logger.With("reminder_id", candidate.ID())
	// A locked row must be finalized even if the caller goes away mid-pass.
	finalizeCtx := context.WithoutCancel(ctx)

	locked, delivered := false, false
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch {
		case delivered:
			outcome = outcomeSent
		case locked:
			outcome = outcomeFailed
			if _, serr := p.store.SetStatus(finalizeCtx, candidate.ID(), reminder.StatusFailed); serr != nil {
				log.ErrorContext(ctx, "failed to mark reminder failed", "error", serr)
			}
		default:
			outcome = outcomeSkipped
		}
		log.ErrorContext(ctx, "panic while dispatching reminder",
			"outcome", outcome.String(),
			"panic", r,
			"stack", string(debug.Stack()))
	}()

	claimed, err := p.store.TryLock(ctx, candidate.ID())
	if err != nil {
		log.ErrorContext(ctx, "failed to lock reminder", "outcome", outcomeSkipped.String(), "error", err)
		return outcomeSkipped
	}
	if claimed == nil {
		log.DebugContext(ctx, "reminder already claimed", "outcome", outcomeSkipped.String())
		return outcomeSkipped
	}
	locked = true

	if err := p.notify(ctx, claimed); err != nil {
		log.ErrorContext(ctx, "trigger alert failed", "outcome", outcomeFailed.String(), "error", err)
		if _, serr := p.store.SetStatus(finalizeCtx, claimed.ID(), reminder.StatusFailed); serr != nil {
			log.ErrorContext(ctx, "failed to mark reminder failed", "error", serr)
		}
		return outcomeFailed
	}
	delivered = true

	if _, serr := p.store.SetStatus(finalizeCtx, claimed.ID(), reminder.StatusSent); serr != nil {
		log.ErrorContext(ctx, "alert delivered but status not finalized", "error", serr)
	}
	log.InfoContext(ctx, "trigger alert sent", "outcome", outcomeSent.String())
	return outcomeSent
}

func (p *dispatchProcessor) notify(ctx context.Context, r *reminder.Reminder) error {
	if p.opts.NotifyTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.opts.NotifyTimeout)
		defer cancel()
	}
	return p.notifier.Notify(ctx, shared.IntentTriggerAlert, r)
}
