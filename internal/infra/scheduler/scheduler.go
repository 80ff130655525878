// Package scheduler triggers dispatch passes in-process on a cron schedule,
// for deployments without an external trigger.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"egress/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cron     *cron.Cron
	dispatch commands.DispatchCommands
	logger   *slog.Logger
}

// New registers a dispatch pass under spec (standard five-field cron syntax).
// Overlapping runs are skipped.
func New(spec string, dispatch commands.DispatchCommands, logger *slog.Logger) (*Scheduler, error) {
	cl := cronLogger{logger: logger}
	s := &Scheduler{
		cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		dispatch: dispatch,
		logger:   logger,
	}
	if _, err := s.cron.AddFunc(spec, s.RunOnce); err != nil {
		return nil, fmt.Errorf("invalid scheduler spec %q: %w", spec, err)
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("dispatch scheduler started", "entries", len(s.cron.Entries()))
}

// Stop waits for a running pass to finish or for ctx to end.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) RunOnce() {
	res, err := s.dispatch.RunPass(context.Background())
	if err != nil {
		s.logger.Error("scheduled dispatch pass failed", "error", err)
		return
	}
	s.logger.Info("scheduled dispatch pass complete",
		"processed", res.Processed,
		"sent", res.Sent,
		"failed", res.Failed,
		"skipped", res.Skipped)
}

type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
