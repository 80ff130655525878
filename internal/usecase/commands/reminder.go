package commands

import (
	"context"
	"log/slog"

	"egress/internal/domain/reminder"
	"egress/internal/infra"
	"egress/internal/pkg/clock"
	"egress/internal/pkg/errs"
	"egress/internal/usecase/shared"
)

const maxMagicHashAttempts = 3

type CancelOutcome string

const (
	OutcomeNotFound         CancelOutcome = "not_found"
	OutcomeAlreadyCancelled CancelOutcome = "already_cancelled"
	OutcomeCancelled        CancelOutcome = "cancelled"
)

type ArmReminderRequest struct {
	ServiceName    string
	Date           string
	Email          string
	TimezoneOffset *int
	SafeMode       *bool
}

type ArmReminderResult struct {
	Reminder      *reminder.Reminder
	TimeRemaining reminder.TimeRemaining
}

type CancelResult struct {
	Outcome  CancelOutcome
	Reminder *reminder.Reminder
}

type ReminderCommands interface {
	Arm(ctx context.Context, req ArmReminderRequest) (*ArmReminderResult, error)
	CancelByToken(ctx context.Context, token string) (*CancelResult, error)
}

type reminderUseCaseImpl struct {
	store  shared.ReminderStore
	tokens shared.TokenGenerator
	queue  shared.ConfirmationQueue
	clock  clock.Clock
	logger *slog.Logger
}

func NewReminderUseCase(
	store shared.ReminderStore,
	tokens shared.TokenGenerator,
	queue shared.ConfirmationQueue,
	clk clock.Clock,
	logger *slog.Logger,
) ReminderCommands {
	return &reminderUseCaseImpl{
		store:  store,
		tokens: tokens,
		queue:  queue,
		clock:  clk,
		logger: logger,
	}
}

func (uc *reminderUseCaseImpl) Arm(ctx context.Context, req ArmReminderRequest) (*ArmReminderResult, error) {
	in, err := toArmInput(req)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	hash, err := uc.tokens.Generate()
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate magic hash")
	}
	candidate, err := reminder.NewReminder(&reminder.Services{Clock: uc.clock}, in, hash)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	var created *reminder.Reminder
	for attempt := 1; ; attempt++ {
		created, err = uc.store.Create(ctx, candidate)
		if err == nil {
			break
		}
		if !infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrStoreUnavailable)
		}
		if attempt == maxMagicHashAttempts {
			return nil, errs.Mark(err, errs.ErrMagicHashExhausted)
		}

		uc.logger.WarnContext(ctx, "magic hash collision, regenerating", "attempt", attempt)
		if hash, err = uc.tokens.Generate(); err != nil {
			return nil, errs.Wrap(err, "failed to generate magic hash")
		}
		candidate = candidate.WithMagicHash(hash)
	}

	uc.queue.Enqueue(created)

	return &ArmReminderResult{
		Reminder:      created,
		TimeRemaining: created.TimeUntilTrigger(uc.clock.Now()),
	}, nil
}

func (uc *reminderUseCaseImpl) CancelByToken(ctx context.Context, token string) (*CancelResult, error) {
	found, err := uc.store.FindByToken(ctx, token)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	if found == nil {
		return &CancelResult{Outcome: OutcomeNotFound}, nil
	}
	if found.IsCancelled() {
		return &CancelResult{Outcome: OutcomeAlreadyCancelled, Reminder: found}, nil
	}

	cancelled, err := uc.store.Cancel(ctx, found.ID())
	if infra.IsKind(err, infra.KindNotFound) {
		return &CancelResult{Outcome: OutcomeNotFound}, nil
	}
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	uc.logger.InfoContext(ctx, "reminder cancelled",
		"reminder_id", cancelled.ID(),
		"previous_status", found.Status())
	return &CancelResult{Outcome: OutcomeCancelled, Reminder: cancelled}, nil
}

func toArmInput(req ArmReminderRequest) (reminder.ArmInput, error) {
	name, err := reminder.NewServiceName(req.ServiceName)
	if err != nil {
		return reminder.ArmInput{}, err
	}
	email, err := reminder.NewEmail(req.Email)
	if err != nil {
		return reminder.ArmInput{}, err
	}

	minutes := 0
	if req.TimezoneOffset != nil {
		minutes = *req.TimezoneOffset
	}
	offset, err := reminder.NewTimezoneOffset(minutes)
	if err != nil {
		return reminder.ArmInput{}, err
	}

	local, err := reminder.ParseLocalDate(req.Date, offset.Minutes())
	if err != nil {
		return reminder.ArmInput{}, err
	}

	safeMode := true
	if req.SafeMode != nil {
		safeMode = *req.SafeMode
	}

	return reminder.ArmInput{
		Email:         email,
		ServiceName:   name,
		LocalDeadline: local,
		Offset:        offset,
		SafeMode:      safeMode,
	}, nil
}
