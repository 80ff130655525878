//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"egress/internal/domain/reminder"
	"egress/internal/infra"
	"egress/internal/pkg/clock"
	"egress/internal/pkg/errs"
	"egress/internal/usecase/commands"
	"egress/tests/common/builder"
	sharedmock "egress/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReminderCommandsTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	store  *sharedmock.MockReminderStore
	tokens *sharedmock.MockTokenGenerator
	queue  *sharedmock.MockConfirmationQueue
	clock  *clock.MockClock
	uc     commands.ReminderCommands
}

func (s *ReminderCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = sharedmock.NewMockReminderStore(s.ctrl)
	s.tokens = sharedmock.NewMockTokenGenerator(s.ctrl)
	s.queue = sharedmock.NewMockConfirmationQueue(s.ctrl)
	s.clock = clock.NewMockClock(builder.DefaultNow)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.uc = commands.NewReminderUseCase(s.store, s.tokens, s.queue, s.clock, logger)
}

func TestReminderCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReminderCommandsTestSuite))
}

func validRequest() commands.ArmReminderRequest {
	offset := 0
	return commands.ArmReminderRequest{
		ServiceName:    "Netflix",
		Date:           "2025-01-10",
		Email:          "user@example.com",
		TimezoneOffset: &offset,
	}
}

func hashN(n int) string {
	return strings.Repeat(string(rune('a'+n)), 64)
}

func duplicateKeyErr() error {
	return infra.WrapRepoErr("failed to create reminder", errors.New("unique"), infra.KindDuplicateKey)
}

func echoCreate(_ context.Context, r *reminder.Reminder) (*reminder.Reminder, error) {
	return r, nil
}

// ================================================================================
// Arm
// ================================================================================

func (s *ReminderCommandsTestSuite) TestArm_Success() {
	s.tokens.EXPECT().Generate().Return(hashN(0), nil)
	s.store.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoCreate)
	s.queue.EXPECT().Enqueue(gomock.Any()).Times(1)

	got, err := s.uc.Arm(context.Background(), validRequest())
	s.Require().NoError(err)

	r := got.Reminder
	s.Equal(reminder.StatusPending, r.Status())
	s.Equal(hashN(0), r.MagicHash())
	s.Equal(time.Date(2025, 1, 10, 0, 0, 1, 0, time.UTC), r.TrialEndUTC())
	s.Equal(time.Date(2025, 1, 8, 0, 0, 1, 0, time.UTC), r.EgressTriggerUTC())
	s.Equal(reminder.TimeRemaining{Days: 6, Hours: 12, Minutes: 0, TotalHours: 156}, got.TimeRemaining)
}

func (s *ReminderCommandsTestSuite) TestArm_Defaults() {
	s.tokens.EXPECT().Generate().Return(hashN(0), nil)
	s.store.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoCreate)
	s.queue.EXPECT().Enqueue(gomock.Any())

	req := validRequest()
	req.TimezoneOffset = nil
	req.Date = "2025-01-10T23:30"

	got, err := s.uc.Arm(context.Background(), req)
	s.Require().NoError(err)
	s.Equal(0, got.Reminder.TimezoneOffset().Minutes())
	s.Equal(time.Date(2025, 1, 10, 0, 0, 1, 0, time.UTC), got.Reminder.TrialEndUTC(), "safe mode is on unless disabled")
}

func (s *ReminderCommandsTestSuite) TestArm_SafeModeDisabled() {
	s.tokens.EXPECT().Generate().Return(hashN(0), nil)
	s.store.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoCreate)
	s.queue.EXPECT().Enqueue(gomock.Any())

	off := false
	offset := -300
	req := validRequest()
	req.Date = "2025-01-10T23:30"
	req.SafeMode = &off
	req.TimezoneOffset = &offset

	got, err := s.uc.Arm(context.Background(), req)
	s.Require().NoError(err)
	s.Equal(time.Date(2025, 1, 11, 4, 30, 0, 0, time.UTC), got.Reminder.TrialEndUTC())
}

func (s *ReminderCommandsTestSuite) TestArm_ValidationErrors() {
	offset := func(v int) *int { return &v }

	cases := []struct {
		name   string
		mutate func(*commands.ArmReminderRequest)
		field  string
	}{
		{"empty service name", func(r *commands.ArmReminderRequest) { r.ServiceName = "  " }, reminder.FieldServiceName},
		{"service name too long", func(r *commands.ArmReminderRequest) { r.ServiceName = strings.Repeat("x", 201) }, reminder.FieldServiceName},
		{"bad email", func(r *commands.ArmReminderRequest) { r.Email = "not-an-email" }, reminder.FieldEmail},
		{"offset out of range", func(r *commands.ArmReminderRequest) { r.TimezoneOffset = offset(900) }, reminder.FieldTimezoneOffset},
		{"unparseable date", func(r *commands.ArmReminderRequest) { r.Date = "next tuesday" }, reminder.FieldDate},
		{"deadline in the past", func(r *commands.ArmReminderRequest) { r.Date = "2024-12-31" }, reminder.FieldDate},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.tokens.EXPECT().Generate().Return(hashN(0), nil).AnyTimes()

			req := validRequest()
			tc.mutate(&req)
			_, err := s.uc.Arm(context.Background(), req)

			s.Require().Error(err)
			s.True(errs.Is(err, errs.ErrValidation))
			var fe *reminder.FieldError
			s.Require().ErrorAs(err, &fe)
			s.Equal(tc.field, fe.Field)
		})
	}
}

func (s *ReminderCommandsTestSuite) TestArm_RetriesOnHashCollision() {
	gomock.InOrder(
		s.tokens.EXPECT().Generate().Return(hashN(0), nil),
		s.tokens.EXPECT().Generate().Return(hashN(1), nil),
	)
	gomock.InOrder(
		s.store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, duplicateKeyErr()),
		s.store.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoCreate),
	)
	s.queue.EXPECT().Enqueue(gomock.Any())

	got, err := s.uc.Arm(context.Background(), validRequest())
	s.Require().NoError(err)
	s.Equal(hashN(1), got.Reminder.MagicHash())
}

func (s *ReminderCommandsTestSuite) TestArm_HashRetriesExhausted() {
	s.tokens.EXPECT().Generate().Return(hashN(0), nil).Times(3)
	s.store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, duplicateKeyErr()).Times(3)

	_, err := s.uc.Arm(context.Background(), validRequest())
	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrMagicHashExhausted))
}

func (s *ReminderCommandsTestSuite) TestArm_StoreFailure() {
	s.tokens.EXPECT().Generate().Return(hashN(0), nil)
	s.store.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, infra.WrapRepoErr("failed to create reminder", errors.New("connection refused")))

	_, err := s.uc.Arm(context.Background(), validRequest())
	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrStoreUnavailable))
	s.False(errs.Is(err, errs.ErrValidation))
}

func (s *ReminderCommandsTestSuite) TestArm_TokenFailure() {
	s.tokens.EXPECT().Generate().Return("", errors.New("entropy unavailable"))

	_, err := s.uc.Arm(context.Background(), validRequest())
	s.Error(err)
}

// ================================================================================
// CancelByToken
// ================================================================================

func (s *ReminderCommandsTestSuite) TestCancelByToken() {
	token := hashN(2)

	s.Run("unknown token", func() {
		s.store.EXPECT().FindByToken(gomock.Any(), token).Return(nil, nil)

		got, err := s.uc.CancelByToken(context.Background(), token)
		s.Require().NoError(err)
		s.Equal(commands.OutcomeNotFound, got.Outcome)
		s.Nil(got.Reminder)
	})

	s.Run("already cancelled", func() {
		existing := builder.NewReminderBuilder().WithStatus(reminder.StatusCancelled).BuildPersisted()
		s.store.EXPECT().FindByToken(gomock.Any(), token).Return(existing, nil)

		got, err := s.uc.CancelByToken(context.Background(), token)
		s.Require().NoError(err)
		s.Equal(commands.OutcomeAlreadyCancelled, got.Outcome)
		s.Equal(existing.ID(), got.Reminder.ID())
	})

	for _, status := range []reminder.Status{reminder.StatusPending, reminder.StatusSent, reminder.StatusFailed} {
		s.Run("cancels "+status.String(), func() {
			existing := builder.NewReminderBuilder().WithStatus(status).BuildPersisted()
			cancelled := builder.NewReminderBuilder().WithStatus(reminder.StatusCancelled).BuildPersisted()
			s.store.EXPECT().FindByToken(gomock.Any(), token).Return(existing, nil)
			s.store.EXPECT().Cancel(gomock.Any(), existing.ID()).Return(cancelled, nil)

			got, err := s.uc.CancelByToken(context.Background(), token)
			s.Require().NoError(err)
			s.Equal(commands.OutcomeCancelled, got.Outcome)
			s.True(got.Reminder.IsCancelled())
		})
	}

	s.Run("row vanished before cancel", func() {
		existing := builder.NewReminderBuilder().BuildPersisted()
		s.store.EXPECT().FindByToken(gomock.Any(), token).Return(existing, nil)
		s.store.EXPECT().Cancel(gomock.Any(), existing.ID()).
			Return(nil, infra.WrapRepoErr("failed to update reminder status", nil, infra.KindNotFound))

		got, err := s.uc.CancelByToken(context.Background(), token)
		s.Require().NoError(err)
		s.Equal(commands.OutcomeNotFound, got.Outcome)
	})

	s.Run("lookup failure", func() {
		s.store.EXPECT().FindByToken(gomock.Any(), token).
			Return(nil, infra.WrapRepoErr("failed to find reminder", errors.New("timeout")))

		_, err := s.uc.CancelByToken(context.Background(), token)
		s.Require().Error(err)
		s.True(errs.Is(err, errs.ErrStoreUnavailable))
	})
}
