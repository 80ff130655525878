//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"egress/internal/domain/reminder"
	"egress/internal/handler/api"
	resdto "egress/internal/handler/dto/response"
	"egress/internal/handler/middleware"
	"egress/internal/pkg/errs"
	"egress/internal/usecase/commands"
	"egress/tests/common/builder"
	"egress/tests/common/httptest"
	"egress/tests/common/testutil"
	commandsmock "egress/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReminderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReminderCommands
	handler      *api.ReminderHandler
}

func (s *ReminderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReminderCommands(s.mockCtrl)
	s.handler = api.NewReminderHandler(s.mockCommands)

	s.router.POST("/api/reminders", s.handler.Create)
}

func (s *ReminderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReminderHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReminderHandlerTestSuite))
}

const createURL = "/api/reminders"

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReminderHandlerTestSuite) TestCreate() {
	reqBody := builder.NewReminderBuilder().BuildCreateRequestDTO()
	created := builder.NewReminderBuilder().BuildPersisted()
	result := &commands.ArmReminderResult{
		Reminder:      created,
		TimeRemaining: reminder.TimeRemaining{Days: 6, Hours: 12, Minutes: 0, TotalHours: 156},
	}

	s.Run("success: returns 201 Created with the reminder snapshot", func() {
		s.mockCommands.EXPECT().Arm(gomock.Any(), reqBody.ToCommand()).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, createURL, reqBody, "")

		var body resdto.CreateReminderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		want := resdto.CreateReminderResponse{
			Success: true,
			Reminder: &resdto.ReminderResponse{
				ID:            created.ID().String(),
				ServiceName:   "Netflix",
				Deadline:      "2025-01-10T00:00:01Z",
				TriggerTime:   "2025-01-08T00:00:01Z",
				TimeRemaining: resdto.TimeRemainingResponse{Days: 6, Hours: 12, Minutes: 0, TotalHours: 156},
			},
		}
		if diff := cmp.Diff(want, body); diff != "" {
			s.Failf("response mismatch", "(-want +got):\n%s", diff)
		}
	})

	s.Run("success: optional fields may be omitted", func() {
		m := testutil.DtoMap(s.T(), reqBody, testutil.Field("timezoneOffset", nil), testutil.Field("safeMode", nil))
		expected := commands.ArmReminderRequest{
			ServiceName: reqBody.ServiceName,
			Date:        reqBody.Date,
			Email:       reqBody.Email,
		}
		s.mockCommands.EXPECT().Arm(gomock.Any(), expected).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, createURL, m, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on malformed payloads", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "timezoneOffset is a string", mutate: testutil.Field("timezoneOffset", "abc")},
			{name: "safeMode is a string", mutate: testutil.Field("safeMode", "yes")},
			{name: "serviceName is a number", mutate: testutil.Field("serviceName", 42)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				m := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, createURL, m, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, createURL, "{not json")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps use case errors to proper statuses", func() {
		cases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
			expectedField  string
		}{
			{
				name:           "field validation",
				err:            errs.Mark(reminder.NewFieldError(reminder.FieldEmail, "Invalid email address"), errs.ErrValidation),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid email address",
				expectedField:  reminder.FieldEmail,
			},
			{
				name:           "deadline too soon",
				err:            errs.Mark(reminder.NewFieldError(reminder.FieldDate, "Trial end date must be in the future"), errs.ErrValidation),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Trial end date must be in the future",
				expectedField:  reminder.FieldDate,
			},
			{
				name:           "magic hash retries exhausted",
				err:            errs.Mark(errors.New("duplicate"), errs.ErrMagicHashExhausted),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Failed to create reminder",
			},
			{
				name:           "store unavailable",
				err:            errs.Mark(errors.New("connection refused"), errs.ErrStoreUnavailable),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Failed to create reminder",
			},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Arm(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, createURL, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)

				if tc.expectedField != "" {
					var body struct {
						Detail struct {
							Field string `json:"field"`
						} `json:"detail"`
					}
					s.Require().NoError(jsonDecode(rec.Body.Bytes(), &body))
					s.Equal(tc.expectedField, body.Detail.Field)
				}
			})
		}
	})
}
