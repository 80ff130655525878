package response

import (
	"time"

	"egress/internal/usecase/commands"
	"egress/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type TimeRemainingResponse struct {
	Days       int `json:"days"`
	Hours      int `json:"hours"`
	Minutes    int `json:"minutes"`
	TotalHours int `json:"totalHours"`
}

type ReminderResponse struct {
	ID            string                `json:"id"`
	ServiceName   string                `json:"serviceName"`
	Deadline      string                `json:"deadline"`
	TriggerTime   string                `json:"triggerTime"`
	TimeRemaining TimeRemainingResponse `json:"timeRemaining"`
}

type CreateReminderResponse struct {
	Success  bool              `json:"success"`
	Reminder *ReminderResponse `json:"reminder"`
}

func FromArmResult(res *commands.ArmReminderResult) (*CreateReminderResponse, error) {
	r := res.Reminder
	out := &ReminderResponse{
		ID:          r.ID().String(),
		ServiceName: r.ServiceName().String(),
		Deadline:    r.TrialEndUTC().UTC().Format(time.RFC3339),
		TriggerTime: r.EgressTriggerUTC().UTC().Format(time.RFC3339),
	}
	if err := copier.Copy(&out.TimeRemaining, &res.TimeRemaining); err != nil {
		return nil, err
	}
	return &CreateReminderResponse{Success: true, Reminder: out}, nil
}

type ReminderStatusResponse struct {
	ID                      uuid.UUID `json:"id"`
	Service                 string    `json:"service"`
	Email                   string    `json:"email"`
	Status                  string    `json:"status"`
	Deadline                time.Time `json:"deadline"`
	TriggerTime             time.Time `json:"triggerTime"`
	TriggerTimeLocal        string    `json:"triggerTimeLocal"`
	IsReady                 bool      `json:"isReady"`
	TimeUntilTriggerMinutes int64     `json:"timeUntilTriggerMinutes"`
	Created                 time.Time `json:"created"`
}

type DebugResponse struct {
	CurrentTime time.Time                `json:"currentTime"`
	Reminders   []ReminderStatusResponse `json:"reminders"`
}

func FromReminderViews(now time.Time, views []*queries.ReminderView) (*DebugResponse, error) {
	items := make([]ReminderStatusResponse, 0, len(views))
	for _, v := range views {
		var item ReminderStatusResponse
		if err := copier.Copy(&item, v); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return &DebugResponse{CurrentTime: now.UTC(), Reminders: items}, nil
}
