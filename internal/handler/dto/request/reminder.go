package request

import "egress/internal/usecase/commands"

// CreateReminderRequest leaves required-field checks to the domain so that
// every rejection carries a field-level message.
type CreateReminderRequest struct {
	ServiceName    string `json:"serviceName"`
	Date           string `json:"date"`
	Email          string `json:"email"`
	TimezoneOffset *int   `json:"timezoneOffset,omitempty"`
	SafeMode       *bool  `json:"safeMode,omitempty"`
}

func (r *CreateReminderRequest) ToCommand() commands.ArmReminderRequest {
	return commands.ArmReminderRequest{
		ServiceName:    r.ServiceName,
		Date:           r.Date,
		Email:          r.Email,
		TimezoneOffset: r.TimezoneOffset,
		SafeMode:       r.SafeMode,
	}
}
