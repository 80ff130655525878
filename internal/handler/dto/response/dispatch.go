package response

import (
	"fmt"

	"egress/internal/usecase/commands"
)

type DispatchResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Processed int    `json:"processed"`
	Sent      int    `json:"sent"`
	Failed    int    `json:"failed"`
	Skipped   int    `json:"skipped"`
}

func FromDispatchResult(res *commands.DispatchResult) *DispatchResponse {
	msg := fmt.Sprintf("Processed %d reminders", res.Processed)
	if *res == (commands.DispatchResult{}) {
		msg = "No pending reminders to process"
	}
	return &DispatchResponse{
		Success:   true,
		Message:   msg,
		Processed: res.Processed,
		Sent:      res.Sent,
		Failed:    res.Failed,
		Skipped:   res.Skipped,
	}
}

type DebugDispatchResponse struct {
	Success      bool              `json:"success"`
	CronResponse *DispatchResponse `json:"cronResponse"`
}
