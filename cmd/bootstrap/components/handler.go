package components

import (
	"egress/internal/handler"
	"egress/internal/handler/api"
	"egress/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReminderHandler,
		api.NewCancelHandler,
		api.NewRedirectHandler,
		api.NewDispatchHandler,
		api.NewDebugHandler,
		middleware.NewDispatchGuard,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	reminder *api.ReminderHandler,
	cancel *api.CancelHandler,
	redirect *api.RedirectHandler,
	dispatch *api.DispatchHandler,
	debug *api.DebugHandler,
) handler.Handlers {
	return handler.Handlers{
		Reminder: reminder,
		Cancel:   cancel,
		Redirect: redirect,
		Dispatch: dispatch,
		Debug:    debug,
	}
}
