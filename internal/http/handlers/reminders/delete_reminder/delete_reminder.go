package deletereminder

import (
	"errors"
	e "healthmate/internal/core/domain/errors"
	"healthmate/internal/core/domain/reminder"
	"healthmate/internal/core/domain/user"
	"healthmate/internal/core/services"
	service "healthmate/internal/core/services/delete_reminder"
	"healthmate/internal/http/handlers/params"
	"healthmate/internal/http/handlers/response"
	"net/http"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Reminder response.Reminder `json:"reminder"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	reminderID := params.ReminderID(r)
	if reminderID == "" {
		response.RenderError(rw, "invalid reminder ID", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{ProfileID: params.ProfileID(r), ReminderID: reminderID},
	)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserNotAuthenticated):
			response.RenderUnauthorized(rw)
		case errors.Is(err, reminder.ErrStoreUnavailable):
			response.RenderUnavailable(rw)
		case errors.Is(err, reminder.ErrReminderNotFound):
			response.RenderNotFound(rw, err)
		case errors.Is(err, reminder.ErrInvalidOwner):
			response.RenderRejected(rw, err)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	rem := response.Reminder{}
	rem.FromDomainType(result.Reminder)
	response.Render(rw, Result{Reminder: rem}, http.StatusOK)
}
