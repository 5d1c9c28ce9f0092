package listreminders

import (
	"errors"
	e "healthmate/internal/core/domain/errors"
	"healthmate/internal/core/domain/reminder"
	"healthmate/internal/core/domain/user"
	"healthmate/internal/core/services"
	service "healthmate/internal/core/services/list_reminders"
	"healthmate/internal/http/handlers/params"
	"healthmate/internal/http/handlers/response"
	"net/http"
	"time"
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
	Reminders []response.Reminder `json:"reminders"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	loc, err := params.Location(r)
	if err != nil {
		response.RenderError(rw, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{ProfileID: params.ProfileID(r), Location: loc},
	)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserNotAuthenticated):
			response.RenderUnauthorized(rw)
		case errors.Is(err, reminder.ErrInvalidOwner):
			response.RenderRejected(rw, err)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	reminders := make([]response.Reminder, len(result.Reminders))
	for ix, item := range result.Reminders {
		reminders[ix].FromDomainType(item.Reminder)
		if item.NextAt.IsPresent {
			nextAt := item.NextAt.Value.In(time.UTC)
			reminders[ix].NextAt = &nextAt
		}
	}
	response.Render(rw, Result{Reminders: reminders}, http.StatusOK)
}
