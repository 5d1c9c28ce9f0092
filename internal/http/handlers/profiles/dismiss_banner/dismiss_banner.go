package dismissbanner

import (
	"errors"
	e "healthmate/internal/core/domain/errors"
	"healthmate/internal/core/domain/reminder"
	"healthmate/internal/core/domain/user"
	"healthmate/internal/core/services"
	service "healthmate/internal/core/services/dismiss_banner"
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

type Result struct{}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	_, err := h.service.Run(r.Context(), service.Input{ProfileID: params.ProfileID(r)})
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
	response.Render(rw, Result{}, http.StatusOK)
}
