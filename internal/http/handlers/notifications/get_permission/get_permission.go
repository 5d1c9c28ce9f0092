package getpermission

import (
	"errors"
	e "healthmate/internal/core/domain/errors"
	"healthmate/internal/core/domain/user"
	"healthmate/internal/core/services"
	service "healthmate/internal/core/services/get_notification_permission"
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
	Permission response.Permission `json:"permission"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), service.Input{})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserNotAuthenticated):
			response.RenderUnauthorized(rw)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	permission := response.Permission{}
	permission.FromDomainType(result.Permission)
	response.Render(rw, Result{Permission: permission}, http.StatusOK)
}
