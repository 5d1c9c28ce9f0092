package events

import (
	e "healthmate/internal/core/domain/errors"
	"healthmate/internal/core/domain/logging"
	"healthmate/internal/core/domain/reminder"
	"healthmate/internal/core/services/auth"
	"healthmate/internal/http/handlers/params"
	"healthmate/internal/http/handlers/response"
	"healthmate/internal/implementations/events"
	"net/http"
	"time"
)

type Watcher interface {
	Watch(owner reminder.Owner, location *time.Location) (release func())
}

// Handler streams the owner's banner and sound events. Due reminders of the
// owner are checked only while at least one such stream is open.
type Handler struct {
	log       logging.Logger
	sseServer http.Handler
	watcher   Watcher
}

func New(log logging.Logger, sseServer http.Handler, watcher Watcher) *Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	if watcher == nil {
		panic(e.NewNilArgumentError("watcher"))
	}
	return &Handler{log: log, sseServer: sseServer, watcher: watcher}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		response.RenderUnauthorized(rw)
		return
	}
	owner := reminder.NewOwner(userID, params.ProfileID(r))
	if err := owner.Validate(); err != nil {
		response.RenderRejected(rw, err)
		return
	}
	loc, err := params.Location(r)
	if err != nil {
		response.RenderError(rw, err.Error(), http.StatusBadRequest)
		return
	}

	release := h.watcher.Watch(owner, loc)
	defer release()

	h.log.Info(r.Context(), "Subscribed to reminder events.", logging.Entry("owner", owner))
	defer h.log.Info(r.Context(), "Unsubscribed from reminder events.", logging.Entry("owner", owner))

	query := r.URL.Query()
	query.Set("stream", events.StreamID(owner))
	r.URL.RawQuery = query.Encode()
	h.sseServer.ServeHTTP(rw, r)
}
