package response

import (
	"encoding/json"
	"net/http"
)

type errorResponse struct {
	Error string `json:"error"`
}

func RenderUnauthorized(rw http.ResponseWriter) {
	RenderError(rw, "user is not authenticated", http.StatusUnauthorized)
}

func RenderInternalError(rw http.ResponseWriter) {
	RenderError(rw, "internal error", http.StatusInternalServerError)
}

func RenderRateLimitExceeded(rw http.ResponseWriter) {
	RenderError(rw, "rate limit exceeded", http.StatusTooManyRequests)
}

// RenderUnavailable tells the client the request can be retried later.
func RenderUnavailable(rw http.ResponseWriter) {
	rw.Header().Set("Retry-After", "5")
	RenderError(rw, "service temporarily unavailable", http.StatusServiceUnavailable)
}

func RenderBadRequest(rw http.ResponseWriter) {
	RenderError(rw, "invalid request data", http.StatusBadRequest)
}

// RenderRejected answers a request the domain refused, using the domain
// error text as the message.
func RenderRejected(rw http.ResponseWriter, err error) {
	RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
}

func RenderNotFound(rw http.ResponseWriter, err error) {
	RenderError(rw, err.Error(), http.StatusNotFound)
}

func RenderError(rw http.ResponseWriter, msg string, status int) {
	Render(rw, errorResponse{Error: msg}, status)
}

func Render(rw http.ResponseWriter, res interface{}, status int) {
	rw.Header().Set("Content-Type", "application/json")

	content, err := json.Marshal(res)
	if err != nil {
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	rw.WriteHeader(status)
	rw.Write(content)
}
