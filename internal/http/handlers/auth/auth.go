package auth

import (
	"healthmate/internal/core/domain/user"
	"healthmate/internal/core/services/auth"
	"net/http"
	"strings"
)

const (
	USER_ID_HEADER     = "X-User-ID"
	USER_ID_MAX_LENGTH = 256
)

// ParseUserID reads the user identity asserted by the gateway in front of
// the service.
func ParseUserID(r *http.Request) (userID user.ID, ok bool) {
	value := strings.TrimSpace(r.Header.Get(USER_ID_HEADER))
	if value == "" || len(value) > USER_ID_MAX_LENGTH {
		return userID, false
	}
	return user.ID(value), true
}

func SetUserIDToContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ParseUserID(r)
		if ok {
			r = r.WithContext(auth.WithUserID(r.Context(), userID))
		}
		next.ServeHTTP(w, r)
	})
}
