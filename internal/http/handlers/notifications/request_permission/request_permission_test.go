package requestpermission

import (
	"context"
	"errors"
	"healthmate/internal/core/domain/notification"
	ratelimiter "healthmate/internal/core/domain/rate_limiter"
	"healthmate/internal/core/domain/user"
	service "healthmate/internal/core/services/request_notification_permission"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubService struct {
	result service.Result
	err    error
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	return s.result, s.err
}

func TestRequestPermissionHandler(t *testing.T) {
	cases := []struct {
		id             string
		svc            *stubService
		expectedStatus int
		expectedBody   string
	}{
		{
			id: "granted",
			svc: &stubService{result: service.Result{
				Outcome:    notification.RequestGranted,
				Permission: notification.PermissionGranted,
			}},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"outcome":"granted","permission":{"state":"granted"}}`,
		},
		{
			id: "unavailable",
			svc: &stubService{result: service.Result{
				Outcome:    notification.RequestUnavailable,
				Permission: notification.PermissionDefault,
			}},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"outcome":"unavailable","permission":{"state":"default"}}`,
		},
		{
			id:             "rate limited",
			svc:            &stubService{err: ratelimiter.ErrRateLimitExceeded},
			expectedStatus: http.StatusTooManyRequests,
			expectedBody:   `{"error":"rate limit exceeded"}`,
		},
		{
			id:             "not authenticated",
			svc:            &stubService{err: user.ErrUserNotAuthenticated},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"user is not authenticated"}`,
		},
		{
			id:             "failure",
			svc:            &stubService{err: errors.New("boom")},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"internal error"}`,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			rr := httptest.NewRecorder()

			New(testcase.svc).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/notifications/permission", nil))

			assert.Equal(t, testcase.expectedStatus, rr.Code)
			assert.JSONEq(t, testcase.expectedBody, rr.Body.String())
		})
	}
}
