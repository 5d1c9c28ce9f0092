package dismissbanner

import (
	"context"
	"errors"
	"healthmate/internal/core/domain/user"
	service "healthmate/internal/core/services/dismiss_banner"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	s.input = &input
	return result, s.err
}

func TestDismissBannerHandler(t *testing.T) {
	cases := []struct {
		id             string
		err            error
		expectedStatus int
	}{
		{id: "dismissed", expectedStatus: http.StatusOK},
		{id: "not authenticated", err: user.ErrUserNotAuthenticated, expectedStatus: http.StatusUnauthorized},
		{id: "failure", err: errors.New("boom"), expectedStatus: http.StatusInternalServerError},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/profiles/p1/banner/dismiss", nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("profileID", "p1")
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			svc := &stubService{err: testcase.err}
			rr := httptest.NewRecorder()

			New(svc).ServeHTTP(rr, req)

			assert.Equal(t, testcase.expectedStatus, rr.Code)
			assert.Equal(t, &service.Input{ProfileID: "p1"}, svc.input)
		})
	}
}
