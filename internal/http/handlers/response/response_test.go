package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	cases := []struct {
		id             string
		render         func(rw http.ResponseWriter)
		expectedStatus int
		expectedBody   string
	}{
		{
			id:             "payload",
			render:         func(rw http.ResponseWriter) { Render(rw, map[string]int{"a": 1}, http.StatusCreated) },
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"a":1}`,
		},
		{
			id:             "rejected",
			render:         func(rw http.ResponseWriter) { RenderRejected(rw, errors.New("time is required")) },
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"error":"time is required"}`,
		},
		{
			id:             "not found",
			render:         func(rw http.ResponseWriter) { RenderNotFound(rw, errors.New("reminder does not exist")) },
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"reminder does not exist"}`,
		},
		{
			id:             "rate limited",
			render:         RenderRateLimitExceeded,
			expectedStatus: http.StatusTooManyRequests,
			expectedBody:   `{"error":"rate limit exceeded"}`,
		},
		{
			id:             "unavailable",
			render:         RenderUnavailable,
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `{"error":"service temporarily unavailable"}`,
		},
		{
			id:             "unencodable",
			render:         func(rw http.ResponseWriter) { Render(rw, make(chan int), http.StatusOK) },
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ``,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			rr := httptest.NewRecorder()

			testcase.render(rr)

			assert.Equal(t, testcase.expectedStatus, rr.Code)
			assert.Equal(t, testcase.expectedBody, rr.Body.String())
		})
	}
}
