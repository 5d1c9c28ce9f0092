package togglereminder

import (
	"context"
	"errors"
	"healthmate/internal/core/domain/reminder"
	"healthmate/internal/core/domain/user"
	service "healthmate/internal/core/services/toggle_reminder"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	s.input = &input
	if s.err != nil {
		return result, s.err
	}
	result.Reminder = reminder.Reminder{
		ID:           input.ReminderID,
		MedicineName: "Aspirin",
		Dosage:       "1 tablet",
		Time:         "8:00 AM",
		Days:         reminder.NewDays(time.Monday),
		IsActive:     false,
	}
	return result, nil
}

func newRequest(reminderID string) *http.Request {
	req := httptest.NewRequest(http.MethodPatch, "/profiles/p1/reminders/"+reminderID+"/active", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("profileID", "p1")
	rctx.URLParams.Add("reminderID", reminderID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestToggleReminderHandler(t *testing.T) {
	cases := []struct {
		id             string
		reminderID     string
		err            error
		expectedStatus int
	}{
		{id: "toggled", reminderID: "1", expectedStatus: http.StatusOK},
		{id: "empty id", reminderID: "", expectedStatus: http.StatusBadRequest},
		{id: "not found", reminderID: "2", err: reminder.ErrReminderNotFound, expectedStatus: http.StatusNotFound},
		{id: "not authenticated", reminderID: "1", err: user.ErrUserNotAuthenticated, expectedStatus: http.StatusUnauthorized},
		{id: "store unavailable", reminderID: "1", err: reminder.ErrStoreUnavailable, expectedStatus: http.StatusServiceUnavailable},
		{id: "failure", reminderID: "1", err: errors.New("boom"), expectedStatus: http.StatusInternalServerError},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			svc := &stubService{err: testcase.err}
			rr := httptest.NewRecorder()

			New(svc).ServeHTTP(rr, newRequest(testcase.reminderID))

			assert.Equal(t, testcase.expectedStatus, rr.Code)
			if testcase.expectedStatus == http.StatusBadRequest {
				assert.Nil(t, svc.input)
				return
			}
			assert.Equal(t, &service.Input{ProfileID: "p1", ReminderID: reminder.ID(testcase.reminderID)}, svc.input)
			if testcase.expectedStatus == http.StatusOK {
				assert.Contains(t, rr.Body.String(), `"isActive":false`)
			}
		})
	}
}
