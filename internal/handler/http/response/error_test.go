package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/admin"
	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/attendance"
	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/holiday"
	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/intern"
	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/task"
	"github.com/omyra-tech/intern-portal-backend-go/internal/pkg/validator"
)

func handled(t *testing.T, err error) (int, string) {
	t.Helper()

	rec := httptest.NewRecorder()
	HandleError(rec, err)

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body.Message
}

func TestHandleError(t *testing.T) {
	cases := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{"intern not found", intern.ErrInternNotFound, http.StatusNotFound, "Intern not found"},
		{"duplicate email", intern.ErrEmailExists, http.StatusBadRequest, "Intern with this email already exists"},
		{"bad credentials", intern.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{"unapproved account", intern.ErrNotApproved, http.StatusUnauthorized, "Your account is not approved by the admin"},
		{"status email failure", intern.ErrStatusEmailFailed, http.StatusInternalServerError, "Failed to send email. Status not updated."},
		{"admin not found", admin.ErrAdminNotFound, http.StatusNotFound, "Admin not found"},
		{"email taken by intern", admin.ErrEmailExistsAsIntern, http.StatusBadRequest, "Email already exists as an intern."},
		{"password mismatch", admin.ErrCurrentPasswordMismatch, http.StatusUnauthorized, "Current password is incorrect"},
		{"notice send failure", admin.ErrEmailSendFailed, http.StatusInternalServerError, "Failed to send emails."},
		{"attendance duplicate", attendance.ErrAlreadyMarked, http.StatusBadRequest, "Attendance already marked for this date"},
		{"attendance future date", attendance.ErrFutureDate, http.StatusBadRequest, "Cannot mark attendance for a future date"},
		{"task not found", task.ErrTaskNotFound, http.StatusNotFound, "Task not found"},
		{"task status not found", task.ErrTaskStatusNotFound, http.StatusNotFound, "Task status not found"},
		{"holiday not found", holiday.ErrHolidayNotFound, http.StatusNotFound, "Holiday not found"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, message := handled(t, tc.err)
			assert.Equal(t, tc.wantCode, code)
			assert.Equal(t, tc.wantMessage, message)
		})
	}

	t.Run("wrapped sentinel keeps its mapping", func(t *testing.T) {
		code, message := handled(t, errors.Join(errors.New("smtp: dial tcp"), intern.ErrStatusEmailFailed))
		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, "Failed to send email. Status not updated.", message)
	})

	t.Run("validation errors are bad requests", func(t *testing.T) {
		errs := validator.ValidationErrors{{Field: "email", Message: "email is required"}}
		code, message := handled(t, errs)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Contains(t, message, "email is required")
	})
}
