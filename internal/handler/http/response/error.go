package response

import (
	"errors"
	"net/http"

	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/admin"
	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/attendance"
	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/holiday"
	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/intern"
	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/task"
	"github.com/omyra-tech/intern-portal-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		BadRequest(w, validationErrs.Error())
		return
	}

	switch {
	// Intern domain errors
	case errors.Is(err, intern.ErrEmailExists):
		BadRequest(w, "Intern with this email already exists")
	case errors.Is(err, intern.ErrInternNotFound):
		NotFound(w, "Intern not found")
	case errors.Is(err, intern.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, intern.ErrNotApproved):
		Unauthorized(w, "Your account is not approved by the admin")
	case errors.Is(err, intern.ErrStatusEmailFailed):
		InternalServerError(w, "Failed to send email. Status not updated.")

	// Admin domain errors
	case errors.Is(err, admin.ErrAdminNotFound):
		NotFound(w, "Admin not found")
	case errors.Is(err, admin.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, admin.ErrEmailExistsAsIntern):
		BadRequest(w, "Email already exists as an intern.")
	case errors.Is(err, admin.ErrCurrentPasswordMismatch):
		Unauthorized(w, "Current password is incorrect")
	case errors.Is(err, admin.ErrEmailSendFailed):
		InternalServerError(w, "Failed to send emails.")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyMarked):
		BadRequest(w, "Attendance already marked for this date")
	case errors.Is(err, attendance.ErrFutureDate):
		BadRequest(w, "Cannot mark attendance for a future date")

	// Task and holiday domain errors
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, task.ErrTaskStatusNotFound):
		NotFound(w, "Task status not found")
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")

	default:
		InternalServerError(w, "Internal Server Error")
	}
}
