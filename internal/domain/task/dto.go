package task

import (
	"time"

	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/intern"
	"github.com/omyra-tech/intern-portal-backend-go/internal/pkg/validator"
)

type CreateTaskRequest struct {
	Designation *string `json:"designation"`
	InternID    *string `json:"internId"`
	Date        string  `json:"date"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	} else if _, ok := validator.ParseFlexibleDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "invalid date"})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "description is required"})
	}
	if r.Designation != nil && !validator.IsInSlice(*r.Designation, intern.Designations) {
		errs = append(errs, validator.ValidationError{Field: "designation", Message: "unknown designation"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ParsedDate returns the validated task date. Call after Validate.
func (r *CreateTaskRequest) ParsedDate() time.Time {
	t, _ := validator.ParseFlexibleDate(r.Date)
	return t
}

type UpdateTaskRequest = CreateTaskRequest

type TaskStatusRequest struct {
	InternID string `json:"internId"`
	TaskID   string `json:"taskId"`
	Status   string `json:"status"`
	Date     string `json:"date"`
}

func (r *TaskStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.InternID) {
		errs = append(errs, validator.ValidationError{Field: "internId", Message: "internId is required"})
	}
	if validator.IsEmpty(r.TaskID) {
		errs = append(errs, validator.ValidationError{Field: "taskId", Message: "taskId is required"})
	}
	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status is required"})
	}
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	} else if _, ok := validator.ParseFlexibleDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "invalid date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ParsedDate returns the validated status date. Call after Validate.
func (r *TaskStatusRequest) ParsedDate() time.Time {
	t, _ := validator.ParseFlexibleDate(r.Date)
	return t
}
