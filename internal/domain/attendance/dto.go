package attendance

import (
	"time"

	"github.com/omyra-tech/intern-portal-backend-go/internal/pkg/validator"
)

type MarkRequest struct {
	InternID string   `json:"internId"`
	Date     string   `json:"date"`
	Hours    *float64 `json:"hours"`
	DayTask  *string  `json:"dayTask"`
}

func (r *MarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.InternID) {
		errs = append(errs, validator.ValidationError{Field: "internId", Message: "internId is required"})
	}
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	} else if _, ok := validator.ParseFlexibleDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "invalid date"})
	}
	if r.Hours != nil && *r.Hours < 0 {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "hours must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ParsedDate returns the validated attendance date. Call after Validate.
func (r *MarkRequest) ParsedDate() time.Time {
	t, _ := validator.ParseFlexibleDate(r.Date)
	return t
}
