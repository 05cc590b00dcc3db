package holiday

import (
	"time"

	"github.com/omyra-tech/intern-portal-backend-go/internal/pkg/validator"
)

type HolidayRequest struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

func (r *HolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
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

// ParsedDate returns the validated holiday date. Call after Validate.
func (r *HolidayRequest) ParsedDate() time.Time {
	t, _ := validator.ParseFlexibleDate(r.Date)
	return t
}
