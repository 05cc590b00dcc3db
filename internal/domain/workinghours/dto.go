package workinghours

import "github.com/omyra-tech/intern-portal-backend-go/internal/pkg/validator"

type OverrideRequest struct {
	Month int     `json:"month"`
	Year  int     `json:"year"`
	Hours float64 `json:"hours"`
}

func (r *OverrideRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
	}
	if r.Year <= 0 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year is required"})
	}
	if r.Hours <= 0 {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "hours is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthlyHoursResponse struct {
	Month int     `json:"month"`
	Year  int     `json:"year"`
	Hours float64 `json:"hours"`
}
