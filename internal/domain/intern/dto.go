package intern

import (
	"time"

	"github.com/omyra-tech/intern-portal-backend-go/internal/pkg/validator"
)

type RegisterRequest struct {
	FirstName      string       `json:"firstName"`
	LastName       string       `json:"lastName"`
	Email          string       `json:"email"`
	Phone          string       `json:"phone"`
	DOB            string       `json:"dob"`
	Nationality    string       `json:"nationality"`
	Designation    string       `json:"designation"`
	CurrentAddress string       `json:"currentAddress"`
	Education      []Education  `json:"education"`
	Experience     []Experience `json:"experience"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "firstName", Message: "firstName is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "lastName", Message: "lastName is required"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email address"})
	}
	if validator.IsEmpty(r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "phone is required"})
	} else if !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "invalid phone number"})
	}
	if validator.IsEmpty(r.DOB) {
		errs = append(errs, validator.ValidationError{Field: "dob", Message: "dob is required"})
	} else if _, ok := validator.ParseFlexibleDate(r.DOB); !ok {
		errs = append(errs, validator.ValidationError{Field: "dob", Message: "invalid date of birth"})
	}
	if validator.IsEmpty(r.Nationality) {
		errs = append(errs, validator.ValidationError{Field: "nationality", Message: "nationality is required"})
	}
	if validator.IsEmpty(r.Designation) {
		errs = append(errs, validator.ValidationError{Field: "designation", Message: "designation is required"})
	} else if !validator.IsInSlice(r.Designation, Designations) {
		errs = append(errs, validator.ValidationError{Field: "designation", Message: "unknown designation"})
	}
	if validator.IsEmpty(r.CurrentAddress) {
		errs = append(errs, validator.ValidationError{Field: "currentAddress", Message: "currentAddress is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ParsedDOB returns the validated date of birth. Call after Validate.
func (r *RegisterRequest) ParsedDOB() time.Time {
	t, _ := validator.ParseFlexibleDate(r.DOB)
	return t
}

// RegisterResponse carries the generated credentials. The plaintext password
// is returned exactly once, here.
type RegisterResponse struct {
	InternID      string `json:"internId"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	PlainPassword string `json:"plainPassword"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
	Intern  Intern `json:"intern"`
}

// UpdateRequest is a whole-profile update. The admin variant may also move
// the business intern id.
type UpdateRequest struct {
	RegisterRequest
	InternID string `json:"internId,omitempty"`
}

func (r *UpdateRequest) Validate() error {
	err := r.RegisterRequest.Validate()

	if r.InternID != "" && !validator.IsValidInternID(r.InternID) {
		errs, _ := err.(validator.ValidationErrors)
		errs = append(errs, validator.ValidationError{Field: "internId", Message: "invalid intern id"})
		return errs
	}
	return err
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
	Email  string `json:"email"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status is required"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email address"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
