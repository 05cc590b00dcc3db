package intern

import "errors"

// Intern domain errors
var (
	ErrInternNotFound     = errors.New("intern not found")
	ErrEmailExists        = errors.New("intern with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotApproved        = errors.New("account is not approved by the admin")
	ErrStatusEmailFailed  = errors.New("failed to send status update email")
)
