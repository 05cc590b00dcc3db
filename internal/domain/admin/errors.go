package admin

import "errors"

// Admin domain errors
var (
	ErrAdminNotFound           = errors.New("admin not found")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrEmailExistsAsIntern     = errors.New("email already exists as an intern")
	ErrCurrentPasswordMismatch = errors.New("current password is incorrect")
	ErrEmailSendFailed         = errors.New("failed to send emails")
)
