package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyMarked = errors.New("attendance already marked for this date")
	ErrFutureDate    = errors.New("cannot mark attendance for a future date")
)
