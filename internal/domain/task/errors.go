package task

import "errors"

// Task domain errors
var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrTaskStatusNotFound = errors.New("task status not found")
)
