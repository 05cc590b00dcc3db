package task

import (
	"context"
	"time"
)

type TaskService interface {
	// Create stores the task and notifies matching interns from a background
	// goroutine; notification failures are logged, never surfaced.
	Create(ctx context.Context, req CreateTaskRequest) (Task, error)
	List(ctx context.Context) ([]Task, error)
	ListByDesignation(ctx context.Context, designation string) ([]Task, error)
	ListByDate(ctx context.Context, date time.Time) ([]Task, error)
	ListByDesignationAndDate(ctx context.Context, designation string, date time.Time) ([]Task, error)
	Update(ctx context.Context, id string, req UpdateTaskRequest) (Task, error)
	Delete(ctx context.Context, id string) error

	CreateStatus(ctx context.Context, req TaskStatusRequest) (TaskStatus, error)
	ListStatusByInternID(ctx context.Context, internID string) ([]TaskStatus, error)
	UpdateStatus(ctx context.Context, id string, req TaskStatusRequest) (TaskStatus, error)
}
