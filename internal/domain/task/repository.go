package task

import (
	"context"
	"time"
)

// TaskRepository defines data access methods for daily tasks.
type TaskRepository interface {
	Create(ctx context.Context, t Task) (Task, error)
	List(ctx context.Context) ([]Task, error)
	ListByDesignation(ctx context.Context, designation string) ([]Task, error)
	ListByDate(ctx context.Context, date time.Time) ([]Task, error)
	ListByDesignationAndDate(ctx context.Context, designation string, date time.Time) ([]Task, error)
	Update(ctx context.Context, id string, t Task) (Task, error)
	Delete(ctx context.Context, id string) error
}

// TaskStatusRepository defines data access for the append-only status rows.
type TaskStatusRepository interface {
	Create(ctx context.Context, ts TaskStatus) (TaskStatus, error)
	ListByInternID(ctx context.Context, internID string) ([]TaskStatus, error)
	Update(ctx context.Context, id string, ts TaskStatus) (TaskStatus, error)
}
