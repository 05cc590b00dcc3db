package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/task"
	"github.com/omyra-tech/intern-portal-backend-go/internal/pkg/database"
)

type taskStatusRepository struct {
	db *database.DB
}

func NewTaskStatusRepository(db *database.DB) task.TaskStatusRepository {
	return &taskStatusRepository{db: db}
}

// Create implements task.TaskStatusRepository. Always inserts; the table has
// no uniqueness on (intern_id, task_id).
func (r *taskStatusRepository) Create(ctx context.Context, ts task.TaskStatus) (task.TaskStatus, error) {
	q := GetQuerier(ctx, r.db)

	ts.ID = uuid.NewString()

	query := `
		INSERT INTO task_statuses (id, intern_id, task_id, status, date)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := q.Exec(ctx, query, ts.ID, ts.InternID, ts.TaskID, ts.Status, ts.Date)
	if err != nil {
		return task.TaskStatus{}, fmt.Errorf("failed to create task status: %w", err)
	}

	return ts, nil
}

// ListByInternID implements task.TaskStatusRepository.
func (r *taskStatusRepository) ListByInternID(ctx context.Context, internID string) ([]task.TaskStatus, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, intern_id, task_id, status, date FROM task_statuses WHERE intern_id = $1 ORDER BY date`

	rows, err := q.Query(ctx, query, internID)
	if err != nil {
		return nil, fmt.Errorf("failed to list task statuses: %w", err)
	}
	defer rows.Close()

	var statuses []task.TaskStatus
	for rows.Next() {
		var ts task.TaskStatus
		if err := rows.Scan(&ts.ID, &ts.InternID, &ts.TaskID, &ts.Status, &ts.Date); err != nil {
			return nil, fmt.Errorf("failed to scan task status: %w", err)
		}
		statuses = append(statuses, ts)
	}

	return statuses, rows.Err()
}

// Update implements task.TaskStatusRepository.
func (r *taskStatusRepository) Update(ctx context.Context, id string, ts task.TaskStatus) (task.TaskStatus, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE task_statuses SET intern_id = $1, task_id = $2, status = $3, date = $4
		WHERE id = $5
		RETURNING id, intern_id, task_id, status, date
	`

	var updated task.TaskStatus
	err := q.QueryRow(ctx, query, ts.InternID, ts.TaskID, ts.Status, ts.Date, id).Scan(
		&updated.ID, &updated.InternID, &updated.TaskID, &updated.Status, &updated.Date,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return task.TaskStatus{}, task.ErrTaskStatusNotFound
		}
		return task.TaskStatus{}, fmt.Errorf("failed to update task status: %w", err)
	}

	return updated, nil
}
