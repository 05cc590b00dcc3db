package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/task"
	"github.com/omyra-tech/intern-portal-backend-go/internal/pkg/database"
)

type taskRepository struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepository{db: db}
}

const taskColumns = `id, designation, intern_id, date, title, description`

// Create implements task.TaskRepository.
func (r *taskRepository) Create(ctx context.Context, t task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	t.ID = uuid.NewString()

	query := `
		INSERT INTO tasks (id, designation, intern_id, date, title, description)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := q.Exec(ctx, query, t.ID, t.Designation, t.InternID, t.Date, t.Title, t.Description)
	if err != nil {
		return task.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return t, nil
}

// List implements task.TaskRepository.
func (r *taskRepository) List(ctx context.Context) ([]task.Task, error) {
	return r.list(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY date`)
}

// ListByDesignation implements task.TaskRepository.
func (r *taskRepository) ListByDesignation(ctx context.Context, designation string) ([]task.Task, error) {
	return r.list(ctx, `SELECT `+taskColumns+` FROM tasks WHERE designation = $1 ORDER BY date`, designation)
}

// ListByDate implements task.TaskRepository.
func (r *taskRepository) ListByDate(ctx context.Context, date time.Time) ([]task.Task, error) {
	return r.list(ctx, `SELECT `+taskColumns+` FROM tasks WHERE date::date = $1::date ORDER BY date`, date)
}

// ListByDesignationAndDate implements task.TaskRepository.
func (r *taskRepository) ListByDesignationAndDate(ctx context.Context, designation string, date time.Time) ([]task.Task, error) {
	return r.list(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE designation = $1 AND date::date = $2::date ORDER BY date`,
		designation, date)
}

func (r *taskRepository) list(ctx context.Context, query string, args ...interface{}) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		var t task.Task
		if err := rows.Scan(&t.ID, &t.Designation, &t.InternID, &t.Date, &t.Title, &t.Description); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// Update implements task.TaskRepository.
func (r *taskRepository) Update(ctx context.Context, id string, t task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tasks SET designation = $1, intern_id = $2, date = $3, title = $4, description = $5
		WHERE id = $6
		RETURNING ` + taskColumns

	var updated task.Task
	err := q.QueryRow(ctx, query, t.Designation, t.InternID, t.Date, t.Title, t.Description, id).Scan(
		&updated.ID, &updated.Designation, &updated.InternID, &updated.Date, &updated.Title, &updated.Description,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to update task: %w", err)
	}

	return updated, nil
}

// Delete implements task.TaskRepository.
func (r *taskRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}

	return nil
}
