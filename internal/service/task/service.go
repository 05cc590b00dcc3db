package task

import (
	"context"
	"log/slog"
	"time"

	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/intern"
	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/task"
	"github.com/omyra-tech/intern-portal-backend-go/internal/pkg/database"
	"github.com/omyra-tech/intern-portal-backend-go/internal/pkg/email"
)

const notifyTimeout = 2 * time.Minute

type TaskServiceImpl struct {
	db             *database.DB
	taskRepo       task.TaskRepository
	taskStatusRepo task.TaskStatusRepository
	internRepo     intern.InternRepository
	emailService   email.EmailService
}

func NewTaskService(
	db *database.DB,
	taskRepo task.TaskRepository,
	taskStatusRepo task.TaskStatusRepository,
	internRepo intern.InternRepository,
	emailService email.EmailService,
) task.TaskService {
	return &TaskServiceImpl{
		db:             db,
		taskRepo:       taskRepo,
		taskStatusRepo: taskStatusRepo,
		internRepo:     internRepo,
		emailService:   emailService,
	}
}

// Create implements task.TaskService. Notification is best-effort and
// decoupled from the request: the caller gets its response from the stored
// task, and the designation broadcast runs in the background with failures
// going to the log only.
func (s *TaskServiceImpl) Create(ctx context.Context, req task.CreateTaskRequest) (task.Task, error) {
	newTask := task.Task{
		Designation: req.Designation,
		InternID:    req.InternID,
		Date:        req.ParsedDate(),
		Title:       req.Title,
		Description: req.Description,
	}

	created, err := s.taskRepo.Create(ctx, newTask)
	if err != nil {
		return task.Task{}, err
	}

	go s.notifyDesignation(created)

	return created, nil
}

func (s *TaskServiceImpl) notifyDesignation(t task.Task) {
	if t.Designation == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	interns, err := s.internRepo.ListByDesignation(ctx, *t.Designation)
	if err != nil {
		slog.Error("Failed to list interns for task notification",
			"task_id", t.ID, "designation", *t.Designation, "error", err)
		return
	}

	for _, i := range interns {
		if err := s.emailService.SendTaskAssigned([]string{i.Email}, t.Title, t.Description); err != nil {
			slog.Error("Failed to send task notification",
				"task_id", t.ID, "intern_id", i.InternID, "error", err)
		}
	}
}

// List implements task.TaskService.
func (s *TaskServiceImpl) List(ctx context.Context) ([]task.Task, error) {
	return s.taskRepo.List(ctx)
}

// ListByDesignation implements task.TaskService.
func (s *TaskServiceImpl) ListByDesignation(ctx context.Context, designation string) ([]task.Task, error) {
	return s.taskRepo.ListByDesignation(ctx, designation)
}

// ListByDate implements task.TaskService.
func (s *TaskServiceImpl) ListByDate(ctx context.Context, date time.Time) ([]task.Task, error) {
	return s.taskRepo.ListByDate(ctx, date)
}

// ListByDesignationAndDate implements task.TaskService.
func (s *TaskServiceImpl) ListByDesignationAndDate(ctx context.Context, designation string, date time.Time) ([]task.Task, error) {
	return s.taskRepo.ListByDesignationAndDate(ctx, designation, date)
}

// Update implements task.TaskService.
func (s *TaskServiceImpl) Update(ctx context.Context, id string, req task.UpdateTaskRequest) (task.Task, error) {
	updated := task.Task{
		Designation: req.Designation,
		InternID:    req.InternID,
		Date:        req.ParsedDate(),
		Title:       req.Title,
		Description: req.Description,
	}

	return s.taskRepo.Update(ctx, id, updated)
}

// Delete implements task.TaskService.
func (s *TaskServiceImpl) Delete(ctx context.Context, id string) error {
	return s.taskRepo.Delete(ctx, id)
}

// CreateStatus implements task.TaskService. Always inserts a new row; the
// multi-row history per (intern, task) is the documented model here.
func (s *TaskServiceImpl) CreateStatus(ctx context.Context, req task.TaskStatusRequest) (task.TaskStatus, error) {
	ts := task.TaskStatus{
		InternID: req.InternID,
		TaskID:   req.TaskID,
		Status:   req.Status,
		Date:     req.ParsedDate(),
	}

	return s.taskStatusRepo.Create(ctx, ts)
}

// ListStatusByInternID implements task.TaskService.
func (s *TaskServiceImpl) ListStatusByInternID(ctx context.Context, internID string) ([]task.TaskStatus, error) {
	return s.taskStatusRepo.ListByInternID(ctx, internID)
}

// UpdateStatus implements task.TaskService.
func (s *TaskServiceImpl) UpdateStatus(ctx context.Context, id string, req task.TaskStatusRequest) (task.TaskStatus, error) {
	ts := task.TaskStatus{
		InternID: req.InternID,
		TaskID:   req.TaskID,
		Status:   req.Status,
		Date:     req.ParsedDate(),
	}

	return s.taskStatusRepo.Update(ctx, id, ts)
}
