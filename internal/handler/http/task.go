package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/task"
	"github.com/omyra-tech/intern-portal-backend-go/internal/handler/http/response"
	"github.com/omyra-tech/intern-portal-backend-go/internal/pkg/validator"
)

type TaskHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListByDesignation(w http.ResponseWriter, r *http.Request)
	ListByDate(w http.ResponseWriter, r *http.Request)
	ListByDesignationAndDate(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	CreateStatus(w http.ResponseWriter, r *http.Request)
	ListStatusByIntern(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type taskHandlerImpl struct {
	taskService task.TaskService
}

type taskEnvelope struct {
	Message string    `json:"message"`
	Task    task.Task `json:"task"`
}

// The update route has always keyed its payload "taskData"; clients bind to
// that name.
type taskUpdateEnvelope struct {
	Message string    `json:"message"`
	Task    task.Task `json:"taskData"`
}

type taskStatusEnvelope struct {
	Message    string          `json:"message"`
	TaskStatus task.TaskStatus `json:"taskStatus"`
}

func NewTaskHandler(taskService task.TaskService) TaskHandler {
	return &taskHandlerImpl{
		taskService: taskService,
	}
}

// Create implements TaskHandler. The response does not wait for the intern
// notification emails; those run behind the request.
func (h *taskHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req task.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.taskService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, taskEnvelope{
		Message: "Task created successfully",
		Task:    result,
	})
}

// List implements TaskHandler.
func (h *taskHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.taskService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, result)
}

// ListByDesignation implements TaskHandler.
func (h *taskHandlerImpl) ListByDesignation(w http.ResponseWriter, r *http.Request) {
	designation := chi.URLParam(r, "designation")

	result, err := h.taskService.ListByDesignation(r.Context(), designation)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, result)
}

// ListByDate implements TaskHandler.
func (h *taskHandlerImpl) ListByDate(w http.ResponseWriter, r *http.Request) {
	date, ok := validator.ParseFlexibleDate(chi.URLParam(r, "date"))
	if !ok {
		response.BadRequest(w, "Invalid date format")
		return
	}

	result, err := h.taskService.ListByDate(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, result)
}

// ListByDesignationAndDate implements TaskHandler.
func (h *taskHandlerImpl) ListByDesignationAndDate(w http.ResponseWriter, r *http.Request) {
	designation := chi.URLParam(r, "designation")

	date, ok := validator.ParseFlexibleDate(chi.URLParam(r, "date"))
	if !ok {
		response.BadRequest(w, "Invalid date format")
		return
	}

	result, err := h.taskService.ListByDesignationAndDate(r.Context(), designation, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, result)
}

// Update implements TaskHandler.
func (h *taskHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req task.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.taskService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, taskUpdateEnvelope{
		Message: "Task updated successfully",
		Task:    result,
	})
}

// Delete implements TaskHandler.
func (h *taskHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.taskService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.OKMessage(w, "Task deleted successfully")
}

// CreateStatus implements TaskHandler. Always inserts a fresh row; the
// daily status history is append-only.
func (h *taskHandlerImpl) CreateStatus(w http.ResponseWriter, r *http.Request) {
	var req task.TaskStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.taskService.CreateStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, taskStatusEnvelope{
		Message:    "Task status created successfully",
		TaskStatus: result,
	})
}

// ListStatusByIntern implements TaskHandler.
func (h *taskHandlerImpl) ListStatusByIntern(w http.ResponseWriter, r *http.Request) {
	internID := chi.URLParam(r, "internId")

	result, err := h.taskService.ListStatusByInternID(r.Context(), internID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, result)
}

// UpdateStatus implements TaskHandler.
func (h *taskHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req task.TaskStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.taskService.UpdateStatus(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, taskStatusEnvelope{
		Message:    "Task status updated successfully",
		TaskStatus: result,
	})
}
