package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/attendance"
	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/holiday"
	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/task"
	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/workinghours"
)

// The mutation endpoints answer with the message plus the written entity
// under its own key; clients bind to those key names.

type fakeTaskService struct{}

func (fakeTaskService) Create(ctx context.Context, req task.CreateTaskRequest) (task.Task, error) {
	return task.Task{ID: "t1", Title: req.Title, Description: req.Description, Date: req.ParsedDate()}, nil
}
func (fakeTaskService) List(ctx context.Context) ([]task.Task, error) { return nil, nil }
func (fakeTaskService) ListByDesignation(ctx context.Context, designation string) ([]task.Task, error) {
	return nil, nil
}
func (fakeTaskService) ListByDate(ctx context.Context, date time.Time) ([]task.Task, error) {
	return nil, nil
}
func (fakeTaskService) ListByDesignationAndDate(ctx context.Context, designation string, date time.Time) ([]task.Task, error) {
	return nil, nil
}
func (fakeTaskService) Update(ctx context.Context, id string, req task.UpdateTaskRequest) (task.Task, error) {
	return task.Task{ID: id, Title: req.Title, Description: req.Description, Date: req.ParsedDate()}, nil
}
func (fakeTaskService) Delete(ctx context.Context, id string) error { return nil }
func (fakeTaskService) CreateStatus(ctx context.Context, req task.TaskStatusRequest) (task.TaskStatus, error) {
	return task.TaskStatus{ID: "s1", InternID: req.InternID, TaskID: req.TaskID, Status: req.Status}, nil
}
func (fakeTaskService) ListStatusByInternID(ctx context.Context, internID string) ([]task.TaskStatus, error) {
	return nil, nil
}
func (fakeTaskService) UpdateStatus(ctx context.Context, id string, req task.TaskStatusRequest) (task.TaskStatus, error) {
	return task.TaskStatus{ID: id, InternID: req.InternID, TaskID: req.TaskID, Status: req.Status}, nil
}

type fakeHolidayService struct{}

func (fakeHolidayService) Create(ctx context.Context, req holiday.HolidayRequest) (holiday.Holiday, error) {
	return holiday.Holiday{ID: "h1", Name: req.Name, Date: req.ParsedDate()}, nil
}
func (fakeHolidayService) List(ctx context.Context) ([]holiday.Holiday, error) { return nil, nil }
func (fakeHolidayService) Update(ctx context.Context, id string, req holiday.HolidayRequest) (holiday.Holiday, error) {
	return holiday.Holiday{ID: id, Name: req.Name, Date: req.ParsedDate()}, nil
}
func (fakeHolidayService) Delete(ctx context.Context, id string) error { return nil }

type fakeAttendanceService struct{}

func (fakeAttendanceService) Mark(ctx context.Context, req attendance.MarkRequest) (attendance.Attendance, error) {
	return attendance.Attendance{ID: "a1", InternID: req.InternID, Date: req.ParsedDate()}, nil
}
func (fakeAttendanceService) ListByInternID(ctx context.Context, internID string) ([]attendance.Attendance, error) {
	return nil, nil
}
func (fakeAttendanceService) List(ctx context.Context) ([]attendance.Attendance, error) {
	return nil, nil
}

type fakeWorkingHoursService struct{}

func (fakeWorkingHoursService) Get(ctx context.Context, month, year int) (workinghours.MonthlyHoursResponse, error) {
	return workinghours.MonthlyHoursResponse{Month: month, Year: year, Hours: 160}, nil
}
func (fakeWorkingHoursService) SetOverride(ctx context.Context, req workinghours.OverrideRequest) (workinghours.MonthlyHours, error) {
	return workinghours.MonthlyHours{ID: "m1", Month: req.Month, Year: req.Year, Hours: req.Hours}, nil
}

func sendJSON(router *chi.Mux, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestTaskMutationResponses(t *testing.T) {
	h := NewTaskHandler(fakeTaskService{})
	router := chi.NewRouter()
	router.Post("/tasks", h.Create)
	router.Put("/tasks/{id}", h.Update)

	t.Run("create", func(t *testing.T) {
		rec := sendJSON(router, http.MethodPost, "/tasks",
			`{"date": "2025-08-18", "title": "Standups", "description": "Daily sync notes"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Task created successfully", messageOf(t, body))
		assert.Contains(t, body, "task")
	})

	t.Run("update keys the payload taskData", func(t *testing.T) {
		rec := sendJSON(router, http.MethodPut, "/tasks/t1",
			`{"date": "2025-08-18", "title": "Standups", "description": "Daily sync notes"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Task updated successfully", messageOf(t, body))
		assert.Contains(t, body, "taskData")
		assert.NotContains(t, body, "task")
	})
}

func TestHolidayMutationResponses(t *testing.T) {
	h := NewHolidayHandler(fakeHolidayService{})
	router := chi.NewRouter()
	router.Post("/holidays", h.Create)
	router.Patch("/holidays/{id}", h.Update)

	t.Run("create", func(t *testing.T) {
		rec := sendJSON(router, http.MethodPost, "/holidays", `{"name": "Diwali", "date": "2025-10-21"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Holiday added successfully", messageOf(t, body))
		assert.Contains(t, body, "holiday")
	})

	t.Run("update", func(t *testing.T) {
		rec := sendJSON(router, http.MethodPatch, "/holidays/h1", `{"name": "Diwali", "date": "2025-10-20"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Holiday updated successfully", messageOf(t, body))
		assert.Contains(t, body, "holiday")
	})
}

func TestMarkAttendanceResponse(t *testing.T) {
	h := NewAttendanceHandler(fakeAttendanceService{})
	router := chi.NewRouter()
	router.Post("/attendance/mark", h.Mark)

	rec := sendJSON(router, http.MethodPost, "/attendance/mark",
		`{"internId": "OM82025001", "date": "2025-08-18", "hours": 8}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Attendance marked successfully", messageOf(t, body))
	assert.Len(t, body, 1)
}

func TestSetOverrideResponse(t *testing.T) {
	h := NewWorkingHoursHandler(fakeWorkingHoursService{})
	router := chi.NewRouter()
	router.Put("/working-hours", h.SetOverride)

	rec := sendJSON(router, http.MethodPut, "/working-hours", `{"month": 8, "year": 2025, "hours": 150}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Monthly working hours updated successfully", messageOf(t, body))
	assert.Contains(t, body, "override")
}
