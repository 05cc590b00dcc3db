package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/attendance"
	"github.com/omyra-tech/intern-portal-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	ListByIntern(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Mark implements AttendanceHandler.
func (h *attendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if _, err := h.attendanceService.Mark(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, response.Message{Message: "Attendance marked successfully"})
}

// ListByIntern implements AttendanceHandler. Matches whatever id string the
// rows were written with, storage id or business id.
func (h *attendanceHandlerImpl) ListByIntern(w http.ResponseWriter, r *http.Request) {
	internID := chi.URLParam(r, "internId")

	result, err := h.attendanceService.ListByInternID(r.Context(), internID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, result)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, result)
}
