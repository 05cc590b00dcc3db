package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/workinghours"
	"github.com/omyra-tech/intern-portal-backend-go/internal/handler/http/response"
)

type WorkingHoursHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	SetOverride(w http.ResponseWriter, r *http.Request)
}

type workingHoursHandlerImpl struct {
	workingHoursService workinghours.WorkingHoursService
}

type overrideEnvelope struct {
	Message  string                    `json:"message"`
	Override workinghours.MonthlyHours `json:"override"`
}

func NewWorkingHoursHandler(workingHoursService workinghours.WorkingHoursService) WorkingHoursHandler {
	return &workingHoursHandlerImpl{
		workingHoursService: workingHoursService,
	}
}

// Get implements WorkingHoursHandler. Both query params are mandatory; an
// override for the pair wins, otherwise the figure is computed from the
// calendar and the stored holidays.
func (h *workingHoursHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	month, errMonth := strconv.Atoi(r.URL.Query().Get("month"))
	year, errYear := strconv.Atoi(r.URL.Query().Get("year"))
	if errMonth != nil || errYear != nil {
		response.BadRequest(w, "Month and year are required")
		return
	}

	result, err := h.workingHoursService.Get(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, result)
}

// SetOverride implements WorkingHoursHandler.
func (h *workingHoursHandlerImpl) SetOverride(w http.ResponseWriter, r *http.Request) {
	var req workinghours.OverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.workingHoursService.SetOverride(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, overrideEnvelope{
		Message:  "Monthly working hours updated successfully",
		Override: result,
	})
}
