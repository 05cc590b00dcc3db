package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/intern"
	"github.com/omyra-tech/intern-portal-backend-go/internal/handler/http/response"
)

type InternHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	AdminRegister(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	AdminUpdate(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type internHandlerImpl struct {
	internService intern.InternService
}

func NewInternHandler(internService intern.InternService) InternHandler {
	return &internHandlerImpl{
		internService: internService,
	}
}

type registerEnvelope struct {
	Message string                  `json:"message"`
	Intern  intern.RegisterResponse `json:"intern"`
}

type internEnvelope struct {
	Message string        `json:"message"`
	Intern  intern.Intern `json:"intern"`
}

func (h *internHandlerImpl) register(w http.ResponseWriter, r *http.Request, message string) {
	var req intern.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.internService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, registerEnvelope{
		Message: message,
		Intern:  result,
	})
}

// Register implements InternHandler. Self-registration; the account waits
// for admin approval, and the generated intern id doubles as the initial
// password, returned in plaintext exactly once.
func (h *internHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, "Intern registered successfully, Wait for the admin to approve your account")
}

// AdminRegister implements InternHandler. Same flow as self-registration,
// behind the admin gate.
func (h *internHandlerImpl) AdminRegister(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, "Intern registered successfully")
}

// Login implements InternHandler.
func (h *internHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req intern.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.internService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, result)
}

// List implements InternHandler.
func (h *internHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.internService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, result)
}

// Get implements InternHandler.
func (h *internHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.internService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, result)
}

func (h *internHandlerImpl) update(w http.ResponseWriter, r *http.Request, allowInternID bool) {
	id := chi.URLParam(r, "id")

	var req intern.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}
	if !allowInternID {
		req.InternID = ""
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.internService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, internEnvelope{
		Message: "Intern details updated successfully",
		Intern:  result,
	})
}

// Update implements InternHandler. An intern edits their own profile; the
// business intern id stays whatever it already is.
func (h *internHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, false)
}

// AdminUpdate implements InternHandler. Admins may also move the business
// intern id.
func (h *internHandlerImpl) AdminUpdate(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, true)
}

// UpdateStatus implements InternHandler. The notification email goes out
// before the row changes; a failed send leaves the status untouched.
func (h *internHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req intern.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.internService.UpdateStatus(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, internEnvelope{
		Message: "Intern status updated successfully and email sent",
		Intern:  result,
	})
}

// Delete implements InternHandler.
func (h *internHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.internService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.OKMessage(w, "Intern and related attendance data deleted successfully")
}
