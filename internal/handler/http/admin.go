package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/admin"
	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/report"
	"github.com/omyra-tech/intern-portal-backend-go/internal/handler/http/response"
)

type AdminHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
	SendEmail(w http.ResponseWriter, r *http.Request)
	Report(w http.ResponseWriter, r *http.Request)
}

type adminHandlerImpl struct {
	adminService  admin.AdminService
	reportService report.ReportService
}

func NewAdminHandler(adminService admin.AdminService, reportService report.ReportService) AdminHandler {
	return &adminHandlerImpl{
		adminService:  adminService,
		reportService: reportService,
	}
}

// Login implements AdminHandler.
func (h *adminHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req admin.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.adminService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, result)
}

// Create implements AdminHandler.
func (h *adminHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req admin.CreateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.adminService.Create(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.Message{Message: "Admin created successfully"})
}

// List implements AdminHandler.
func (h *adminHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.adminService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, result)
}

// ChangePassword implements AdminHandler.
func (h *adminHandlerImpl) ChangePassword(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req admin.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.adminService.ChangePassword(r.Context(), id, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.OKMessage(w, "Password updated successfully")
}

// SendEmail implements AdminHandler.
func (h *adminHandlerImpl) SendEmail(w http.ResponseWriter, r *http.Request) {
	var req admin.SendEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.adminService.SendEmail(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.OKMessage(w, "Emails sent successfully.")
}

// Report implements AdminHandler.
func (h *adminHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.BuildAttendanceReport(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, result)
}
