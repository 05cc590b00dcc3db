package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/intern"
)

type fakeInternService struct {
	lastUpdateID  string
	lastUpdateReq intern.UpdateRequest
}

func (f *fakeInternService) Register(ctx context.Context, req intern.RegisterRequest) (intern.RegisterResponse, error) {
	return intern.RegisterResponse{
		InternID:      "OM82025001",
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		PlainPassword: "OM82025001",
	}, nil
}

func (f *fakeInternService) Login(ctx context.Context, req intern.LoginRequest) (intern.LoginResponse, error) {
	return intern.LoginResponse{}, nil
}

func (f *fakeInternService) GetByID(ctx context.Context, id string) (intern.Intern, error) {
	return intern.Intern{ID: id}, nil
}

func (f *fakeInternService) Update(ctx context.Context, id string, req intern.UpdateRequest) (intern.Intern, error) {
	f.lastUpdateID = id
	f.lastUpdateReq = req
	return intern.Intern{ID: id, FirstName: req.FirstName, InternID: req.InternID}, nil
}

func (f *fakeInternService) UpdateStatus(ctx context.Context, id string, req intern.UpdateStatusRequest) (intern.Intern, error) {
	return intern.Intern{ID: id, Status: req.Status, Email: req.Email}, nil
}

func (f *fakeInternService) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeInternService) List(ctx context.Context) ([]intern.Intern, error) { return nil, nil }

const validInternBody = `{
	"firstName": "Asha",
	"lastName": "Rao",
	"email": "asha.rao@example.com",
	"phone": "+919876543210",
	"dob": "2001-04-12",
	"nationality": "Indian",
	"designation": "Backend",
	"currentAddress": "Hyderabad"
}`

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func messageOf(t *testing.T, body map[string]json.RawMessage) string {
	t.Helper()

	var msg string
	require.Contains(t, body, "message")
	require.NoError(t, json.Unmarshal(body["message"], &msg))
	return msg
}

func TestRegisterResponses(t *testing.T) {
	h := NewInternHandler(&fakeInternService{})

	t.Run("self registration waits for approval", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/interns/register", strings.NewReader(validInternBody))
		rec := httptest.NewRecorder()
		h.Register(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Intern registered successfully, Wait for the admin to approve your account", messageOf(t, body))
		assert.Contains(t, body, "intern")
	})

	t.Run("admin registration", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/intern/register", strings.NewReader(validInternBody))
		rec := httptest.NewRecorder()
		h.AdminRegister(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Intern registered successfully", messageOf(t, body))
		assert.Contains(t, body, "intern")
	})
}

func newInternRouter(svc intern.InternService) *chi.Mux {
	h := NewInternHandler(svc)
	r := chi.NewRouter()
	r.Put("/interns/{id}", h.Update)
	r.Put("/admin/interns/{id}", h.AdminUpdate)
	r.Put("/admin/interns/status/{id}", h.UpdateStatus)
	return r
}

func putJSON(router *chi.Mux, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestUpdateIgnoresInternIDFromInterns(t *testing.T) {
	svc := &fakeInternService{}
	router := newInternRouter(svc)

	body := strings.Replace(validInternBody, "{", `{"internId": "OM82025999",`, 1)
	rec := putJSON(router, "/interns/42", body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "42", svc.lastUpdateID)
	assert.Empty(t, svc.lastUpdateReq.InternID)

	respBody := decodeBody(t, rec)
	assert.Equal(t, "Intern details updated successfully", messageOf(t, respBody))
	assert.Contains(t, respBody, "intern")
}

func TestAdminUpdatePassesInternIDThrough(t *testing.T) {
	svc := &fakeInternService{}
	router := newInternRouter(svc)

	body := strings.Replace(validInternBody, "{", `{"internId": "OM82025999",`, 1)
	rec := putJSON(router, "/admin/interns/42", body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OM82025999", svc.lastUpdateReq.InternID)
}

func TestAdminUpdateRejectsMalformedInternID(t *testing.T) {
	svc := &fakeInternService{}
	router := newInternRouter(svc)

	body := strings.Replace(validInternBody, "{", `{"internId": "INT-42",`, 1)
	rec := putJSON(router, "/admin/interns/42", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.lastUpdateID)
}

func TestUpdateStatusResponse(t *testing.T) {
	router := newInternRouter(&fakeInternService{})

	rec := putJSON(router, "/admin/interns/status/42", `{"status": "approved", "email": "asha.rao@example.com"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Intern status updated successfully and email sent", messageOf(t, body))
	assert.Contains(t, body, "intern")
}
