package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omyra-tech/intern-portal-backend-go/internal/config"
	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/admin"
	"github.com/omyra-tech/intern-portal-backend-go/internal/domain/intern"
	"github.com/omyra-tech/intern-portal-backend-go/internal/pkg/jwt"
)

// okHandlers satisfies every handler interface with a bare 200 so the
// routing tests exercise the middleware chain in isolation.
type okHandlers struct{}

func (okHandlers) ok(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

func (h okHandlers) Register(w http.ResponseWriter, r *http.Request)       { h.ok(w, r) }
func (h okHandlers) AdminRegister(w http.ResponseWriter, r *http.Request)  { h.ok(w, r) }
func (h okHandlers) Login(w http.ResponseWriter, r *http.Request)          { h.ok(w, r) }
func (h okHandlers) List(w http.ResponseWriter, r *http.Request)           { h.ok(w, r) }
func (h okHandlers) Get(w http.ResponseWriter, r *http.Request)            { h.ok(w, r) }
func (h okHandlers) Update(w http.ResponseWriter, r *http.Request)         { h.ok(w, r) }
func (h okHandlers) AdminUpdate(w http.ResponseWriter, r *http.Request)    { h.ok(w, r) }
func (h okHandlers) UpdateStatus(w http.ResponseWriter, r *http.Request)   { h.ok(w, r) }
func (h okHandlers) Delete(w http.ResponseWriter, r *http.Request)         { h.ok(w, r) }
func (h okHandlers) Create(w http.ResponseWriter, r *http.Request)         { h.ok(w, r) }
func (h okHandlers) ChangePassword(w http.ResponseWriter, r *http.Request) { h.ok(w, r) }
func (h okHandlers) SendEmail(w http.ResponseWriter, r *http.Request)      { h.ok(w, r) }
func (h okHandlers) Report(w http.ResponseWriter, r *http.Request)         { h.ok(w, r) }
func (h okHandlers) Mark(w http.ResponseWriter, r *http.Request)           { h.ok(w, r) }
func (h okHandlers) ListByIntern(w http.ResponseWriter, r *http.Request)   { h.ok(w, r) }
func (h okHandlers) ListByDesignation(w http.ResponseWriter, r *http.Request) {
	h.ok(w, r)
}
func (h okHandlers) ListByDate(w http.ResponseWriter, r *http.Request) { h.ok(w, r) }
func (h okHandlers) ListByDesignationAndDate(w http.ResponseWriter, r *http.Request) {
	h.ok(w, r)
}
func (h okHandlers) CreateStatus(w http.ResponseWriter, r *http.Request)       { h.ok(w, r) }
func (h okHandlers) ListStatusByIntern(w http.ResponseWriter, r *http.Request) { h.ok(w, r) }
func (h okHandlers) SetOverride(w http.ResponseWriter, r *http.Request)        { h.ok(w, r) }

func newTestRouter(t *testing.T) (http.Handler, jwt.Service) {
	t.Helper()

	cfg := &config.Config{
		App: config.AppConfig{
			Env:         "test",
			FrontendURL: "http://localhost:3000",
		},
	}
	jwtService := jwt.NewJWTService("routing-test-secret", "1h")
	h := okHandlers{}
	return NewRouter(cfg, jwtService, h, h, h, h, h, h), jwtService
}

func routeRequest(t *testing.T, router http.Handler, method, target, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestInternTokenReadsOwnAttendance(t *testing.T) {
	router, jwtService := newTestRouter(t)

	token, _, err := jwtService.GenerateToken("42", intern.RoleIntern)
	require.NoError(t, err)

	rec := routeRequest(t, router, http.MethodGet, "/api/admin/attendance/OM82025001", token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInternTokenCannotListAllAttendance(t *testing.T) {
	router, jwtService := newTestRouter(t)

	token, _, err := jwtService.GenerateToken("42", intern.RoleIntern)
	require.NoError(t, err)

	rec := routeRequest(t, router, http.MethodGet, "/api/admin/attendance", token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminTokenListsAllAttendance(t *testing.T) {
	router, jwtService := newTestRouter(t)

	token, _, err := jwtService.GenerateToken("1", admin.RoleAdmin)
	require.NoError(t, err)

	rec := routeRequest(t, router, http.MethodGet, "/api/admin/attendance", token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAttendanceReadRequiresToken(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := routeRequest(t, router, http.MethodGet, "/api/admin/attendance/OM82025001", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminRegisterAndUpdateRequireAdminRole(t *testing.T) {
	router, jwtService := newTestRouter(t)

	token, _, err := jwtService.GenerateToken("42", intern.RoleIntern)
	require.NoError(t, err)

	rec := routeRequest(t, router, http.MethodPost, "/api/admin/intern/register", token)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = routeRequest(t, router, http.MethodPut, "/api/admin/interns/42", token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
