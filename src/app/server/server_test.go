package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"employeeapi/src/core/ports/portstest"
	"employeeapi/src/infra/config"
	"employeeapi/src/infra/logger"
)

type employeeJSON struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func newTestServer(t *testing.T) (*Server, *portstest.EmployeeRepository) {
	t.Helper()
	cfg, err := config.Load(t.TempDir() + "/none.env")
	require.NoError(t, err)
	repo := portstest.NewEmployeeRepository()
	return New(cfg, logger.Discard(), repo), repo
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var buf *bytes.Buffer
	if body != "" {
		buf = bytes.NewBufferString(body)
	} else {
		buf = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) employeeJSON {
	t.Helper()
	var e employeeJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
	return e
}

func TestEmployeeLifecycle(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodPost, "/api/employees",
		`{"firstName":"Michael","lastName":"Royf","email":"michael@gmail.com"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)
	require.Greater(t, created.ID, int64(0))

	path := "/api/employees/" + jsonNumber(created.ID)

	w = do(t, s, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created, decode(t, w))

	w = do(t, s, http.MethodPut, path, `{"firstName":"MICHAEL"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode(t, w)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "MICHAEL", updated.FirstName)
	assert.Equal(t, "Royf", updated.LastName)
	assert.Equal(t, "michael@gmail.com", updated.Email)

	w = do(t, s, http.MethodDelete, path, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Employee with id: "+jsonNumber(created.ID)+" was deleted", w.Body.String())

	w = do(t, s, http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestCreateDuplicateEmailConflicts(t *testing.T) {
	s, repo := newTestServer(t)

	body := `{"firstName":"Michael","lastName":"Royf","email":"michael@gmail.com"}`
	require.Equal(t, http.StatusCreated, do(t, s, http.MethodPost, "/api/employees", body).Code)

	w := do(t, s, http.MethodPost, "/api/employees",
		`{"firstName":"Other","lastName":"Person","email":"michael@gmail.com"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Employee already exists with the given email")
	assert.Equal(t, 1, repo.Len())
}

func TestListEmptyIsArray(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodGet, "/api/employees", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestSearchByNames(t *testing.T) {
	s, _ := newTestServer(t)
	do(t, s, http.MethodPost, "/api/employees",
		`{"firstName":"Michael","lastName":"Royf","email":"michael@gmail.com"}`)

	w := do(t, s, http.MethodGet, "/api/employees/search?firstName=Michael&lastName=Royf", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "michael@gmail.com", decode(t, w).Email)

	w = do(t, s, http.MethodGet, "/api/employees/search?firstName=Anna&lastName=Royf", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthEndpoints(t *testing.T) {
	s, repo := newTestServer(t)

	assert.Equal(t, http.StatusOK, do(t, s, http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusOK, do(t, s, http.MethodGet, "/health/detailed", "").Code)

	repo.Err = assert.AnError
	w := do(t, s, http.MethodGet, "/health/detailed", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "degraded")
}

func TestUnknownRouteReturnsJSON404(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func jsonNumber(n int64) string {
	b, _ := json.Marshal(n)
	return string(b)
}
