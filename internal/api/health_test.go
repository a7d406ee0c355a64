package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamsched/scheduler-backend/internal/app"
)

func TestHealth(t *testing.T) {
	setupApp(t)

	w := executeRequest(http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRequestIDPropagated(t *testing.T) {
	setupApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	testRouter.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestAuthRequired(t *testing.T) {
	setupApp(t)

	w := executeRequest(http.MethodGet, "/v1/resources", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = executeRequest(http.MethodGet, "/v1/resources", nil, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = executeRequest(http.MethodGet, "/v1/resources", nil, testToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"items":[],"total":0}`, w.Body.String())
}

func TestRateLimit(t *testing.T) {
	router, token := newApp(t, app.Config{RateLimit: "2-M"})

	do := func() int {
		req := httptest.NewRequest(http.MethodGet, "/v1/projects", nil)
		req.RemoteAddr = "192.0.2.10:4321"
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	require.Equal(t, http.StatusOK, do())
	require.Equal(t, http.StatusOK, do())
	assert.Equal(t, http.StatusTooManyRequests, do())

	// health is outside the limited group
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "192.0.2.10:4321"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInvalidRateLimit(t *testing.T) {
	_, err := app.NewContainer(app.Config{RateLimit: "lots"})
	assert.Error(t, err)
}
