package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/teamsched/scheduler-backend/internal/app"
)

const testSecret = "test-secret-0123456789"

var (
	testRouter *gin.Engine
	testToken  string
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// setupApp builds a fresh container on the in-memory backend, so every test
// starts from empty storage.
func setupApp(t *testing.T) {
	t.Helper()
	testRouter, testToken = newApp(t, app.Config{})
}

func newApp(t *testing.T, cfg app.Config) (*gin.Engine, string) {
	t.Helper()

	l := log.New()
	l.SetOutput(io.Discard)

	cfg.JWTSecret = testSecret
	cfg.Logger = l
	if cfg.MaxRangeDays == 0 {
		cfg.MaxRangeDays = 366
	}

	container, err := app.NewContainer(cfg)
	require.NoError(t, err)

	token, err := container.JWTManager.GenerateAccessToken("api-test", "API Test")
	require.NoError(t, err)
	return container.Router, token
}

func executeRequest(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}

	req, _ := http.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	testRouter.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

type idResponse struct {
	ID string `json:"id"`
}

type errorResponse struct {
	Error   string          `json:"error"`
	Details json.RawMessage `json:"details"`
}

func createDepartment(t *testing.T, name string) string {
	t.Helper()
	w := executeRequest(http.MethodPost, "/v1/departments", map[string]any{"name": name}, testToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[idResponse](t, w).ID
}

func createResource(t *testing.T, body map[string]any) string {
	t.Helper()
	w := executeRequest(http.MethodPost, "/v1/resources", body, testToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[idResponse](t, w).ID
}

func createProject(t *testing.T, body map[string]any) string {
	t.Helper()
	w := executeRequest(http.MethodPost, "/v1/projects", body, testToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[idResponse](t, w).ID
}

func projectBooking(resourceID, projectID, start, end string, hours float64) map[string]any {
	return map[string]any{
		"resource_id":   resourceID,
		"project_id":    projectID,
		"start_date":    start,
		"end_date":      end,
		"hours_per_day": hours,
		"booking_type":  "project",
	}
}
