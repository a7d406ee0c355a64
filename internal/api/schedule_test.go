package api_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scheduleResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
	View  string `json:"view"`
	Prev  struct {
		Start string `json:"start"`
		End   string `json:"end"`
	} `json:"prev"`
	Next struct {
		Start string `json:"start"`
		End   string `json:"end"`
	} `json:"next"`
	Days []struct {
		Date      string `json:"date"`
		IsWeekend bool   `json:"is_weekend"`
	} `json:"days"`
	Resources []struct {
		ID        string    `json:"id"`
		Email     string    `json:"email"`
		IsActive  bool      `json:"is_active"`
		CreatedAt time.Time `json:"created_at"`
		Bookings  []struct {
			ID       string `json:"id"`
			StartCol int    `json:"start_col"`
			SpanDays int    `json:"span_days"`
		} `json:"bookings"`
	} `json:"resources"`
}

func TestSchedule(t *testing.T) {
	setupApp(t)

	resID := createResource(t, map[string]any{"first_name": "Linus", "last_name": "T", "email": "linus@example.com"})
	projID := createProject(t, map[string]any{"name": "Kernel"})
	w := executeRequest(http.MethodPost, "/v1/bookings", projectBooking(resID, projID, "2024-06-05", "2024-06-11", 4), testToken)
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("explicit window", func(t *testing.T) {
		w := executeRequest(http.MethodGet, "/v1/schedule?start=2024-06-10&end=2024-06-16", nil, testToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		got := decode[scheduleResponse](t, w)

		assert.Equal(t, "2024-06-10", got.Start)
		assert.Equal(t, "2024-06-16", got.End)
		require.Len(t, got.Days, 7)
		assert.False(t, got.Days[0].IsWeekend)
		assert.True(t, got.Days[5].IsWeekend)

		require.Len(t, got.Resources, 1)
		assert.Equal(t, resID, got.Resources[0].ID)
		assert.Equal(t, "linus@example.com", got.Resources[0].Email)
		assert.True(t, got.Resources[0].IsActive)
		assert.False(t, got.Resources[0].CreatedAt.IsZero())
		require.Len(t, got.Resources[0].Bookings, 1)
		assert.Equal(t, 0, got.Resources[0].Bookings[0].StartCol)
		assert.Equal(t, 2, got.Resources[0].Bookings[0].SpanDays)
	})

	t.Run("week view from anchor date", func(t *testing.T) {
		w := executeRequest(http.MethodGet, "/v1/schedule?date=2024-06-12&view=week", nil, testToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		got := decode[scheduleResponse](t, w)

		assert.Equal(t, "week", got.View)
		assert.Equal(t, "2024-06-10", got.Start)
		assert.Equal(t, "2024-07-08", got.End)
		assert.Len(t, got.Days, 29)
		assert.Equal(t, "2024-05-27", got.Prev.Start)
		assert.Equal(t, "2024-06-24", got.Next.Start)
	})

	t.Run("month view", func(t *testing.T) {
		w := executeRequest(http.MethodGet, "/v1/schedule?date=2024-02-10&view=month", nil, testToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		got := decode[scheduleResponse](t, w)

		assert.Equal(t, "2024-02-01", got.Start)
		assert.Equal(t, "2024-02-29", got.End)
		assert.Equal(t, "2024-01-01", got.Prev.Start)
		assert.Equal(t, "2024-03-31", got.Next.End)
		require.Len(t, got.Resources, 1)
		assert.Empty(t, got.Resources[0].Bookings)
	})

	t.Run("rejected windows", func(t *testing.T) {
		for _, q := range []string{
			"",
			"?start=2024-06-10",
			"?start=2024-06-16&end=2024-06-10",
			"?start=2023-01-01&end=2024-12-31",
			"?date=2024-06-10&view=year",
			"?date=junk",
		} {
			w := executeRequest(http.MethodGet, "/v1/schedule"+q, nil, testToken)
			assert.Equal(t, http.StatusBadRequest, w.Code, q)
		}
	})
}
