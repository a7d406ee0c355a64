package department

import (
	"net/http"
	"time"

	"github.com/teamsched/scheduler-backend/internal/pkg/apperror"
)

var (
	ErrNotFound      = apperror.New(http.StatusNotFound, "department not found")
	ErrNameRequired  = apperror.New(http.StatusBadRequest, "name is required")
	ErrDuplicateName = apperror.New(http.StatusConflict, "department name already exists")
)

// Department groups resources for display and reporting.
type Department struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
