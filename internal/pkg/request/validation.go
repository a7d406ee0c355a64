package request

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/teamsched/scheduler-backend/internal/pkg/apperror"
	"github.com/teamsched/scheduler-backend/internal/pkg/calendar"
)

var (
	ErrInvalidRange = apperror.New(http.StatusBadRequest, "start must be before or equal to end")
	ErrRangeTooLong = apperror.New(http.StatusBadRequest, "date range is too long")
	ErrMissingRange = apperror.New(http.StatusBadRequest, "start and end, or date, are required")
)

// RegisterValidators installs the custom binding tags on gin's validator engine.
// It is safe to call more than once.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("calendar_date", func(fl validator.FieldLevel) bool {
		_, err := calendar.ParseDate(fl.Field().String())
		return err == nil
	})
}

// CheckRange validates an inclusive date window.
func CheckRange(start, end time.Time, maxDays int) error {
	if start.After(end) {
		return ErrInvalidRange
	}
	if maxDays > 0 && calendar.DaysBetween(start, end)+1 > maxDays {
		return apperror.Wrap(ErrRangeTooLong, http.StatusBadRequest,
			fmt.Sprintf("date range is too long (max %d days)", maxDays))
	}
	return nil
}
