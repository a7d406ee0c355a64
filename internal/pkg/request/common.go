package request

import (
	"time"

	"github.com/teamsched/scheduler-backend/internal/pkg/calendar"
)

// ByIDRequest is a common struct for endpoints that require an ID path parameter.
type ByIDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// DateRangeQuery binds the start/end query parameters shared by the schedule
// and report endpoints.
type DateRangeQuery struct {
	Start string `form:"start" binding:"required,calendar_date"`
	End   string `form:"end" binding:"required,calendar_date"`
}

// Parse converts the bound strings into calendar dates and checks their order
// and the maximum window length.
func (q *DateRangeQuery) Parse(maxDays int) (time.Time, time.Time, error) {
	start, err := calendar.ParseDate(q.Start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := calendar.ParseDate(q.End)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, CheckRange(start, end, maxDays)
}

// ParseDatePtr parses an optional YYYY-MM-DD value.
func ParseDatePtr(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	d, err := calendar.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ParseOptionalDate converts a PATCH date field, keeping the absent/null distinction.
func ParseOptionalDate(o Optional[string]) (Optional[time.Time], error) {
	d, err := ParseDatePtr(o.Value)
	if err != nil {
		return Optional[time.Time]{}, err
	}
	return Optional[time.Time]{Set: o.Set, Value: d}, nil
}
