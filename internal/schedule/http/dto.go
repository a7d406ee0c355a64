package http

import (
	"time"

	bookingHttp "github.com/teamsched/scheduler-backend/internal/booking/http"
	"github.com/teamsched/scheduler-backend/internal/pkg/calendar"
	"github.com/teamsched/scheduler-backend/internal/pkg/request"
	resourceHttp "github.com/teamsched/scheduler-backend/internal/resource/http"
	"github.com/teamsched/scheduler-backend/internal/schedule"
)

// ScheduleQuery selects the window either explicitly with start and end, or
// as the default range of a view around date.
type ScheduleQuery struct {
	Start string `form:"start" binding:"omitempty,calendar_date"`
	End   string `form:"end" binding:"omitempty,calendar_date"`
	Date  string `form:"date" binding:"omitempty,calendar_date"`
	View  string `form:"view" binding:"omitempty,oneof=week month"`
}

// Window resolves the query into an inclusive date range.
func (q *ScheduleQuery) Window(maxDays int) (time.Time, time.Time, calendar.View, error) {
	view := calendar.View(q.View)
	if view == "" {
		view = calendar.ViewWeek
	}

	if q.Start != "" || q.End != "" {
		if q.Start == "" || q.End == "" {
			return time.Time{}, time.Time{}, view, request.ErrMissingRange
		}
		r := request.DateRangeQuery{Start: q.Start, End: q.End}
		start, end, err := r.Parse(maxDays)
		return start, end, view, err
	}
	if q.Date == "" {
		return time.Time{}, time.Time{}, view, request.ErrMissingRange
	}

	anchor, err := calendar.ParseDate(q.Date)
	if err != nil {
		return time.Time{}, time.Time{}, view, err
	}
	start, end, err := calendar.RangeFor(anchor, view)
	if err != nil {
		return time.Time{}, time.Time{}, view, err
	}
	return start, end, view, request.CheckRange(start, end, maxDays)
}

type DayResponse struct {
	Date      string `json:"date"`
	IsWeekend bool   `json:"is_weekend"`
	IsToday   bool   `json:"is_today"`
}

type EntryResponse struct {
	bookingHttp.BookingResponse
	StartCol int `json:"start_col"`
	SpanDays int `json:"span_days"`
}

// RowResponse is a full resource record with its bookings in the window.
type RowResponse struct {
	resourceHttp.ResourceResponse
	Bookings []EntryResponse `json:"bookings"`
}

type NavigationResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type ScheduleResponse struct {
	Start     string             `json:"start"`
	End       string             `json:"end"`
	View      string             `json:"view"`
	Prev      NavigationResponse `json:"prev"`
	Next      NavigationResponse `json:"next"`
	Days      []DayResponse      `json:"days"`
	Resources []RowResponse      `json:"resources"`
}

func newNavigation(start time.Time, dir calendar.Direction, view calendar.View) NavigationResponse {
	s, e, err := calendar.Navigate(start, dir, view)
	if err != nil {
		return NavigationResponse{}
	}
	return NavigationResponse{Start: calendar.FormatDate(s), End: calendar.FormatDate(e)}
}

func NewScheduleResponse(start, end time.Time, view calendar.View, rows []schedule.Row) ScheduleResponse {
	resp := ScheduleResponse{
		Start:     calendar.FormatDate(start),
		End:       calendar.FormatDate(end),
		View:      string(view),
		Prev:      newNavigation(start, calendar.Prev, view),
		Next:      newNavigation(start, calendar.Next, view),
		Days:      make([]DayResponse, 0),
		Resources: make([]RowResponse, len(rows)),
	}

	for d := range calendar.Days(start, end) {
		resp.Days = append(resp.Days, DayResponse{
			Date:      calendar.FormatDate(d),
			IsWeekend: calendar.IsWeekend(d),
			IsToday:   calendar.IsToday(d),
		})
	}

	for i, row := range rows {
		entries := make([]EntryResponse, len(row.Bookings))
		for j, e := range row.Bookings {
			entries[j] = EntryResponse{
				BookingResponse: bookingHttp.NewBookingResponse(e.Booking),
				StartCol:        e.Span.StartCol,
				SpanDays:        e.Span.Days,
			}
		}
		resp.Resources[i] = RowResponse{
			ResourceResponse: resourceHttp.NewResponse(row.Resource),
			Bookings:         entries,
		}
	}
	return resp
}
