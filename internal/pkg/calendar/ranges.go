package calendar

import (
	"errors"
	"time"
)

// View is the granularity of a schedule window.
type View string

const (
	ViewWeek  View = "week"
	ViewMonth View = "month"
)

type Direction string

const (
	Prev Direction = "prev"
	Next Direction = "next"
)

var ErrInvalidView = errors.New("view must be week or month")

// StartOfWeek returns the Monday on or before t.
func StartOfWeek(t time.Time) time.Time {
	d := Truncate(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// WeekRange returns the Monday–Sunday week containing t.
func WeekRange(t time.Time) (time.Time, time.Time) {
	start := StartOfWeek(t)
	return start, start.AddDate(0, 0, 6)
}

// MonthRange returns the first and last day of t's month.
func MonthRange(t time.Time) (time.Time, time.Time) {
	y, m, _ := t.Date()
	start := Date(y, m, 1)
	return start, start.AddDate(0, 1, -1)
}

// FourWeekRange starts on the Monday of t's week and ends four weeks later.
// The end date is inclusive, so the window covers 29 days.
func FourWeekRange(t time.Time) (time.Time, time.Time) {
	start := StartOfWeek(t)
	return start, start.AddDate(0, 0, 28)
}

// RangeFor returns the default window for a view anchored at t.
func RangeFor(t time.Time, view View) (time.Time, time.Time, error) {
	switch view {
	case ViewWeek:
		s, e := FourWeekRange(t)
		return s, e, nil
	case ViewMonth:
		s, e := MonthRange(t)
		return s, e, nil
	default:
		return time.Time{}, time.Time{}, ErrInvalidView
	}
}

// Navigate moves a window backwards or forwards: two weeks at a time in week
// view, one month at a time in month view.
func Navigate(currentStart time.Time, dir Direction, view View) (time.Time, time.Time, error) {
	step := 1
	if dir == Prev {
		step = -1
	}
	var anchor time.Time
	switch view {
	case ViewWeek:
		anchor = Truncate(currentStart).AddDate(0, 0, 14*step)
	case ViewMonth:
		y, m, _ := currentStart.Date()
		anchor = Date(y, m+time.Month(step), 1)
	default:
		return time.Time{}, time.Time{}, ErrInvalidView
	}
	return RangeFor(anchor, view)
}
