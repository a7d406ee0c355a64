// Package calendar provides timezone-naive calendar date arithmetic.
//
// A calendar date is represented as a time.Time at midnight UTC. All functions
// truncate their inputs first, so callers may pass values carrying a time of day
// or a location without affecting the result.
package calendar

import (
	"errors"
	"iter"
	"slices"
	"time"
)

// DateLayout is the canonical YYYY-MM-DD wire format.
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// Date builds a calendar date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Truncate drops the time of day and location, keeping the wall-clock date.
func Truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return Date(y, m, d)
}

// Days yields every date from start to end inclusive. The sequence is empty
// when start is after end and may be ranged over any number of times.
func Days(start, end time.Time) iter.Seq[time.Time] {
	start, end = Truncate(start), Truncate(end)
	return func(yield func(time.Time) bool) {
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			if !yield(d) {
				return
			}
		}
	}
}

// DaysInRange returns the inclusive list of dates from start to end.
func DaysInRange(start, end time.Time) []time.Time {
	return slices.Collect(Days(start, end))
}

// WorkingDays returns the Monday–Friday dates from start to end inclusive.
func WorkingDays(start, end time.Time) []time.Time {
	var days []time.Time
	for d := range Days(start, end) {
		if !IsWeekend(d) {
			days = append(days, d)
		}
	}
	return days
}

func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsToday reports whether t falls on the current local calendar date.
func IsToday(t time.Time) bool {
	return SameDay(t, time.Now())
}

// SameDay compares the wall-clock dates of a and b, ignoring their locations.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Format renders the date with a Go time layout.
func Format(t time.Time, layout string) string {
	return Truncate(t).Format(layout)
}

// FormatDate renders the date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return Format(t, DateLayout)
}

// ParseDate parses a YYYY-MM-DD string into a calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// DaysBetween is the number of calendar days from a to b (negative when b is before a).
func DaysBetween(a, b time.Time) int {
	return int(Truncate(b).Sub(Truncate(a)).Hours() / 24)
}

// Overlaps reports whether the inclusive ranges [aStart, aEnd] and [bStart, bEnd]
// share at least one date.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !Truncate(aStart).After(Truncate(bEnd)) && !Truncate(aEnd).Before(Truncate(bStart))
}

// Span locates a booking inside a rendered date window.
type Span struct {
	StartCol int // zero-based offset of the first visible day
	Days     int // inclusive number of visible days
}

// SpanInRange clips [bookingStart, bookingEnd] to [rangeStart, rangeEnd].
// It returns false when the two ranges do not overlap.
func SpanInRange(bookingStart, bookingEnd, rangeStart, rangeEnd time.Time) (Span, bool) {
	if !Overlaps(bookingStart, bookingEnd, rangeStart, rangeEnd) {
		return Span{}, false
	}
	from := Truncate(bookingStart)
	if rs := Truncate(rangeStart); from.Before(rs) {
		from = rs
	}
	to := Truncate(bookingEnd)
	if re := Truncate(rangeEnd); to.After(re) {
		to = re
	}
	return Span{
		StartCol: DaysBetween(rangeStart, from),
		Days:     DaysBetween(from, to) + 1,
	}, true
}
