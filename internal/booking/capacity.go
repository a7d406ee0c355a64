package booking

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/teamsched/scheduler-backend/internal/pkg/calendar"
)

// Covers reports whether day falls inside the booking's inclusive range.
func (b *Booking) Covers(day time.Time) bool {
	d := calendar.Truncate(day)
	return !d.Before(calendar.Truncate(b.StartDate)) && !d.After(calendar.Truncate(b.EndDate))
}

// Overlaps reports whether the booking shares at least one day with [start, end].
func (b *Booking) Overlaps(start, end time.Time) bool {
	return calendar.Overlaps(b.StartDate, b.EndDate, start, end)
}

// Hours returns the daily load as a decimal.
func (b *Booking) Hours() decimal.Decimal {
	return decimal.NewFromFloat(b.HoursPerDay)
}

// DailyLoad sums the hours of every booking covering day.
func DailyLoad(bookings []*Booking, day time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, b := range bookings {
		if b.Covers(day) {
			total = total.Add(b.Hours())
		}
	}
	return total
}
