package booking

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/teamsched/scheduler-backend/internal/resource"
)

const icalProductID = "-//teamsched//scheduler-backend//EN"

// RenderICal writes the resource's bookings as all-day events. DTEND is
// exclusive in iCalendar, so it is the day after the booking's last day.
func RenderICal(r *resource.Resource, bookings []*Booking, now time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(icalProductID)
	cal.SetXWRCalName(r.FullName())

	for _, b := range bookings {
		event := cal.AddEvent(b.ID + "@scheduler")
		event.SetDtStampTime(now.UTC())
		event.SetCreatedTime(b.CreatedAt.UTC())
		event.SetModifiedAt(b.UpdatedAt.UTC())
		event.SetAllDayStartAt(b.StartDate)
		event.SetAllDayEndAt(b.EndDate.AddDate(0, 0, 1))
		event.SetSummary(summary(b))
		if b.Notes != "" {
			event.SetDescription(b.Notes)
		}
	}
	return cal.Serialize()
}

func summary(b *Booking) string {
	if b.Type == TypeLeave {
		lt := LeaveOther
		if b.LeaveType != nil {
			lt = *b.LeaveType
		}
		return fmt.Sprintf("Leave (%s)", lt)
	}
	name := "Project"
	if b.ProjectName != nil {
		name = *b.ProjectName
	}
	return fmt.Sprintf("%s (%gh/day)", name, b.HoursPerDay)
}
