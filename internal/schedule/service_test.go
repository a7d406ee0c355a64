package schedule_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamsched/scheduler-backend/internal/booking"
	"github.com/teamsched/scheduler-backend/internal/pkg/calendar"
	"github.com/teamsched/scheduler-backend/internal/project"
	"github.com/teamsched/scheduler-backend/internal/resource"
	"github.com/teamsched/scheduler-backend/internal/schedule"
	"github.com/teamsched/scheduler-backend/internal/storage/memory"
)

func jan(day int) time.Time {
	return calendar.Date(2024, time.January, day)
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	mk := func(first, last, email string, active bool) *resource.Resource {
		r := &resource.Resource{FirstName: first, LastName: last, Email: email, CapacityHours: 8, IsActive: active}
		require.NoError(t, store.Resources().Create(ctx, r))
		return r
	}
	zoe := mk("Zoe", "Adams", "zoe@example.com", true)
	adaB := mk("Ada", "Byron", "adab@example.com", true)
	adaA := mk("Ada", "Anders", "adaa@example.com", true)
	gone := mk("Old", "Timer", "old@example.com", false)

	p := &project.Project{Name: "Apollo", Color: "#8B5CF6", IsActive: true}
	require.NoError(t, store.Projects().Create(ctx, p))

	book := func(resID string, start, end time.Time) {
		b := &booking.Booking{ResourceID: resID, ProjectID: &p.ID, StartDate: start, EndDate: end, HoursPerDay: 4, Type: booking.TypeProject}
		require.NoError(t, store.Bookings().Create(ctx, b))
	}
	book(zoe.ID, jan(10), jan(20))  // clipped on the right
	book(zoe.ID, jan(1), jan(9))    // clipped on the left, sorts first
	book(adaA.ID, jan(30), jan(31)) // outside the window
	book(gone.ID, jan(9), jan(10))  // inactive resource

	svc := schedule.NewService(store.Resources(), store.Bookings())
	rows, err := svc.Get(ctx, jan(8), jan(14))
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, adaA.ID, rows[0].Resource.ID)
	assert.Equal(t, adaB.ID, rows[1].Resource.ID)
	assert.Equal(t, zoe.ID, rows[2].Resource.ID)

	assert.Empty(t, rows[0].Bookings)
	assert.Empty(t, rows[1].Bookings)

	require.Len(t, rows[2].Bookings, 2)
	first, second := rows[2].Bookings[0], rows[2].Bookings[1]
	assert.True(t, first.Booking.StartDate.Equal(jan(1)))
	assert.Equal(t, calendar.Span{StartCol: 0, Days: 2}, first.Span)
	assert.Equal(t, calendar.Span{StartCol: 2, Days: 5}, second.Span)
	assert.Equal(t, "Apollo", *second.Booking.ProjectName)
}
