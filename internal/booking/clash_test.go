package booking

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamsched/scheduler-backend/internal/pkg/calendar"
)

// 2024-01-01 is a Monday.
func jan(day int) time.Time {
	return calendar.Date(2024, time.January, day)
}

func projectBooking(id string, start, end time.Time, hours float64) *Booking {
	pid := "p-1"
	return &Booking{ID: id, ResourceID: "r-1", ProjectID: &pid, StartDate: start, EndDate: end, HoursPerDay: hours, Type: TypeProject}
}

func TestFindClashes_OverCapacity(t *testing.T) {
	existing := []*Booking{projectBooking("a", jan(1), jan(5), 6)}

	clashes := FindClashes(8, existing, Candidate{ResourceID: "r-1", Start: jan(3), End: jan(4), HoursPerDay: 3})

	require.Len(t, clashes, 2)
	for i, want := range []time.Time{jan(3), jan(4)} {
		assert.True(t, clashes[i].Date.Equal(want))
		assert.True(t, clashes[i].TotalHours.Equal(decimal.NewFromInt(9)))
		assert.True(t, clashes[i].Capacity.Equal(decimal.NewFromInt(8)))
	}
}

func TestFindClashes_EqualToCapacityIsAllowed(t *testing.T) {
	existing := []*Booking{projectBooking("a", jan(1), jan(5), 6)}

	clashes := FindClashes(8, existing, Candidate{ResourceID: "r-1", Start: jan(3), End: jan(4), HoursPerDay: 2})
	assert.Empty(t, clashes)
}

func TestFindClashes_WeekendsAreExempt(t *testing.T) {
	// Sat 6th and Sun 7th only.
	existing := []*Booking{projectBooking("a", jan(6), jan(7), 8)}

	clashes := FindClashes(8, existing, Candidate{ResourceID: "r-1", Start: jan(6), End: jan(7), HoursPerDay: 8})
	assert.Empty(t, clashes)

	// Fri-Mon: only the working days clash.
	existing = []*Booking{projectBooking("a", jan(5), jan(8), 8)}
	clashes = FindClashes(8, existing, Candidate{ResourceID: "r-1", Start: jan(5), End: jan(8), HoursPerDay: 1})
	require.Len(t, clashes, 2)
	assert.True(t, clashes[0].Date.Equal(jan(5)))
	assert.True(t, clashes[1].Date.Equal(jan(8)))
}

func TestFindClashes_OnlyCoveredDaysCount(t *testing.T) {
	existing := []*Booking{
		projectBooking("a", jan(1), jan(2), 4),
		projectBooking("b", jan(2), jan(3), 4),
	}

	clashes := FindClashes(8, existing, Candidate{ResourceID: "r-1", Start: jan(1), End: jan(3), HoursPerDay: 1})
	require.Len(t, clashes, 1)
	assert.True(t, clashes[0].Date.Equal(jan(2)))
	assert.Equal(t, "9", clashes[0].TotalHours.String())
}

func TestFindClashes_FractionalCapacity(t *testing.T) {
	existing := []*Booking{projectBooking("a", jan(1), jan(1), 3.8)}

	assert.Empty(t, FindClashes(7.6, existing, Candidate{Start: jan(1), End: jan(1), HoursPerDay: 3.8}))
	assert.Len(t, FindClashes(7.6, existing, Candidate{Start: jan(1), End: jan(1), HoursPerDay: 3.9}), 1)
}

func TestFindClashes_CandidateAloneOverCapacity(t *testing.T) {
	clashes := FindClashes(6, nil, Candidate{Start: jan(1), End: jan(2), HoursPerDay: 7})
	assert.Len(t, clashes, 2)
}

func TestClash_MarshalJSON(t *testing.T) {
	c := Clash{Date: jan(3), TotalHours: decimal.NewFromFloat(9.5), Capacity: decimal.NewFromInt(8)}

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-01-03","totalHours":9.5,"capacity":8}`, string(data))
}

func TestOverallocationError(t *testing.T) {
	err := &OverallocationError{Clashes: []Clash{{Date: jan(3)}}}

	assert.ErrorIs(t, err, ErrOverallocation)
	assert.Equal(t, "booking would cause overallocation", err.Error())

	details, ok := err.ErrorDetails().(map[string]any)
	require.True(t, ok)
	assert.Len(t, details["clashes"], 1)
}
