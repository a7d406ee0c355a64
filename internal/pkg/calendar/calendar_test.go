package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysInRange(t *testing.T) {
	t.Run("inclusive and ordered", func(t *testing.T) {
		days := DaysInRange(Date(2024, 2, 27), Date(2024, 3, 2))
		require.Len(t, days, 5)
		assert.Equal(t, Date(2024, 2, 27), days[0])
		assert.Equal(t, Date(2024, 2, 29), days[2])
		assert.Equal(t, Date(2024, 3, 2), days[4])
	})

	t.Run("single day", func(t *testing.T) {
		assert.Equal(t, []time.Time{Date(2024, 5, 1)}, DaysInRange(Date(2024, 5, 1), Date(2024, 5, 1)))
	})

	t.Run("empty when start after end", func(t *testing.T) {
		assert.Empty(t, DaysInRange(Date(2024, 5, 2), Date(2024, 5, 1)))
	})

	t.Run("sequence is restartable", func(t *testing.T) {
		seq := Days(Date(2024, 1, 1), Date(2024, 1, 3))
		var first, second int
		for range seq {
			first++
		}
		for range seq {
			second++
		}
		assert.Equal(t, 3, first)
		assert.Equal(t, first, second)
	})

	t.Run("ignores time of day", func(t *testing.T) {
		start := time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC)
		end := time.Date(2024, 1, 2, 0, 15, 0, 0, time.UTC)
		assert.Len(t, DaysInRange(start, end), 2)
	})
}

func TestWorkingDays(t *testing.T) {
	// 2024-06-03 is a Monday
	days := WorkingDays(Date(2024, 6, 1), Date(2024, 6, 9))
	require.Len(t, days, 5)
	assert.Equal(t, Date(2024, 6, 3), days[0])
	assert.Equal(t, Date(2024, 6, 7), days[4])
}

func TestIsWeekend(t *testing.T) {
	assert.True(t, IsWeekend(Date(2024, 6, 8)))
	assert.True(t, IsWeekend(Date(2024, 6, 9)))
	assert.False(t, IsWeekend(Date(2024, 6, 10)))
}

func TestIsToday(t *testing.T) {
	assert.True(t, IsToday(time.Now()))
	assert.False(t, IsToday(time.Now().AddDate(0, 0, -1)))
}

func TestFormatParseRoundTrip(t *testing.T) {
	for d := range Days(Date(1999, 12, 25), Date(2001, 3, 5)) {
		parsed, err := ParseDate(FormatDate(d))
		require.NoError(t, err)
		require.Equal(t, d, parsed)
	}

	leap, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", FormatDate(leap))
	assert.Equal(t, "29/02/2024", Format(leap, "02/01/2006"))
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "2024-13-01", "2023-02-29", "2024/01/01", "2024-01-01T00:00:00Z"} {
		_, err := ParseDate(s)
		assert.ErrorIs(t, err, ErrInvalidDate, s)
	}
}

func TestSpanInRange(t *testing.T) {
	rs, re := Date(2024, 6, 3), Date(2024, 6, 16)

	tests := []struct {
		name       string
		start, end time.Time
		want       Span
		ok         bool
	}{
		{"inside", Date(2024, 6, 5), Date(2024, 6, 7), Span{StartCol: 2, Days: 3}, true},
		{"clipped left", Date(2024, 5, 30), Date(2024, 6, 4), Span{StartCol: 0, Days: 2}, true},
		{"clipped right", Date(2024, 6, 15), Date(2024, 6, 20), Span{StartCol: 12, Days: 2}, true},
		{"covers window", Date(2024, 5, 1), Date(2024, 7, 1), Span{StartCol: 0, Days: 14}, true},
		{"touches last day", Date(2024, 6, 16), Date(2024, 6, 16), Span{StartCol: 13, Days: 1}, true},
		{"before", Date(2024, 5, 1), Date(2024, 6, 2), Span{}, false},
		{"after", Date(2024, 6, 17), Date(2024, 6, 20), Span{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SpanInRange(tt.start, tt.end, rs, re)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRanges(t *testing.T) {
	wed := Date(2024, 6, 12)

	s, e := WeekRange(wed)
	assert.Equal(t, Date(2024, 6, 10), s)
	assert.Equal(t, Date(2024, 6, 16), e)

	s, e = WeekRange(Date(2024, 6, 16)) // Sunday belongs to the preceding Monday
	assert.Equal(t, Date(2024, 6, 10), s)
	assert.Equal(t, Date(2024, 6, 16), e)

	s, e = MonthRange(Date(2024, 2, 10))
	assert.Equal(t, Date(2024, 2, 1), s)
	assert.Equal(t, Date(2024, 2, 29), e)

	s, e = FourWeekRange(wed)
	assert.Equal(t, Date(2024, 6, 10), s)
	assert.Equal(t, Date(2024, 7, 8), e)
}

func TestNavigate(t *testing.T) {
	s, e, err := Navigate(Date(2024, 6, 10), Next, ViewWeek)
	require.NoError(t, err)
	assert.Equal(t, Date(2024, 6, 24), s)
	assert.Equal(t, Date(2024, 7, 22), e)

	s, e, err = Navigate(Date(2024, 1, 1), Prev, ViewMonth)
	require.NoError(t, err)
	assert.Equal(t, Date(2023, 12, 1), s)
	assert.Equal(t, Date(2023, 12, 31), e)

	_, _, err = Navigate(Date(2024, 1, 1), Next, View("year"))
	assert.ErrorIs(t, err, ErrInvalidView)
}
