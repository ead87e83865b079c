package value_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"market_seeder/internal/domain/value"
)

func TestNewDayWindow(t *testing.T) {
	rq := require.New(t)

	loc, err := time.LoadLocation("Europe/Berlin")
	rq.NoError(err)

	now := time.Date(2024, time.March, 15, 23, 42, 7, 0, loc)

	testCases := []struct {
		name    string
		daysAgo int
		day     int
	}{
		{name: "today", daysAgo: 0, day: 15},
		{name: "yesterday", daysAgo: 1, day: 14},
		{name: "two weeks back", daysAgo: 13, day: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			window := value.NewDayWindow(now, tc.daysAgo)

			rq.Equal(time.Date(2024, time.March, tc.day, 10, 0, 0, 0, loc), window.Start)
			rq.Equal(time.Date(2024, time.March, tc.day, 18, 0, 0, 0, loc), window.End)
			rq.True(window.Start.Before(window.End))
			rq.Equal(8*time.Hour, window.Duration())

			// Both bounds on the same calendar day.
			sy, sm, sd := window.Start.Date()
			ey, em, ed := window.End.Date()
			rq.Equal([3]int{sy, int(sm), sd}, [3]int{ey, int(em), ed})
		})
	}
}

func TestDayWindowContains(t *testing.T) {
	rq := require.New(t)

	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	window := value.NewDayWindow(now, 0)

	rq.True(window.Contains(window.Start), "start is inclusive")
	rq.True(window.Contains(window.End), "end is inclusive")
	rq.True(window.Contains(window.Start.Add(4*time.Hour)))
	rq.False(window.Contains(window.Start.Add(-time.Nanosecond)))
	rq.False(window.Contains(window.End.Add(time.Nanosecond)))
}
