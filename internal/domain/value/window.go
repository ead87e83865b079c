package value

import "time"

// Trading-hour slot used both for counting existing deals and for sampling
// synthetic timestamps: 10:00-18:00 local time of the target calendar day.
const (
	windowOpenHour  = 10
	windowCloseHour = 18
)

// DayWindow is the 8-hour slot of one calendar day. Start and End are
// inclusive bounds on the same day, Start < End.
type DayWindow struct {
	Start time.Time
	End   time.Time
}

// NewDayWindow returns the window of the calendar day daysAgo days before
// now, in now's location.
func NewDayWindow(now time.Time, daysAgo int) DayWindow {
	year, month, day := now.AddDate(0, 0, -daysAgo).Date()

	return DayWindow{
		Start: time.Date(year, month, day, windowOpenHour, 0, 0, 0, now.Location()),
		End:   time.Date(year, month, day, windowCloseHour, 0, 0, 0, now.Location()),
	}
}

// Contains reports whether t falls inside the window, bounds included.
func (w DayWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Duration returns the window length.
func (w DayWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}
