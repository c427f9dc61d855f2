package dashboard

import "time"

// Window is a half-open calendar interval: Start <= t < End.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// TodayWindow returns the calendar day containing now, in now's location.
func TodayWindow(now time.Time) Window {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return Window{Start: start, End: start.AddDate(0, 0, 1)}
}

// DaysAgo returns local midnight n calendar days before now. The anchors for
// one derivation pass are computed once and shared by every deriver, so a
// pass straddling midnight cannot mix two different days.
func DaysAgo(now time.Time, n int) time.Time {
	d := now.AddDate(0, 0, -n)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}
