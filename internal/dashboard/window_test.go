package dashboard

import (
	"testing"
	"time"
)

func TestTodayWindowIsHalfOpenCalendarDay(t *testing.T) {
	w := TodayWindow(testNow)

	wantStart := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	if !w.Start.Equal(wantStart) {
		t.Errorf("expected start %v, got %v", wantStart, w.Start)
	}
	if !w.End.Equal(wantStart.AddDate(0, 0, 1)) {
		t.Errorf("expected end %v, got %v", wantStart.AddDate(0, 0, 1), w.End)
	}

	if !w.Contains(w.Start) {
		t.Error("window must include its start")
	}
	if w.Contains(w.End) {
		t.Error("window must exclude its end")
	}
	if !w.Contains(w.End.Add(-time.Nanosecond)) {
		t.Error("window must include the last instant of the day")
	}
}

func TestDaysAgoIsLocalMidnight(t *testing.T) {
	anchor := DaysAgo(testNow, 7)

	want := time.Date(2025, time.March, 8, 0, 0, 0, 0, time.UTC)
	if !anchor.Equal(want) {
		t.Errorf("expected %v, got %v", want, anchor)
	}
}

func TestDaysAgoCrossesMonthBoundary(t *testing.T) {
	anchor := DaysAgo(testNow, 30)

	want := time.Date(2025, time.February, 13, 0, 0, 0, 0, time.UTC)
	if !anchor.Equal(want) {
		t.Errorf("expected %v, got %v", want, anchor)
	}
}

func TestTodayWindowKeepsLocation(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	now := time.Date(2025, time.March, 15, 23, 50, 0, 0, loc)

	w := TodayWindow(now)
	if w.Start.Location() != loc {
		t.Errorf("expected window in caller's location, got %v", w.Start.Location())
	}
	if w.Start.Day() != 15 {
		t.Errorf("expected local day 15, got %d", w.Start.Day())
	}
}
