package service

import (
	"testing"
	"time"

	"github.com/Vicentealoise3/strike-latino-2a/internal/config"
	"github.com/Vicentealoise3/strike-latino-2a/internal/ingest/theshow"
	"github.com/Vicentealoise3/strike-latino-2a/internal/league"
)

func windowService(t *testing.T, mode string) *Service {
	t.Helper()
	cfg := newTestConfig()
	cfg.Profile.DayWindowMode = mode
	svc, err := New(cfg, league.New(cfg), theshow.NewClient(cfg))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return svc
}

func TestDayWindowCalendar(t *testing.T) {
	loc := santiago(t)
	svc := windowService(t, config.WindowCalendar)

	now := time.Date(2025, time.August, 30, 15, 28, 0, 0, loc)
	w, err := svc.DayWindow(now)
	if err != nil {
		t.Fatalf("DayWindow: %v", err)
	}

	wantStart := time.Date(2025, time.August, 30, 0, 0, 0, 0, loc)
	if !w.Start.Equal(wantStart) {
		t.Errorf("Start = %v, want %v", w.Start, wantStart)
	}
	if got := w.End.Sub(w.Start); got != 24*time.Hour {
		t.Errorf("window length = %v, want 24h", got)
	}
}

func TestDayWindowSportsBeforeSix(t *testing.T) {
	loc := santiago(t)
	svc := windowService(t, config.WindowSports)

	// 05:59 still belongs to the previous day's window.
	now := time.Date(2025, time.August, 31, 5, 59, 0, 0, loc)
	w, err := svc.DayWindow(now)
	if err != nil {
		t.Fatalf("DayWindow: %v", err)
	}

	wantStart := time.Date(2025, time.August, 30, 6, 0, 0, 0, loc)
	if !w.Start.Equal(wantStart) {
		t.Errorf("Start = %v, want %v", w.Start, wantStart)
	}
	if got := w.End.Sub(w.Start); got != 24*time.Hour {
		t.Errorf("window length = %v, want 24h", got)
	}
}

func TestDayWindowSportsAtSix(t *testing.T) {
	loc := santiago(t)
	svc := windowService(t, config.WindowSports)

	now := time.Date(2025, time.August, 31, 6, 0, 0, 0, loc)
	w, err := svc.DayWindow(now)
	if err != nil {
		t.Fatalf("DayWindow: %v", err)
	}

	wantStart := time.Date(2025, time.August, 31, 6, 0, 0, 0, loc)
	if !w.Start.Equal(wantStart) {
		t.Errorf("Start = %v, want %v", w.Start, wantStart)
	}
}

func TestDayWindowConvertsIntoZone(t *testing.T) {
	loc := santiago(t)
	svc := windowService(t, config.WindowSports)

	// 09:30 UTC on Aug 31 is 05:30 in Santiago (UTC-4): still the previous
	// day's window. A naive UTC hour comparison would get this wrong.
	now := time.Date(2025, time.August, 31, 9, 30, 0, 0, time.UTC)
	w, err := svc.DayWindow(now)
	if err != nil {
		t.Fatalf("DayWindow: %v", err)
	}

	wantStart := time.Date(2025, time.August, 30, 6, 0, 0, 0, loc)
	if !w.Start.Equal(wantStart) {
		t.Errorf("Start = %v, want %v", w.Start, wantStart)
	}
}

func TestDayWindowInvalidMode(t *testing.T) {
	svc := windowService(t, config.WindowSports)
	svc.cfg.Profile.DayWindowMode = "lunar"

	if _, err := svc.DayWindow(time.Time{}); err == nil {
		t.Fatal("expected error for invalid day window mode")
	}
}

func TestWindowContains(t *testing.T) {
	loc := santiago(t)
	start := time.Date(2025, time.August, 30, 6, 0, 0, 0, loc)
	w := Window{Start: start, End: start.Add(24 * time.Hour)}

	if !w.Contains(start) {
		t.Error("start should be inclusive")
	}
	if w.Contains(w.End) {
		t.Error("end should be exclusive")
	}
	if !w.Contains(start.Add(23*time.Hour + 59*time.Minute)) {
		t.Error("instant just inside the window rejected")
	}
}
