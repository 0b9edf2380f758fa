package service

import (
	"fmt"
	"time"

	"github.com/Vicentealoise3/strike-latino-2a/internal/config"
)

// Window is the local-time interval that counts as "today". End is exclusive
// and always exactly 24 hours after start.
type Window struct {
	Start time.Time
	End   time.Time
}

// DayWindow resolves the current day's window in the configured timezone.
// A zero now means the current instant. The instant is converted into the
// zone before any hour or date arithmetic; the boundary is defined in local
// time, never UTC.
//
// Under the calendar policy the day starts at local midnight. Under the
// sports policy it rolls over at 06:00: before six in the morning the day
// still belongs to the previous date.
func (s *Service) DayWindow(now time.Time) (Window, error) {
	if now.IsZero() {
		now = s.now()
	}
	now = now.In(s.loc)

	var start time.Time
	switch s.cfg.Profile.DayWindowMode {
	case config.WindowCalendar:
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	case config.WindowSports:
		day := now.Day()
		if now.Hour() < 6 {
			day--
		}
		start = time.Date(now.Year(), now.Month(), day, 6, 0, 0, 0, s.loc)
	default:
		return Window{}, fmt.Errorf("invalid day window mode %q", s.cfg.Profile.DayWindowMode)
	}

	return Window{Start: start, End: start.Add(24 * time.Hour)}, nil
}

// Contains reports whether a local instant falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}
