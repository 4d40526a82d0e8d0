package booking

import (
	"fmt"
	"time"

	"wellnest/config"
)

// Settings carries the capacity and scheduling tunables. It is built once at
// startup and handed to the engine, so tests can run with a different ceiling
// or grid without touching process-wide state.
type Settings struct {
	CapacityCeiling int
	OpeningMinute   int // first offerable start, minutes from midnight studio time
	ClosingMinute   int // last offerable start, inclusive
	SlotInterval    time.Duration
	Location        *time.Location
}

// SettingsFromConfig resolves the studio timezone and builds engine settings
// from the loaded application config.
func SettingsFromConfig(cfg config.Config) (Settings, error) {
	loc, err := time.LoadLocation(cfg.StudioTimezone)
	if err != nil {
		return Settings{}, fmt.Errorf("invalid studio timezone %q: %w", cfg.StudioTimezone, err)
	}
	s := Settings{
		CapacityCeiling: cfg.CapacityCeiling,
		OpeningMinute:   cfg.OpeningMinute,
		ClosingMinute:   cfg.ClosingMinute,
		SlotInterval:    time.Duration(cfg.SlotIntervalMins) * time.Minute,
		Location:        loc,
	}
	if s.CapacityCeiling <= 0 {
		return Settings{}, fmt.Errorf("capacity ceiling must be positive, got %d", s.CapacityCeiling)
	}
	if s.SlotInterval <= 0 {
		return Settings{}, fmt.Errorf("slot interval must be positive, got %s", s.SlotInterval)
	}
	if s.ClosingMinute < s.OpeningMinute {
		return Settings{}, fmt.Errorf("closing minute %d before opening minute %d", s.ClosingMinute, s.OpeningMinute)
	}
	return s, nil
}

// FormatLocal renders a UTC instant in the studio timezone for display.
func (s Settings) FormatLocal(t time.Time) string {
	return t.In(s.Location).Format("2006-01-02 3:04 PM")
}
