package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellnest/config"
)

func baseConfig() config.Config {
	return config.Config{
		CapacityCeiling:  10,
		OpeningMinute:    8*60 + 30,
		ClosingMinute:    14 * 60,
		SlotIntervalMins: 30,
		StudioTimezone:   "America/New_York",
	}
}

func TestSettingsFromConfig(t *testing.T) {
	s, err := SettingsFromConfig(baseConfig())
	require.NoError(t, err)
	assert.Equal(t, 10, s.CapacityCeiling)
	assert.Equal(t, 30*time.Minute, s.SlotInterval)
	assert.Equal(t, "America/New_York", s.Location.String())
}

func TestSettingsFromConfigValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"bad timezone", func(c *config.Config) { c.StudioTimezone = "Mars/Olympus" }},
		{"zero ceiling", func(c *config.Config) { c.CapacityCeiling = 0 }},
		{"zero interval", func(c *config.Config) { c.SlotIntervalMins = 0 }},
		{"closing before opening", func(c *config.Config) { c.ClosingMinute = 60; c.OpeningMinute = 120 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := baseConfig()
			tc.mutate(&cfg)
			_, err := SettingsFromConfig(cfg)
			assert.Error(t, err)
		})
	}
}

func TestFormatLocal(t *testing.T) {
	s, err := SettingsFromConfig(baseConfig())
	require.NoError(t, err)

	// 14:30 UTC on March 10 is 10:30 AM in New York (EDT, UTC-4).
	utc := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-10 10:30 AM", s.FormatLocal(utc))
}
