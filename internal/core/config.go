package core

import "time"

// RuntimeConfig contains configuration passed to a game session at start.
// The platform fills it from CLI flags, the YAML config and the terminal size.
type RuntimeConfig struct {
	ScreenW int           // Screen width in characters
	ScreenH int           // Screen height in characters
	Seed    int64         // RNG seed for deterministic piece sequences (0 = time based)
	Gravity time.Duration // Interval between gravity ticks
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
		Gravity: time.Second,
	}
}
