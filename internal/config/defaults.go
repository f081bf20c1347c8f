package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Gravity: GravityConfig{
			IntervalMS: 1000,
		},
		Keys: KeysConfig{
			MoveLeft:    []string{"left", "a", "h"},
			MoveRight:   []string{"right", "d", "l"},
			SoftDrop:    []string{"down", "s", "j"},
			Rotate:      []string{"up", "w", "k"},
			HardDrop:    []string{" ", "space"},
			TogglePause: []string{"p"},
			Start:       []string{"enter"},
			Reset:       []string{"r"},
			Quit:        []string{"q", "ctrl+c"},
		},
		Storage: StorageConfig{
			DBPath: "~/.tetris/scores.db",
		},
		Server: ServerConfig{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
