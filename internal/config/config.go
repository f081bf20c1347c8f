// Package config provides YAML-based configuration loading for the game,
// its key bindings, score storage, and the SSH server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Config contains all configuration for the game and its hosts.
type Config struct {
	Gravity GravityConfig `yaml:"gravity"`
	Keys    KeysConfig    `yaml:"keys"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// GravityConfig defines the automatic drop period.
type GravityConfig struct {
	IntervalMS int `yaml:"interval_ms"`
}

// KeysConfig lists the terminal keys bound to each command.
// Key names follow Bubble Tea's KeyMsg.String() ("left", "space", "ctrl+c").
type KeysConfig struct {
	MoveLeft    []string `yaml:"move_left"`
	MoveRight   []string `yaml:"move_right"`
	SoftDrop    []string `yaml:"soft_drop"`
	Rotate      []string `yaml:"rotate"`
	HardDrop    []string `yaml:"hard_drop"`
	TogglePause []string `yaml:"toggle_pause"`
	Start       []string `yaml:"start"`
	Reset       []string `yaml:"reset"`
	Quit        []string `yaml:"quit"`
}

// StorageConfig defines where finished games are recorded.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// LogConfig defines log verbosity and destination.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Interval returns the gravity period.
func (c Config) Interval() time.Duration {
	return time.Duration(c.Gravity.IntervalMS) * time.Millisecond
}

// IdleTimeout returns the SSH idle timeout.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// Bindings returns the keys bound to each action, in a stable order.
func (k KeysConfig) Bindings() []Binding {
	return []Binding{
		{core.ActionLeft, k.MoveLeft},
		{core.ActionRight, k.MoveRight},
		{core.ActionSoftDrop, k.SoftDrop},
		{core.ActionRotate, k.Rotate},
		{core.ActionHardDrop, k.HardDrop},
		{core.ActionPause, k.TogglePause},
		{core.ActionStart, k.Start},
		{core.ActionRestart, k.Reset},
		{core.ActionQuit, k.Quit},
	}
}

// Bind replaces the keys of the action called name. Names are the
// command names accepted by core.ParseAction ("hard_drop", "moveLeft").
func (k *KeysConfig) Bind(name string, keys []string) error {
	action, ok := core.ParseAction(name)
	if !ok {
		return fmt.Errorf("config: unknown action %q", name)
	}
	switch action {
	case core.ActionLeft:
		k.MoveLeft = keys
	case core.ActionRight:
		k.MoveRight = keys
	case core.ActionSoftDrop:
		k.SoftDrop = keys
	case core.ActionRotate:
		k.Rotate = keys
	case core.ActionHardDrop:
		k.HardDrop = keys
	case core.ActionPause:
		k.TogglePause = keys
	case core.ActionStart:
		k.Start = keys
	case core.ActionRestart:
		k.Reset = keys
	case core.ActionQuit:
		k.Quit = keys
	}
	return nil
}

// Keys the interface reserves for itself. They cannot be bound to actions.
var (
	BackKeys       = []string{"esc", "b"}
	HelpKeys       = []string{"?"}
	ScreenshotKeys = []string{"ctrl+s"}
)

func reservedKey(key string) (string, bool) {
	for _, r := range []struct {
		name string
		keys []string
	}{
		{"back", BackKeys},
		{"help", HelpKeys},
		{"screenshot", ScreenshotKeys},
	} {
		if slices.Contains(r.keys, key) {
			return r.name, true
		}
	}
	return "", false
}

// Binding pairs an action with its keys.
type Binding struct {
	Action core.Action
	Keys   []string
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Gravity.IntervalMS <= 0 {
		return fmt.Errorf("config: gravity.interval_ms must be positive, got %d", c.Gravity.IntervalMS)
	}
	if c.Server.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("config: server.idle_timeout_minutes must not be negative, got %d", c.Server.IdleTimeoutMinutes)
	}
	seen := make(map[string]core.Action)
	for _, b := range c.Keys.Bindings() {
		for _, key := range b.Keys {
			if use, ok := reservedKey(key); ok {
				return fmt.Errorf("config: key %q of %s is reserved for %s", key, b.Action, use)
			}
			if prev, ok := seen[key]; ok && prev != b.Action {
				return fmt.Errorf("config: key %q bound to both %s and %s", key, prev, b.Action)
			}
			seen[key] = b.Action
		}
	}
	return nil
}

// ExpandPath resolves a leading "~" to the user's home directory.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
