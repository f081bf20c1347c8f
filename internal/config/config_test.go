package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestDefaultInterval(t *testing.T) {
	assert.Equal(t, time.Second, DefaultConfig().Interval())
	assert.Equal(t, 30*time.Minute, DefaultConfig().Server.IdleTimeout())
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	data := []byte("gravity:\n  interval_ms: 250\nkeys:\n  hard_drop: [x]\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.Interval())
	assert.Equal(t, []string{"x"}, cfg.Keys.HardDrop)
	assert.Equal(t, DefaultConfig().Keys.MoveLeft, cfg.Keys.MoveLeft, "unset keys keep defaults")
	assert.Equal(t, ":23234", cfg.Server.Address)
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("gravity: [oops"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)

	zero := filepath.Join(dir, "zero.yaml")
	require.NoError(t, os.WriteFile(zero, []byte("gravity:\n  interval_ms: 0\n"), 0o644))
	_, err = Load(zero)
	assert.ErrorContains(t, err, "interval_ms")
}

func TestLoadLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "tetris.yaml"),
		[]byte("gravity:\n  interval_ms: 500\n"), 0o644))
	t.Chdir(dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.Gravity.IntervalMS)
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"negative interval", func(c *Config) { c.Gravity.IntervalMS = -5 }, true},
		{"negative idle timeout", func(c *Config) { c.Server.IdleTimeoutMinutes = -1 }, true},
		{"key bound twice", func(c *Config) { c.Keys.Rotate = append(c.Keys.Rotate, "p") }, true},
		{"same key listed twice for one action", func(c *Config) { c.Keys.Reset = []string{"r", "r"} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBindingsCoverGameplayActions(t *testing.T) {
	bound := make(map[core.Action]bool)
	for _, b := range DefaultConfig().Keys.Bindings() {
		assert.NotEmpty(t, b.Keys, "action %s", b.Action)
		bound[b.Action] = true
	}
	for a := core.ActionLeft; a <= core.ActionRestart; a++ {
		assert.True(t, a.IsGameplay())
		assert.True(t, bound[a], "action %s has no binding", a)
	}
}

func TestBind(t *testing.T) {
	keys := DefaultConfig().Keys

	require.NoError(t, keys.Bind("hard_drop", []string{"x"}))
	require.NoError(t, keys.Bind("moveLeft", []string{"z"}))
	assert.Equal(t, []string{"x"}, keys.HardDrop)
	assert.Equal(t, []string{"z"}, keys.MoveLeft)

	err := keys.Bind("teleport", []string{"t"})
	assert.ErrorContains(t, err, "unknown action")
}

func TestBindConflictFailsValidation(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Keys.Bind("rotate", []string{"p"}))

	assert.ErrorContains(t, cfg.Validate(), `key "p"`)
}

func TestBindReservedKeyFailsValidation(t *testing.T) {
	tests := []struct {
		action, key, use string
	}{
		{"hard_drop", "b", "back"},
		{"rotate", "esc", "back"},
		{"toggle_pause", "?", "help"},
		{"quit", "ctrl+s", "screenshot"},
	}
	for _, tt := range tests {
		t.Run(tt.action+"="+tt.key, func(t *testing.T) {
			cfg := DefaultConfig()
			require.NoError(t, cfg.Keys.Bind(tt.action, []string{tt.key}))

			err := cfg.Validate()
			assert.ErrorContains(t, err, "reserved for "+tt.use)
		})
	}
}

func TestDefaultKeysAvoidReservedKeys(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, ".tetris", "scores.db"), ExpandPath("~/.tetris/scores.db"))
	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, "/tmp/x.db", ExpandPath("/tmp/x.db"))
	assert.Equal(t, "~user/x", ExpandPath("~user/x"))
}
