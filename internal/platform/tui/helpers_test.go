package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// onlyKind is a Randomizer that always picks the same piece.
type onlyKind tetris.Kind

func (k onlyKind) Intn(n int) int { return int(k) % n }

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testEnv(store *storage.Store) Env {
	return Env{
		Store:     store,
		Keys:      config.DefaultConfig().Keys,
		SessionID: "session-1",
	}
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}
}

// newTestModel returns a started game model driven by a manual ticker.
func newTestModel(t *testing.T, store *storage.Store, embedded bool) (GameModel, *tetris.ManualTicker) {
	t.Helper()
	ticker := tetris.NewManualTicker()
	m := NewGameModel(testEnv(store), testRuntime(), embedded,
		tetris.WithTicker(ticker),
		tetris.WithRandomizer(onlyKind(tetris.KindI)),
	)
	t.Cleanup(m.stop)
	require.NotNil(t, m.Init())
	return m, ticker
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func press[M tea.Model](t *testing.T, m M, msgs ...tea.Msg) M {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(M)
		require.True(t, ok, "unexpected model type %T", next)
	}
	return m
}
