package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Env bundles what every model in one terminal or SSH session shares.
type Env struct {
	Context   context.Context // parent of every game's tick loop; nil means background
	Store     *storage.Store  // nil disables result history
	Keys      config.KeysConfig
	Logger    *log.Logger
	SessionID string
	Renderer  *ScreenRenderer
}

func (e Env) logger() *log.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return log.New(io.Discard)
}

func (e Env) context() context.Context {
	if e.Context != nil {
		return e.Context
	}
	return context.Background()
}

func (e Env) renderer() *ScreenRenderer {
	if e.Renderer != nil {
		return e.Renderer
	}
	return defaultScreenRenderer()
}

// recordResult stores a finished game. Failures are logged; play goes on.
func (e Env) recordResult(score, lines int) {
	logger := e.logger()
	if e.Store == nil {
		logger.Debug("no score store, result dropped", "score", score, "lines", lines)
		return
	}
	if _, err := e.Store.SaveResult(e.SessionID, score, lines); err != nil {
		logger.Warn("could not save result", "error", err)
		return
	}
	logger.Info("result saved", "session", e.SessionID, "score", score, "lines", lines)
}

// GameModel is the Bubble Tea model for one game. It translates keys to
// game actions, forwards gravity ticks, and draws the game.
type GameModel struct {
	game       *tetris.Game
	screen     *core.Screen
	env        Env
	config     core.RuntimeConfig
	keys       GameKeyMap
	help       help.Model
	ctx        context.Context
	cancel     context.CancelFunc
	embedded   bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for a fresh game. An embedded model returns
// to its parent on the Back key instead of only quitting. Extra options
// are passed to the game.
func NewGameModel(env Env, cfg core.RuntimeConfig, embedded bool, opts ...tetris.Option) GameModel {
	if env.SessionID == "" {
		env.SessionID = uuid.NewString()
	}
	if cfg.Gravity <= 0 {
		cfg.Gravity = tetris.DefaultInterval
	}

	ctx, cancel := context.WithCancel(env.context())
	m := GameModel{
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		env:      env,
		config:   cfg,
		keys:     NewGameKeyMap(env.Keys),
		help:     help.New(),
		ctx:      ctx,
		cancel:   cancel,
		embedded: embedded,
	}
	m.layout()

	gameOpts := []tetris.Option{
		tetris.WithInterval(cfg.Gravity),
		tetris.WithSeed(cfg.Seed),
		tetris.WithLogger(env.Logger),
		tetris.WithKeyHints(m.keys.Hints()),
		tetris.WithGameOverHook(env.recordResult),
	}
	m.game = tetris.New(append(gameOpts, opts...)...)
	return m
}

// Init starts the game and waits for the first gravity tick.
func (m GameModel) Init() tea.Cmd {
	m.game.Start()
	return waitForTick(m.ctx, m.game)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.BlurMsg:
		// Pieces keep falling while the player is in another window.
		m.game.Pause()
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.layout()
		return m, nil

	case TickMsg:
		// Ticks of an earlier game may still be in flight.
		if msg.game != m.game || m.quitting || m.backToMenu {
			return m, nil
		}
		// A tick taken before a restart belongs to the abandoned game.
		if msg.generation == m.game.Generation() {
			m.game.Tick()
		}
		return m, waitForTick(m.ctx, m.game)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.stop()
		m.quitting = true
		return m, tea.Quit

	case m.embedded && key.Matches(msg, m.keys.Back):
		// Leaving mid-game would abandon it silently.
		if m.game.IsOver() || m.game.IsPaused() {
			m.stop()
			m.backToMenu = true
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	m.game.Handle(m.keys.Action(msg))
	return m, nil
}

// layout sizes the game screen to leave room for the help view.
func (m *GameModel) layout() {
	helpLines := 1
	if m.help.ShowAll {
		for _, col := range m.keys.FullHelp() {
			helpLines = max(helpLines, len(col))
		}
	}
	m.screen.Resize(m.config.ScreenW, max(m.config.ScreenH-helpLines, 0))
	m.help.Width = m.config.ScreenW
}

func (m GameModel) stop() {
	m.cancel()
	m.game.Close()
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".tetris", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.env.logger().Warn("could not create screenshot directory", "error", err)
		return
	}

	filename := fmt.Sprintf("tetris_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.env.logger().Warn("could not save screenshot", "error", err)
		return
	}
	m.env.logger().Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.env.renderer().Render(m.screen) + "\n" + m.help.View(m.keys)
}

// Snapshot returns the current game state.
func (m GameModel) Snapshot() tetris.Snapshot {
	return m.game.Snapshot()
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one game in the terminal until the user quits.
func Run(env Env, cfg core.RuntimeConfig) error {
	model := NewGameModel(env, cfg, false)
	defer model.stop()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
