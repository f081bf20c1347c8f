package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// GameKeyMap holds the in-game key bindings. Gameplay keys come from the
// configuration; Back, Help and Screenshot are fixed.
type GameKeyMap struct {
	Left       key.Binding
	Right      key.Binding
	SoftDrop   key.Binding
	Rotate     key.Binding
	HardDrop   key.Binding
	Pause      key.Binding
	Start      key.Binding
	Restart    key.Binding
	Quit       key.Binding
	Back       key.Binding
	Help       key.Binding
	Screenshot key.Binding

	actions []actionBinding
}

type actionBinding struct {
	action  core.Action
	binding key.Binding
}

var actionHelp = map[core.Action]string{
	core.ActionLeft:     "left",
	core.ActionRight:    "right",
	core.ActionSoftDrop: "soft drop",
	core.ActionRotate:   "rotate",
	core.ActionHardDrop: "hard drop",
	core.ActionPause:    "pause",
	core.ActionStart:    "start",
	core.ActionRestart:  "restart",
	core.ActionQuit:     "quit",
}

// NewGameKeyMap builds key bindings from the configured keys.
func NewGameKeyMap(cfg config.KeysConfig) GameKeyMap {
	km := GameKeyMap{
		Back: key.NewBinding(
			key.WithKeys(config.BackKeys...),
			key.WithHelp("esc/b", "menu"),
		),
		Help: key.NewBinding(
			key.WithKeys(config.HelpKeys...),
			key.WithHelp("?", "more keys"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys(config.ScreenshotKeys...),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}

	for _, b := range cfg.Bindings() {
		binding := key.NewBinding(
			key.WithKeys(b.Keys...),
			key.WithHelp(keyLabel(b.Keys), actionHelp[b.Action]),
		)
		switch b.Action {
		case core.ActionLeft:
			km.Left = binding
		case core.ActionRight:
			km.Right = binding
		case core.ActionSoftDrop:
			km.SoftDrop = binding
		case core.ActionRotate:
			km.Rotate = binding
		case core.ActionHardDrop:
			km.HardDrop = binding
		case core.ActionPause:
			km.Pause = binding
		case core.ActionStart:
			km.Start = binding
		case core.ActionRestart:
			km.Restart = binding
		case core.ActionQuit:
			km.Quit = binding
			continue
		}
		km.actions = append(km.actions, actionBinding{b.Action, binding})
	}
	return km
}

// Action returns the gameplay action bound to msg, or ActionNone.
func (k GameKeyMap) Action(msg tea.KeyMsg) core.Action {
	for _, ab := range k.actions {
		if key.Matches(msg, ab.binding) {
			return ab.action
		}
	}
	return core.ActionNone
}

// Hints names the first key of the start, pause and restart bindings for
// the game's overlays.
func (k GameKeyMap) Hints() tetris.KeyHints {
	return tetris.KeyHints{
		Start:   hintLabel(k.Start),
		Pause:   hintLabel(k.Pause),
		Restart: hintLabel(k.Restart),
	}
}

// hintLabel formats a binding's first key: "r" -> "R", "enter" -> "Enter".
func hintLabel(b key.Binding) string {
	keys := b.Keys()
	if len(keys) == 0 {
		return ""
	}
	label := keyLabel(keys[:1])
	if len([]rune(label)) == 1 {
		return strings.ToUpper(label)
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Rotate, k.HardDrop, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.SoftDrop, k.Rotate},
		{k.HardDrop, k.Pause, k.Start, k.Restart},
		{k.Back, k.Screenshot, k.Help, k.Quit},
	}
}

// keyLabel formats a key list for the help view.
func keyLabel(keys []string) string {
	labels := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == " " {
			k = "space"
		}
		if !slices.Contains(labels, k) {
			labels = append(labels, k)
		}
	}
	return strings.Join(labels, "/")
}

// MapKeyToMenuAction translates a key to a menu navigation action:
// ActionUp, ActionDown, ActionConfirm, ActionBack, ActionQuit or ActionNone.
func MapKeyToMenuAction(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "w", "up", "k": // vim-style k for up
		return core.ActionUp
	case "s", "down", "j": // vim-style j for down
		return core.ActionDown
	case "enter", " ":
		return core.ActionConfirm
	case "b", "esc":
		return core.ActionBack
	}
	return core.ActionNone
}
