package core

import "strings"

// Action represents a semantic player command, abstracted from physical key presses.
// Games work with high-level intents; the platform maps keys to actions.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // move the falling piece one column left
	ActionRight           // move the falling piece one column right
	ActionSoftDrop        // move the falling piece one row down
	ActionRotate          // rotate clockwise
	ActionHardDrop        // drop to the lowest valid position and lock
	ActionPause           // toggle pause
	ActionStart           // start, resume, or start over after game over
	ActionRestart         // reset the whole game and run
	ActionUp              // menu navigation
	ActionDown            // menu navigation
	ActionConfirm         // Enter - confirm selection in menu
	ActionBack            // B, Escape - go back to menu
	ActionQuit            // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionRotate:
		return "Rotate"
	case ActionHardDrop:
		return "HardDrop"
	case ActionPause:
		return "Pause"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// actionNames lists the accepted command names. Both the camelCase input
// command names and the snake_case names used in config files are accepted.
var actionNames = map[string]Action{
	"moveleft":     ActionLeft,
	"move_left":    ActionLeft,
	"moveright":    ActionRight,
	"move_right":   ActionRight,
	"softdrop":     ActionSoftDrop,
	"soft_drop":    ActionSoftDrop,
	"rotate":       ActionRotate,
	"harddrop":     ActionHardDrop,
	"hard_drop":    ActionHardDrop,
	"togglepause":  ActionPause,
	"toggle_pause": ActionPause,
	"start":        ActionStart,
	"reset":        ActionRestart,
	"quit":         ActionQuit,
}

// ParseAction resolves a command name to an Action.
// Unrecognized names return ActionNone and false.
func ParseAction(name string) (Action, bool) {
	a, ok := actionNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return ActionNone, false
	}
	return a, true
}

// IsGameplay reports whether the action is a command the game engine handles.
func (a Action) IsGameplay() bool {
	return a >= ActionLeft && a <= ActionRestart
}
