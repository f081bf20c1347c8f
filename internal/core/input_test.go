package core

import "testing"

func TestParseAction(t *testing.T) {
	tests := []struct {
		name   string
		want   Action
		wantOK bool
	}{
		{"moveLeft", ActionLeft, true},
		{"moveRight", ActionRight, true},
		{"softDrop", ActionSoftDrop, true},
		{"rotate", ActionRotate, true},
		{"hardDrop", ActionHardDrop, true},
		{"togglePause", ActionPause, true},
		{"start", ActionStart, true},
		{"reset", ActionRestart, true},
		{"hard_drop", ActionHardDrop, true},
		{" Rotate ", ActionRotate, true},
		{"jump", ActionNone, false},
		{"", ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseAction(tc.name)
			if got != tc.want || ok != tc.wantOK {
				t.Errorf("ParseAction(%q) = (%v, %v), expected (%v, %v)", tc.name, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestActionIsGameplay(t *testing.T) {
	gameplay := []Action{ActionLeft, ActionRight, ActionSoftDrop, ActionRotate, ActionHardDrop, ActionPause, ActionStart, ActionRestart}
	for _, a := range gameplay {
		if !a.IsGameplay() {
			t.Errorf("%v should be a gameplay action", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionUp, ActionConfirm, ActionBack, ActionQuit} {
		if a.IsGameplay() {
			t.Errorf("%v should not be a gameplay action", a)
		}
	}
}
