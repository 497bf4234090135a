package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/egg-toss/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action core.Action
		quit   bool
	}{
		{"up", core.ActionUp, false},
		{"w", core.ActionUp, false},
		{"down", core.ActionDown, false},
		{"s", core.ActionDown, false},
		{"left", core.ActionLeft, false},
		{"a", core.ActionLeft, false},
		{"right", core.ActionRight, false},
		{"d", core.ActionRight, false},
		{" ", core.ActionThrow, false},
		{"p", core.ActionPause, false},
		{"esc", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"z", core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			action, quit := km.MapKey(keyMsg(tc.key))
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tc.key, action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestHeldInputExpires(t *testing.T) {
	h := NewHeldInput(3)
	h.Press(core.ActionLeft)

	for i := range 3 {
		if f := h.Frame(); !f.Has(core.ActionLeft) {
			t.Fatalf("tick %d: left should still be held", i)
		}
	}
	if f := h.Frame(); f.Has(core.ActionLeft) {
		t.Error("left should expire after the hold window")
	}
}

func TestHeldInputRepeatRefreshes(t *testing.T) {
	h := NewHeldInput(2)
	h.Press(core.ActionUp)
	h.Frame()
	h.Press(core.ActionUp)
	h.Frame()

	if f := h.Frame(); !f.Has(core.ActionUp) {
		t.Error("repeat press should extend the hold")
	}
}

func TestHeldInputNewDirectionReplaces(t *testing.T) {
	h := NewHeldInput(10)
	h.Press(core.ActionUp)
	h.Press(core.ActionRight)

	f := h.Frame()
	if f.Has(core.ActionUp) || !f.Has(core.ActionRight) {
		t.Errorf("frame = %v, expected only right", f.Actions)
	}

	h.Release()
	if f := h.Frame(); f.Has(core.ActionRight) {
		t.Error("Release should drop the held direction")
	}
}

func TestHeldInputPulsesLastOneTick(t *testing.T) {
	h := NewHeldInput(10)
	h.Press(core.ActionThrow)
	h.Press(core.ActionDown)

	f := h.Frame()
	if !f.Has(core.ActionThrow) || !f.Has(core.ActionDown) {
		t.Fatalf("frame = %v, expected throw and down", f.Actions)
	}
	if f := h.Frame(); f.Has(core.ActionThrow) {
		t.Error("throw should fire only once")
	}
}

func TestHeldInputQueuesEveryThrow(t *testing.T) {
	h := NewHeldInput(10)
	h.Press(core.ActionThrow)
	h.Press(core.ActionThrow)
	h.Press(core.ActionThrow)

	for i := range 3 {
		if f := h.Frame(); !f.Has(core.ActionThrow) {
			t.Fatalf("tick %d: expected a queued throw", i)
		}
	}
	if f := h.Frame(); f.Has(core.ActionThrow) {
		t.Error("three presses should yield exactly three throws")
	}

	h.Press(core.ActionThrow)
	h.Press(core.ActionThrow)
	h.Release()
	if f := h.Frame(); f.Has(core.ActionThrow) {
		t.Error("Release should drop queued throws")
	}
}
