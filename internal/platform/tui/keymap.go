package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/egg-toss/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns ActionNone for unbound keys and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up", "k":
		return core.ActionUp, false
	case "s", "down", "j":
		return core.ActionDown, false
	case "a", "left", "h":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case " ", "f":
		return core.ActionThrow, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "enter":
		return core.ActionConfirm, false
	}
	return core.ActionNone, false
}

// isDirection reports whether a is a held movement action.
func isDirection(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		return true
	}
	return false
}

// HeldInput turns key presses into per-tick held state.
// Terminals send no key-up events, so a direction counts as held for a
// fixed number of ticks after its last press; key repeat keeps it alive.
// Throws queue up and fire one per tick, so every tap throws one egg.
// Other actions fire for exactly one tick.
type HeldInput struct {
	holdTicks int
	held      core.Action
	left      int // Ticks the held direction stays active
	throws    int // Throw presses not yet delivered
	pulses    core.InputFrame
}

// NewHeldInput creates input state with the given hold window.
func NewHeldInput(holdTicks int) *HeldInput {
	return &HeldInput{holdTicks: max(1, holdTicks), pulses: core.NewInputFrame()}
}

// Press records one key press. A new direction replaces the held one.
func (h *HeldInput) Press(a core.Action) {
	switch {
	case a == core.ActionNone:
	case isDirection(a):
		h.held = a
		h.left = h.holdTicks
	case a == core.ActionThrow:
		h.throws++
	default:
		h.pulses.Set(a)
	}
}

// Release drops the held direction and any queued throws.
func (h *HeldInput) Release() {
	h.held = core.ActionNone
	h.left = 0
	h.throws = 0
}

// Frame returns the input for the next tick and ages the held state.
func (h *HeldInput) Frame() core.InputFrame {
	frame := h.pulses.Clone()
	h.pulses.Clear()

	if h.throws > 0 {
		frame.Set(core.ActionThrow)
		h.throws--
	}

	if h.left > 0 {
		frame.Set(h.held)
		h.left--
		if h.left == 0 {
			h.held = core.ActionNone
		}
	}
	return frame
}
