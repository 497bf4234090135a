package eggtoss

import (
	"github.com/vovakirdan/egg-toss/internal/core"
)

// heldDirection picks at most one direction from the input state.
// Priority is up > down > left > right.
func heldDirection(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return DirDown, false
}

// moveAxes applies (dx, dy) one axis at a time. Each axis commits only if its
// candidate rect stays within bounds and hits no prop accepted by blocks.
// It reports whether any requested axis was rejected.
func moveAxes(r core.Rect, dx, dy float64, bounds core.Rect, props []Prop, blocks func(Prop) bool) (core.Rect, bool) {
	rejected := false
	if dx != 0 {
		next := r.Offset(dx, 0)
		if next.Within(bounds) && !core.OverlapsAny(next, 0, props, blocks) {
			r = next
		} else {
			rejected = true
		}
	}
	if dy != 0 {
		next := r.Offset(0, dy)
		if next.Within(bounds) && !core.OverlapsAny(next, 0, props, blocks) {
			r = next
		} else {
			rejected = true
		}
	}
	return r, rejected
}

// updatePlayer moves the player from held input and refills eggs at nests.
func (s *Sim) updatePlayer(in core.InputFrame) {
	p := &s.Player

	if dir, ok := heldDirection(in); ok {
		p.Dir = dir
		dx, dy := dir.Delta()
		p.Rect, _ = moveAxes(p.Rect, dx*p.Speed, dy*p.Speed, s.Bounds(), s.Props, isSolid)
	}
	p.Sprite = playerSprite(*p)

	if p.Eggs <= 0 {
		for _, prop := range s.Props {
			if prop.Type == PropNest && core.Overlaps(p.Rect, prop.Rect) {
				p.Eggs = p.MaxEggs
				s.emit(EventRefill)
				break
			}
		}
	}
}
