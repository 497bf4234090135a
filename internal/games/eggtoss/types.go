package eggtoss

import (
	"fmt"

	"github.com/vovakirdan/egg-toss/internal/core"
)

// Direction is one of the four cardinal facings.
type Direction int

const (
	DirDown Direction = iota
	DirLeft
	DirRight
	DirUp
)

var allDirections = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the lowercase direction name used in sprite keys.
func (d Direction) String() string {
	switch d {
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	default:
		return "unknown"
	}
}

// Delta returns the unit offset for one step in this direction.
func (d Direction) Delta() (dx, dy float64) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// PropType identifies a static world object.
type PropType int

const (
	PropTree PropType = iota
	PropTent
	PropNest
)

// String returns the prop type name.
func (t PropType) String() string {
	switch t {
	case PropTree:
		return "tree"
	case PropTent:
		return "tent"
	case PropNest:
		return "nest"
	default:
		return "unknown"
	}
}

// Solid reports whether the prop type blocks movement. Nests are walkable.
func (t PropType) Solid() bool {
	return t == PropTree || t == PropTent
}

// Prop is a static world object. Props never move after generation.
type Prop struct {
	core.Rect
	Type    PropType
	ID      string // Set for tents; NPCs reference it as their home
	Variant int    // Visual selection only
}

// Bounds implements core.Boxed.
func (p Prop) Bounds() core.Rect { return p.Rect }

func isSolid(p Prop) bool { return p.Type.Solid() }

// Player is the single player character.
type Player struct {
	core.Rect
	Speed   float64
	Dir     Direction
	Eggs    int
	MaxEggs int
	Sprite  SpriteKey // Derived from Dir after each move
}

// NPC is a camper that wanders around its home tent.
type NPC struct {
	core.Rect
	Dir    Direction
	HomeID string

	Angry      bool
	AngryTimer int // Ticks left before calming down
	Hit        bool
	HitTimer   int    // Ticks left before removal
	Reaction   string // Cosmetic tag shown while stunned

	HasLeftTent   bool
	StepsFromTent int
	WalkStepsLeft int

	Sprite SpriteKey
}

// Bounds implements core.Boxed.
func (n NPC) Bounds() core.Rect { return n.Rect }

// State names the NPC's behavior state for display and tests.
func (n NPC) State() NPCState {
	switch {
	case n.Hit:
		return NPCStunned
	case n.Angry:
		return NPCChasing
	case n.WalkStepsLeft > 0:
		return NPCWalking
	default:
		return NPCIdle
	}
}

// NPCState is the derived behavior state of an NPC.
type NPCState string

const (
	NPCIdle    NPCState = "idle"
	NPCWalking NPCState = "walking"
	NPCChasing NPCState = "chasing"
	NPCStunned NPCState = "stunned"
)

// Egg is a thrown projectile.
type Egg struct {
	core.Rect
	VX, VY float64
	Active bool
}

// Event is something the presentation layer may react to (sound cues, UI).
type Event int

const (
	EventStart Event = iota
	EventThrow
	EventHit
	EventRefill
	EventSpawn
	EventCaught
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventThrow:
		return "throw"
	case EventHit:
		return "hit"
	case EventRefill:
		return "refill"
	case EventSpawn:
		return "spawn"
	case EventCaught:
		return "caught"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}
