package eggtoss

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/egg-toss/internal/config"
	"github.com/vovakirdan/egg-toss/internal/core"
)

// PlacementFailure records a prop the generator had to skip.
type PlacementFailure struct {
	Type  PropType
	Index int // Index within its category
	Tries int
}

// PlacementReport summarizes diagnostics from one world generation.
type PlacementReport struct {
	Skipped        []PlacementFailure
	PlayerFallback bool // Player spawned at center despite overlapping a prop
}

// Generator scatters props and the player inside fixed world bounds.
// Placement is random; tests inject a seeded core.Rand and assert structure.
type Generator struct {
	cfg    config.WorldConfig
	rng    core.Rand
	logger *log.Logger
}

// NewGenerator creates a generator for the given world config.
func NewGenerator(cfg config.WorldConfig, rng core.Rand, logger *log.Logger) *Generator {
	if logger == nil {
		logger = discardLogger()
	}
	return &Generator{cfg: cfg, rng: rng, logger: logger}
}

// Bounds returns the world rectangle.
func (g *Generator) Bounds() core.Rect {
	return core.NewRect(0, 0, g.cfg.Width, g.cfg.Height)
}

// Props places trees, then tents, then nests. Items that find no free slot
// within the try budget are skipped and reported.
func (g *Generator) Props(report *PlacementReport) []Prop {
	props := make([]Prop, 0, g.cfg.Trees.Count+g.cfg.Tents.Count+g.cfg.Nests.Count)

	categories := []struct {
		typ PropType
		set config.PropSet
	}{
		{PropTree, g.cfg.Trees},
		{PropTent, g.cfg.Tents},
		{PropNest, g.cfg.Nests},
	}

	for _, cat := range categories {
		for i := range cat.set.Count {
			rect, ok := g.findSlot(cat.set.Size, cat.set.Size, props)
			if !ok {
				report.Skipped = append(report.Skipped, PlacementFailure{Type: cat.typ, Index: i, Tries: g.cfg.PlacementTries})
				g.logger.Warn("could not place prop", "type", cat.typ, "index", i, "tries", g.cfg.PlacementTries)
				continue
			}

			p := Prop{Rect: rect, Type: cat.typ}
			if cat.typ == PropTent {
				p.ID = fmt.Sprintf("tent%d", i+1)
			}
			if cat.set.Variants > 1 {
				p.Variant = g.rng.Intn(cat.set.Variants)
			}
			props = append(props, p)
		}
	}
	return props
}

// findSlot draws uniform positions fully inside the world until one clears
// every placed prop by the placement buffer.
func (g *Generator) findSlot(w, h float64, placed []Prop) (core.Rect, bool) {
	for range g.cfg.PlacementTries {
		x := g.rng.Float64() * max(0, g.cfg.Width-w)
		y := g.rng.Float64() * max(0, g.cfg.Height-h)
		rect := core.NewRect(x, y, w, h)
		if !core.OverlapsAny(rect, g.cfg.PlacementBuffer, placed, nil) {
			return rect, true
		}
	}
	return core.Rect{}, false
}

// PlayerSpawn prefers the world center, then random slots, then the center
// again regardless of overlap.
func (g *Generator) PlayerSpawn(w, h float64, props []Prop, report *PlacementReport) core.Rect {
	center := core.NewRect(g.cfg.Width/2-w/2, g.cfg.Height/2-h/2, w, h)
	if !core.OverlapsAny(center, g.cfg.PlacementBuffer, props, isSolid) {
		return center
	}

	for range g.cfg.PlacementTries {
		x := g.rng.Float64() * max(0, g.cfg.Width-w)
		y := g.rng.Float64() * max(0, g.cfg.Height-h)
		rect := core.NewRect(x, y, w, h)
		if !core.OverlapsAny(rect, g.cfg.PlacementBuffer, props, isSolid) {
			return rect
		}
	}

	report.PlayerFallback = true
	g.logger.Warn("no free player spawn, using world center", "tries", g.cfg.PlacementTries)
	return center
}

// NPCsForTents creates one calm NPC standing on each tent.
func NPCsForTents(props []Prop, size float64) []NPC {
	var npcs []NPC
	for _, p := range props {
		if p.Type != PropTent {
			continue
		}
		npcs = append(npcs, newNPC(p, size))
	}
	return npcs
}

func newNPC(home Prop, size float64) NPC {
	n := NPC{
		Rect:   core.NewRect(home.X, home.Y, size, size),
		Dir:    DirDown,
		HomeID: home.ID,
	}
	n.Sprite = npcSprite(n)
	return n
}
