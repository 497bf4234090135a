package eggtoss

import (
	"github.com/vovakirdan/egg-toss/internal/core"
)

// updateNPCs runs the behavior state machine for every NPC.
// The roster is walked from the end so removals don't skip entries.
func (s *Sim) updateNPCs() {
	cfg := s.cfg.NPC
	// Both scale with difficulty
	angerChance := s.difficulty.Chance(cfg.AngerChanceMin, cfg.AngerChanceMax, s.Score, s.Ticks)
	chaseSpeed := s.difficulty.Speed(cfg.AngrySpeed, s.Score, s.Ticks)

	for i := len(s.NPCs) - 1; i >= 0; i-- {
		npc := &s.NPCs[i]

		// Stunned NPCs count down and never move
		if npc.Hit {
			npc.HitTimer--
			if npc.HitTimer <= 0 {
				s.logger.Debug("npc removed", "home", npc.HomeID)
				s.NPCs = append(s.NPCs[:i], s.NPCs[i+1:]...)
			}
			continue
		}

		// Calm NPCs may snap at any tick
		if !npc.Angry && s.rng.Float64() < angerChance {
			npc.Angry = true
			npc.AngryTimer = core.RandRange(s.rng, cfg.AngryTicksMin, cfg.AngryTicksMax)
		}

		// Anger wears off on its own
		if npc.Angry {
			npc.AngryTimer--
			if npc.AngryTimer <= 0 {
				npc.Angry = false
			}
		}

		// Pick a heading: chase when angry, otherwise a fresh random walk
		speed := cfg.Speed
		if npc.Angry {
			speed = chaseSpeed
			npc.Dir = chaseDirection(npc.Rect, s.Player.Rect)
		} else if npc.WalkStepsLeft <= 0 {
			npc.Dir = allDirections[s.rng.Intn(len(allDirections))]
			npc.WalkStepsLeft = core.RandRange(s.rng, cfg.WalkStepsMin, cfg.WalkStepsMax)
		}

		s.stepNPC(npc, speed)

		// Only an angry NPC can catch the player
		if npc.Angry && !s.GameOver && core.Overlaps(npc.Rect, s.Player.Rect) {
			s.endGame()
		}
	}
}

// chaseDirection steers along the axis with the larger distance to the
// target. Ties go horizontal.
func chaseDirection(from, to core.Rect) Direction {
	dx := to.X - from.X
	dy := to.Y - from.Y
	if core.AbsF(dx) >= core.AbsF(dy) {
		if dx > 0 {
			return DirRight
		}
		return DirLeft
	}
	if dy > 0 {
		return DirDown
	}
	return DirUp
}

// stepNPC attempts one move. The NPC's own tent never blocks it.
// A rejected move empties the walk budget so a new direction is drawn next tick.
func (s *Sim) stepNPC(npc *NPC, speed float64) {
	blocks := func(p Prop) bool {
		return p.Type.Solid() && !(p.Type == PropTent && p.ID == npc.HomeID)
	}

	dx, dy := npc.Dir.Delta()
	next, rejected := moveAxes(npc.Rect, dx*speed, dy*speed, s.Bounds(), s.Props, blocks)
	if rejected {
		npc.WalkStepsLeft = 0
		return
	}

	npc.Rect = next
	npc.Sprite = npcSprite(*npc)

	// Steps inside the grace zone don't use up the walk
	if !npc.HasLeftTent {
		npc.StepsFromTent++
		if npc.StepsFromTent > s.cfg.NPC.LeaveTentSteps {
			npc.HasLeftTent = true
		}
	} else {
		npc.WalkStepsLeft--
	}
}
