package eggtoss

import (
	"github.com/vovakirdan/egg-toss/internal/core"
)

// Throw launches one egg from the player's center along their facing.
// It returns false when the game is over or the player has no eggs.
func (s *Sim) Throw() bool {
	p := &s.Player
	if s.GameOver || p.Eggs <= 0 {
		return false
	}

	size := s.cfg.Projectile.Size
	speed := s.cfg.Projectile.Speed
	dx, dy := p.Dir.Delta()
	c := p.Center()

	s.Eggs = append(s.Eggs, Egg{
		Rect:   core.NewRect(c.X-size/2, c.Y-size/2, size, size),
		VX:     dx * speed,
		VY:     dy * speed,
		Active: true,
	})
	p.Eggs--
	s.emit(EventThrow)
	return true
}

// updateEggs advances every egg, retires those leaving the world and
// resolves at most one NPC hit per egg.
func (s *Sim) updateEggs() {
	w, h := s.cfg.World.Width, s.cfg.World.Height

	for i := range s.Eggs {
		egg := &s.Eggs[i]
		if !egg.Active {
			continue
		}

		egg.X += egg.VX
		egg.Y += egg.VY

		if egg.X < 0 || egg.X > w || egg.Y < 0 || egg.Y > h {
			egg.Active = false
			continue
		}

		for j := range s.NPCs {
			npc := &s.NPCs[j]
			if npc.Hit || !core.Overlaps(egg.Rect, npc.Rect) {
				continue
			}
			egg.Active = false
			s.stun(npc)
			break
		}
	}

	active := s.Eggs[:0]
	for _, egg := range s.Eggs {
		if egg.Active {
			active = append(active, egg)
		}
	}
	s.Eggs = active
}

// stun marks an NPC as hit, calms it and awards one point.
func (s *Sim) stun(npc *NPC) {
	npc.Hit = true
	npc.HitTimer = s.cfg.NPC.StunTicks
	npc.Angry = false
	if reactions := s.cfg.NPC.Reactions; len(reactions) > 0 {
		npc.Reaction = reactions[s.rng.Intn(len(reactions))]
	}
	s.Score++
	s.emit(EventHit)
}
