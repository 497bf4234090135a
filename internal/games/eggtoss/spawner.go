package eggtoss

import (
	"github.com/vovakirdan/egg-toss/internal/core"
)

// updateSpawner counts down the spawn timer and tries to add an NPC when it
// expires. The timer is rearmed whether or not the spawn succeeded.
func (s *Sim) updateSpawner() {
	s.SpawnTimer--
	if s.SpawnTimer > 0 {
		return
	}
	s.SpawnNPC()
	s.SpawnTimer = core.RandRange(s.rng, s.cfg.NPC.SpawnTicksMin, s.cfg.NPC.SpawnTicksMax)
}

// SpawnNPC places a new calm NPC at a random tent unless another NPC is
// already crowding it. It reports whether an NPC was added.
func (s *Sim) SpawnNPC() bool {
	var tents []Prop
	for _, p := range s.Props {
		if p.Type == PropTent {
			tents = append(tents, p)
		}
	}
	if len(tents) == 0 {
		return false
	}

	tent := tents[s.rng.Intn(len(tents))]
	radius := s.cfg.NPC.SpawnCrowdRadius
	for _, n := range s.NPCs {
		if core.AbsF(n.X-tent.X) < radius && core.AbsF(n.Y-tent.Y) < radius {
			return false
		}
	}

	s.NPCs = append(s.NPCs, newNPC(tent, s.cfg.NPC.Size))
	s.logger.Debug("npc spawned", "home", tent.ID, "roster", len(s.NPCs))
	s.emit(EventSpawn)
	return true
}
