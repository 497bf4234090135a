package config

import (
	_ "embed"
)

//go:embed defaults/eggtoss.yaml
var defaultEggTossYAML []byte

// DefaultEggTossConfig returns the hardcoded Egg Toss configuration.
// It mirrors defaults/eggtoss.yaml and is used if the embedded file is unreadable.
func DefaultEggTossConfig() EggTossConfig {
	return EggTossConfig{
		World: WorldConfig{
			Width:           800,
			Height:          600,
			PlacementBuffer: 16,
			PlacementTries:  200,
			Trees:           PropSet{Count: 7, Size: 32, Variants: 2},
			Tents:           PropSet{Count: 4, Size: 48, Variants: 2},
			Nests:           PropSet{Count: 2, Size: 32},
		},
		Player: PlayerConfig{
			Speed:   2,
			Size:    32,
			MaxEggs: 3,
		},
		NPC: NPCConfig{
			Size:             32,
			Speed:            1,
			AngrySpeed:       2,
			AngerChanceMin:   0.0003,
			AngerChanceMax:   0.0015,
			AngryTicksMin:    300,
			AngryTicksMax:    900,
			WalkStepsMin:     20,
			WalkStepsMax:     50,
			LeaveTentSteps:   10,
			StunTicks:        60,
			SpawnTicksMin:    300,
			SpawnTicksMax:    600,
			SpawnCrowdRadius: 40,
			Reactions:        []string{"x_x", "RIP", "ow!"},
		},
		Projectile: ProjectileConfig{
			Speed: 5,
			Size:  16,
		},
		Camera: CameraConfig{
			MobileBreakpoint: 100,
			MobileZoom:       0.1,
			DesktopZoom:      0.125,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.3,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultEggTossYAML
}
