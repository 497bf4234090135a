// Package config provides YAML-based game configuration loading and
// difficulty management for Egg Toss.
package config

// EggTossConfig contains all configuration for the Egg Toss game.
type EggTossConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	NPC        NPCConfig        `yaml:"npc"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Camera     CameraConfig     `yaml:"camera"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the world bounds and prop scattering.
type WorldConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	PlacementBuffer float64 `yaml:"placement_buffer"`
	PlacementTries  int     `yaml:"placement_tries"`
	Trees           PropSet `yaml:"trees"`
	Tents           PropSet `yaml:"tents"`
	Nests           PropSet `yaml:"nests"`
}

// PropSet defines how many props of one type to scatter and their footprint.
type PropSet struct {
	Count    int     `yaml:"count"`
	Size     float64 `yaml:"size"`
	Variants int     `yaml:"variants"` // Number of visual variants, 0 or 1 means none
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	Speed   float64 `yaml:"speed"`
	Size    float64 `yaml:"size"`
	MaxEggs int     `yaml:"max_eggs"`
}

// NPCConfig defines NPC behavior parameters. Durations are in ticks.
type NPCConfig struct {
	Size             float64  `yaml:"size"`
	Speed            float64  `yaml:"speed"`
	AngrySpeed       float64  `yaml:"angry_speed"`
	AngerChanceMin   float64  `yaml:"anger_chance_min"` // Per-tick chance at difficulty 0
	AngerChanceMax   float64  `yaml:"anger_chance_max"` // Per-tick chance at difficulty 1
	AngryTicksMin    int      `yaml:"angry_ticks_min"`
	AngryTicksMax    int      `yaml:"angry_ticks_max"`
	WalkStepsMin     int      `yaml:"walk_steps_min"`
	WalkStepsMax     int      `yaml:"walk_steps_max"`
	LeaveTentSteps   int      `yaml:"leave_tent_steps"`
	StunTicks        int      `yaml:"stun_ticks"`
	SpawnTicksMin    int      `yaml:"spawn_ticks_min"`
	SpawnTicksMax    int      `yaml:"spawn_ticks_max"`
	SpawnCrowdRadius float64  `yaml:"spawn_crowd_radius"`
	Reactions        []string `yaml:"reactions"`
}

// ProjectileConfig defines thrown egg parameters.
type ProjectileConfig struct {
	Speed float64 `yaml:"speed"`
	Size  float64 `yaml:"size"`
}

// CameraConfig selects a zoom level (screen cells per world unit) from the
// viewport width once per game.
type CameraConfig struct {
	MobileBreakpoint int     `yaml:"mobile_breakpoint"` // Viewport widths below this use MobileZoom
	MobileZoom       float64 `yaml:"mobile_zoom"`
	DesktopZoom      float64 `yaml:"desktop_zoom"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to chase speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
