package config

import "github.com/vovakirdan/egg-toss/internal/core"

// Progression types accepted in progression.type.
const (
	ProgressionScore = "score"
	ProgressionTime  = "time"
	ProgressionNone  = "none"
)

// DifficultyManager maps score and elapsed ticks to a difficulty level in
// [0, 1] and scales tuning values by it.
type DifficultyManager struct {
	cfg  DifficultyConfig
	base float64 // Level before any progression
}

// NewDifficultyManager creates a manager for cfg.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:  cfg,
		base: core.ClampF(cfg.InitialLevel, 0, 1),
	}
}

// IsEnabled reports whether the level moves at all.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressionNone
}

// Level returns the difficulty level for the given score and tick count.
// It rises linearly from the initial level to 1 as the tracked quantity
// reaches progression.max_at.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.IsEnabled() {
		return d.base
	}

	var value int
	switch d.cfg.Progression.Type {
	case ProgressionScore:
		value = score
	case ProgressionTime:
		value = ticks
	default:
		return d.base
	}

	maxAt := float64(max(d.cfg.Progression.MaxAt, 1))
	progress := core.ClampF(float64(value)/maxAt, 0, 1)
	return d.base + progress*(1-d.base)
}

// Speed scales base by up to 1+speed_multiplier at level 1.
func (d *DifficultyManager) Speed(base float64, score, ticks int) float64 {
	return base * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// Chance interpolates a per-tick probability between lo (level 0) and hi (level 1).
func (d *DifficultyManager) Chance(lo, hi float64, score, ticks int) float64 {
	return lo + d.Level(score, ticks)*(hi-lo)
}
