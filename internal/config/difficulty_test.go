package config

import (
	"math"
	"testing"
)

func TestDifficultyLevelProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
	})

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.2},
		{5, 0.6},
		{10, 1.0},
		{50, 1.0}, // clamped
	}

	for _, tc := range tests {
		if got := d.Level(tc.score, 0); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultyDisabledStaysAtInitial(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.4,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
	})

	if d.IsEnabled() {
		t.Error("IsEnabled should be false")
	}
	if got := d.Level(99, 99999); got != 0.4 {
		t.Errorf("Level = %v, expected 0.4", got)
	}
}

func TestDifficultyChanceAndSpeed(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	})

	if got := d.Chance(0.001, 0.003, 0, 0); math.Abs(got-0.001) > 1e-12 {
		t.Errorf("Chance at level 0 = %v, expected 0.001", got)
	}
	if got := d.Chance(0.001, 0.003, 0, 100); math.Abs(got-0.003) > 1e-12 {
		t.Errorf("Chance at level 1 = %v, expected 0.003", got)
	}
	if got := d.Speed(2, 0, 50); math.Abs(got-3) > 1e-9 {
		t.Errorf("Speed at level 0.5 = %v, expected 3", got)
	}
}
