package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "eggtoss.yaml"

// LoadEggToss loads Egg Toss configuration.
// Search order: customPath -> ~/.eggtoss/configs/eggtoss.yaml -> ./configs/eggtoss.yaml -> embedded default
func LoadEggToss(customPath string) (EggTossConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return EggTossConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return EggTossConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultEggTossYAML)
	if err != nil {
		return DefaultEggTossConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the hardcoded defaults, so a partial file only
// overrides the keys it names, and validates the result.
func Parse(data []byte) (EggTossConfig, error) {
	cfg := DefaultEggTossConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return EggTossConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return EggTossConfig{}, err
	}
	return cfg, nil
}

// Validate checks the invariants the simulation relies on.
func (c EggTossConfig) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %vx%v", c.World.Width, c.World.Height))
	}
	// Everything placed in the world must fit inside it
	fits := func(size float64) bool {
		return size <= c.World.Width && size <= c.World.Height
	}
	for name, set := range map[string]PropSet{"trees": c.World.Trees, "tents": c.World.Tents, "nests": c.World.Nests} {
		if set.Count < 0 {
			errs = append(errs, fmt.Errorf("world.%s.count must not be negative", name))
		}
		if set.Count > 0 && set.Size <= 0 {
			errs = append(errs, fmt.Errorf("world.%s.size must be positive", name))
		}
		if set.Count > 0 && !fits(set.Size) {
			errs = append(errs, fmt.Errorf("world.%s.size %v does not fit the world", name, set.Size))
		}
	}
	if c.Player.Size <= 0 || c.NPC.Size <= 0 || c.Projectile.Size <= 0 {
		errs = append(errs, errors.New("entity sizes must be positive"))
	}
	if !fits(c.Player.Size) || !fits(c.NPC.Size) || !fits(c.Projectile.Size) {
		errs = append(errs, errors.New("entity sizes must fit the world"))
	}
	// Eggs need a non-zero velocity to ever leave the world
	for name, speed := range map[string]float64{
		"player.speed":     c.Player.Speed,
		"npc.speed":        c.NPC.Speed,
		"npc.angry_speed":  c.NPC.AngrySpeed,
		"projectile.speed": c.Projectile.Speed,
	} {
		if speed <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, speed))
		}
	}
	if c.Player.MaxEggs < 1 {
		errs = append(errs, errors.New("player.max_eggs must be at least 1"))
	}
	if c.NPC.AngryTicksMax < c.NPC.AngryTicksMin || c.NPC.WalkStepsMax < c.NPC.WalkStepsMin ||
		c.NPC.SpawnTicksMax < c.NPC.SpawnTicksMin {
		errs = append(errs, errors.New("npc ranges must have max >= min"))
	}
	if c.Camera.MobileZoom <= 0 || c.Camera.DesktopZoom <= 0 {
		errs = append(errs, errors.New("camera zoom must be positive"))
	}
	switch c.Difficulty.Progression.Type {
	case "", ProgressionScore, ProgressionTime, ProgressionNone:
	default:
		errs = append(errs, fmt.Errorf("unknown difficulty.progression.type %q", c.Difficulty.Progression.Type))
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".eggtoss", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *EggTossConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.MaxEggs = 5
	case DifficultyHard:
		cfg.Player.MaxEggs = 2
		cfg.NPC.StunTicks = 40
	}
}
