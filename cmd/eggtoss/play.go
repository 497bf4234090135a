package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/egg-toss/internal/audio"
	"github.com/vovakirdan/egg-toss/internal/config"
	"github.com/vovakirdan/egg-toss/internal/core"
	"github.com/vovakirdan/egg-toss/internal/games/eggtoss"
	"github.com/vovakirdan/egg-toss/internal/platform/tui"
	"github.com/vovakirdan/egg-toss/internal/registry"
	"github.com/vovakirdan/egg-toss/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagHoldTicks  int
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a round",
	Long: `Start a round of Egg Toss.

Controls:
  WASD/Arrows  - Walk
  Space/F      - Throw an egg
  P/Esc        - Pause
  R            - Restart (after being caught)
  Q/Ctrl+C     - Quit

The game only runs in a landscape terminal (wider than tall).

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  eggtoss play
  eggtoss play --difficulty easy
  eggtoss play --config ./my-eggtoss.yaml --mute`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().IntVar(&flagHoldTicks, "hold", tui.DefaultHoldTicks, "Ticks a direction stays held after a key press")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := defaultGame
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'eggtoss list' to see available games", gameID)
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}

	logger, logFile, err := newLogger()
	if err != nil {
		return err
	}
	defer logFile.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	eggtoss.SetConfigPath(flagConfig)
	eggtoss.SetDifficultyPreset(flagDifficulty)
	eggtoss.SetLogger(logger)

	if !flagMute {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			logger.Warn("playing without sound", "err", err)
		} else {
			defer sm.Cleanup()
			eggtoss.SetSounds(sm)
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Scores are optional; the game still works
		logger.Warn("playing without score storage", "path", flagDBPath, "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, cfg, tui.Options{
		Store:      store,
		Logger:     logger,
		Difficulty: flagDifficulty,
		HoldTicks:  flagHoldTicks,
	})
}
