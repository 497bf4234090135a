// eggtoss is a terminal arcade game: roam a camp site, collect eggs from
// nests and throw them at campers before an angry one catches you.
//
// Usage:
//
//	eggtoss play             - Play a round
//	eggtoss scores           - Show stored runs
//	eggtoss list             - List registered games
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.eggtoss/scores.db)
//	--log <path>    - Write diagnostics to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/egg-toss/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/egg-toss/internal/games/eggtoss"
)

const defaultGame = "eggtoss"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogPath  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "eggtoss",
	Short: "Egg Toss - throw eggs at campers in your terminal",
	Long: `Egg Toss is a terminal arcade game. Walk around a camp site, pick up
eggs from nests and throw them at campers. Campers you hit are stunned
and worth a point; some get angry on their own and chase you down.

Available commands:
  play     - Start a round
  scores   - View stored runs
  list     - Show registered games

Examples:
  eggtoss play
  eggtoss play --difficulty hard --seed 42
  eggtoss scores`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write diagnostics to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger opens the diagnostics log. The terminal belongs to the game,
// so without --log everything is discarded.
func newLogger() (*log.Logger, io.Closer, error) {
	if flagLogPath == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "eggtoss",
		Level:           level,
	})
	return logger, f, nil
}
