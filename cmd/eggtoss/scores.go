package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/egg-toss/internal/platform/tui"
	"github.com/vovakirdan/egg-toss/internal/registry"
	"github.com/vovakirdan/egg-toss/internal/storage"
)

var (
	flagPlain bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show stored runs",
	Long: `Display the best runs for a game.

Examples:
  eggtoss scores
  eggtoss scores --plain
  eggtoss scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain table instead of the interactive view")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all stored runs for the game")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := defaultGame
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'eggtoss list' to see available games", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared all runs for %s.\n", title)
		return nil
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, gameID, title, flagFPS, width, height)
	}

	return printScores(store, gameID, title)
}

func printScores(store *storage.Store, gameID, title string) error {
	runs, err := store.TopRuns(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'eggtoss play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-9s  %-10s  %s\n", "Rank", "Score", "Survived", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-6s  %-9s  %-10s  %s\n", "----", "-----", "--------", "----------", "----")

	for i, r := range runs {
		difficulty := r.Difficulty
		if difficulty == "" {
			difficulty = "-"
		}
		fmt.Printf("  %-4d  %-6d  %-9s  %-10s  %s\n", i+1, r.Score,
			tui.FormatTicks(r.Ticks, flagFPS), difficulty, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d   Runs: %d   Average: %.1f\n", stats.HighScore, stats.Runs, stats.AvgScore)
	return nil
}
