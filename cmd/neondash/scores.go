package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-dash/internal/platform/tui"
	"github.com/vovakirdan/neon-dash/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresClear bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best runs recorded in the database.

Examples:
  neondash scores
  neondash scores --limit 25
  neondash scores --tui
  neondash scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse runs interactively")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded run")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening runs database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println("All runs deleted.")
		return nil
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	runs, err := store.TopRuns(flagScoresLimit)
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	fmt.Println("High Scores - Neon Dash")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'neondash play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-12s  %-8s  %s\n", "Rank", "Score", "Player", "Frames", "Date")
	fmt.Printf("  %-4s  %-8s  %-12s  %-8s  %s\n", "----", "-----", "------", "------", "----")

	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-12s  %-8d  %s\n", i+1, r.Score, r.Player, r.Frames, dateStr)
	}

	// Show aggregate stats
	fmt.Println()
	if stats, err := store.Stats(); err == nil {
		fmt.Printf("Best: %d   Runs: %d   Average: %.0f\n", stats.HighScore, stats.Runs, stats.AvgScore)
	}
	return nil
}
