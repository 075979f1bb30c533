package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-dash/internal/core"
	"github.com/vovakirdan/neon-dash/internal/games/neondash"
	"github.com/vovakirdan/neon-dash/internal/storage"
)

var (
	flagSimFrames    int
	flagSimAutopilot bool
	flagSimSave      bool
	flagSimFinal     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the game headless",
	Long: `Run the simulation without a terminal UI and print the outcome.

The run starts immediately and stops on a crash or after --frames ticks.
With --autopilot the player jumps over ground obstacles on its own.
Use --seed for a reproducible obstacle course.

Examples:
  neondash simulate --seed 7
  neondash simulate --autopilot --frames 36000
  neondash simulate --autopilot --seed 7 --save --final`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimFrames, "frames", 3600, "Maximum number of ticks")
	simulateCmd.Flags().BoolVar(&flagSimAutopilot, "autopilot", false, "Jump automatically")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the run in the database")
	simulateCmd.Flags().BoolVar(&flagSimFinal, "final", false, "Print the last frame as text")
}

func runSimulate(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("neondash-sim", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	game := neondash.New(cfg, neondash.Options{
		Seed: flagSeed,
		Scores: neondash.ScoreFunc(func(score int) {
			logger.Debug("score", "value", score)
		}),
	})
	defer game.Close()

	if err := game.Start(); err != nil {
		return err
	}

	pilot := neondash.NewAutopilot(cfg)
	jumps := 0
	start := time.Now()

	for i := 0; i < flagSimFrames; i++ {
		if flagSimAutopilot && pilot.ShouldJump(game.Snapshot()) && game.Jump() {
			jumps++
		}
		if game.Tick() == neondash.StateGameOver {
			break
		}
	}

	snap := game.Snapshot()
	logger.Info("simulation finished",
		"state", snap.State,
		"frames", snap.Frame,
		"score", snap.Score,
		"jumps", jumps,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)

	fmt.Printf("state:  %s\n", snap.State)
	fmt.Printf("score:  %d\n", snap.Score)
	fmt.Printf("frames: %d (%.1fs at 60 fps)\n", snap.Frame, float64(snap.Frame)/60)

	if flagSimFinal {
		screen := core.NewScreen(80, 24)
		game.Render(screen)
		fmt.Println(screen.String())
	}

	if flagSimSave {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("error opening runs database: %w", err)
		}
		defer store.Close()

		id, err := store.SaveRun(storage.Run{
			Player: "simulate",
			Score:  snap.Score,
			Frames: snap.Frame,
			Seed:   flagSeed,
		})
		if err != nil {
			return err
		}
		logger.Info("run saved", "id", id)
	}
	return nil
}
