// neondash is a neon side-scrolling jump game for the terminal.
//
// Usage:
//
//	neondash play        - Play in this terminal (default command)
//	neondash serve       - Start SSH server for remote play
//	neondash scores      - Show the best runs
//	neondash simulate    - Run the simulation headless and print the result
//	neondash config      - Print the default configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--db <path>          - Set database path (default: ~/.neondash/runs.db)
//	--config <path>      - Load game constants from a YAML file
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "neondash",
	Short: "Neon Dash - jump the spikes in your terminal",
	Long: `Neon Dash is a side-scrolling jump game. Your square runs on its
own; time your jumps to clear spikes and blocks. Every obstacle you pass
is worth 100 points, one touch ends the run.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  scores    - View the best runs
  simulate  - Run the game headless
  config    - Print the default configuration

Examples:
  neondash
  neondash play --mute
  neondash serve --ssh :2222
  neondash scores --tui
  neondash simulate --autopilot --seed 7`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.neondash/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}
