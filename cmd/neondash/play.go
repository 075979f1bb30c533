package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-dash/internal/audio"
	"github.com/vovakirdan/neon-dash/internal/audio/device"
	"github.com/vovakirdan/neon-dash/internal/config"
	"github.com/vovakirdan/neon-dash/internal/core"
	"github.com/vovakirdan/neon-dash/internal/platform/tui"
	"github.com/vovakirdan/neon-dash/internal/storage"
)

var (
	flagMute    bool
	flagNoAudio bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Neon Dash in this terminal",
	Long: `Start the game in this terminal.

Controls:
  Space/Up/Click  - Jump (starts the game from the title screen)
  Enter           - Start / try again
  P/Esc           - Pause
  R               - Restart
  M               - Mute
  Ctrl+S          - Screenshot
  Q/Ctrl+C        - Quit

Examples:
  neondash play
  neondash play --mute
  neondash play --seed 42
  neondash play --config ./my-neondash.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
	cmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Never open the audio device")
}

// loadConfig loads the game constants and applies the audio flags.
func loadConfig() (config.NeonConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagMute {
		cfg.Audio.Muted = true
	}
	if flagNoAudio {
		cfg.Audio.Enabled = false
	}
	return cfg, nil
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("neondash", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	sound := audio.NewManager(cfg.Audio, device.Speaker{}, logger.WithPrefix("audio"))

	runErr := tui.Run(tui.Options{
		Game: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:  store,
		Audio:  sound,
		Logger: logger,
		Player: "local",
	})

	sound.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}
