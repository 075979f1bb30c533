package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-dash/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in game constants as YAML.

Save the output to ~/.neondash/configs/neondash.yaml (or pass it with --config)
and edit the values you want to change; missing keys keep their defaults.

Examples:
  neondash config > ~/.neondash/configs/neondash.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}

