package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the user and local config directories.
const FileName = "neondash.yaml"

// Load loads the game configuration and validates it.
// Search order: customPath -> ~/.neondash/configs/neondash.yaml -> ./configs/neondash.yaml -> embedded default.
// Files are overlaid on the defaults, so a partial file only overrides what it names.
// A missing file moves on to the next location; a file that exists but does not
// parse or validate is an error.
func Load(customPath string) (NeonConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return NeonConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		return parseFile(customPath, data)
	}

	// Try user config directory, then the local configs directory
	paths := []string{filepath.Join("configs", FileName)}
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		paths = append([]string{userCfgPath}, paths...)
	}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return NeonConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		return parseFile(path, data)
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultNeonYAML)
	if err != nil {
		return DefaultNeonConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseFile(path string, data []byte) (NeonConfig, error) {
	cfg, err := Parse(data)
	if err != nil {
		return NeonConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse overlays YAML data on the defaults and validates the result.
func Parse(data []byte) (NeonConfig, error) {
	cfg := DefaultNeonConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return NeonConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return NeonConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".neondash", "configs", filename)
}
