package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults should parse: %v", err)
	}
	if cfg != DefaultNeonConfig() {
		t.Errorf("embedded YAML and DefaultNeonConfig() drifted apart:\n%+v\n%+v", cfg, DefaultNeonConfig())
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := DefaultNeonConfig().Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte("physics:\n  speed: 5\nparticles:\n  trail: false\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Physics.Speed != 5 {
		t.Errorf("speed = %g, expected 5", cfg.Physics.Speed)
	}
	if cfg.Particles.Trail {
		t.Error("trail should be disabled by the overlay")
	}
	if cfg.Physics.Gravity != 0.6 {
		t.Errorf("gravity should keep its default, got %g", cfg.Physics.Gravity)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*NeonConfig)
	}{
		{"zero speed", func(c *NeonConfig) { c.Physics.Speed = 0 }},
		{"negative player size", func(c *NeonConfig) { c.Player.Width = -40 }},
		{"zero spawn period", func(c *NeonConfig) { c.Spawn.Period = 0 }},
		{"probability above one", func(c *NeonConfig) { c.Spawn.GroupThreshold = 1.5 }},
		{"upward gravity", func(c *NeonConfig) { c.Physics.Gravity = -0.6 }},
		{"downward jump", func(c *NeonConfig) { c.Physics.JumpImpulse = 3 }},
		{"tunnelling speed", func(c *NeonConfig) { c.Physics.Speed = 14 }},
		{"zero decay", func(c *NeonConfig) { c.Particles.Decay = 0 }},
		{"zero tempo", func(c *NeonConfig) { c.Audio.Tempo = 0 }},
		{"spike collapses after inset", func(c *NeonConfig) { c.Spawn.Spike.Height = 16 }},
		{"block collapses after inset", func(c *NeonConfig) { c.Spawn.Block.Height = 10 }},
		{"player collapses after inset", func(c *NeonConfig) { c.Player.Height = 16 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultNeonConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should wrap ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("spawn:\n  period: 60\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Spawn.Period != 60 {
		t.Errorf("period = %d, expected 60", cfg.Spawn.Period)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  speed: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid custom config should wrap ErrInvalidConfig, got %v", err)
	}
}

func TestAudioDurations(t *testing.T) {
	a := DefaultNeonConfig().Audio
	if a.Lookahead().Milliseconds() != 100 {
		t.Errorf("Lookahead() = %v, expected 100ms", a.Lookahead())
	}
	if a.Interval().Milliseconds() != 25 {
		t.Errorf("Interval() = %v, expected 25ms", a.Interval())
	}
}

func TestGroundY(t *testing.T) {
	if y := DefaultNeonConfig().Viewport.GroundY(); y != 620 {
		t.Errorf("GroundY() = %g, expected 620", y)
	}
}

func TestLoadSearchPathRejectsInvalidFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	// Nothing on the search path: embedded defaults
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() without files failed: %v", err)
	}
	if cfg != DefaultNeonConfig() {
		t.Error("Load() without files should return the defaults")
	}

	if err := os.Mkdir(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	local := filepath.Join(dir, "configs", FileName)

	if err := os.WriteFile(local, []byte("spawn:\n  period: 60\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() with a valid local file failed: %v", err)
	}
	if cfg.Spawn.Period != 60 {
		t.Errorf("period = %d, expected 60 from the local file", cfg.Spawn.Period)
	}

	if err := os.WriteFile(local, []byte("spawn:\n  spike:\n    height: 16\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(""); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid local config should fail with ErrInvalidConfig, got %v", err)
	}
}
