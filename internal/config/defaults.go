package config

import (
	_ "embed"
)

//go:embed defaults/neondash.yaml
var defaultNeonYAML []byte

// DefaultNeonConfig returns the built-in configuration.
// It mirrors defaults/neondash.yaml and is used when the embedded file fails to parse.
func DefaultNeonConfig() NeonConfig {
	return NeonConfig{
		Viewport: Viewport{
			Width:        1280,
			Height:       720,
			GroundHeight: 100,
		},
		Physics: Physics{
			Gravity:     0.6,
			JumpImpulse: -11.5,
			Speed:       7,
			SpinRate:    0.15,
			SnapBlend:   0.8,
		},
		Player: Player{
			X:      200,
			Width:  40,
			Height: 40,
		},
		Spawn: Spawn{
			Period:            100,
			SkipThreshold:     0.3,
			BlockThreshold:    0.7,
			FloatingThreshold: 0.8,
			GroupThreshold:    0.8,
			FloatOffset:       50,
			Spike:             Size{Width: 30, Height: 40},
			Block:             Size{Width: 40, Height: 40},
		},
		Scoring: Scoring{
			Increment:  100,
			CullMargin: 100,
		},
		Collision: Collision{
			Inset: 8,
		},
		Particles: Particles{
			BurstCount:            20,
			BurstSpeed:            15,
			BurstSizeMin:          2,
			BurstSizeRange:        5,
			Decay:                 0.02,
			Trail:                 true,
			TrailFlicker:          true,
			TrailFlickerThreshold: 0.5,
			TrailLife:             0.5,
			TrailSpeed:            5,
			TrailSpread:           2,
			TrailSize:             5,
		},
		Scroll: Scroll{
			BackgroundSpeed: 0.5,
			GridSize:        100,
			GroundDash:      40,
		},
		Audio: Audio{
			Enabled:     true,
			Volume:      0.4,
			Tempo:       130,
			LookaheadMS: 100,
			IntervalMS:  25,
			SampleRate:  44100,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultNeonYAML
}
