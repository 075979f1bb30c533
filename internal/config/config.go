// Package config provides YAML-based configuration loading for Neon Dash.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// NeonConfig contains all tunable constants of the game.
type NeonConfig struct {
	Viewport  Viewport  `yaml:"viewport"`
	Physics   Physics   `yaml:"physics"`
	Player    Player    `yaml:"player"`
	Spawn     Spawn     `yaml:"spawn"`
	Scoring   Scoring   `yaml:"scoring"`
	Collision Collision `yaml:"collision"`
	Particles Particles `yaml:"particles"`
	Scroll    Scroll    `yaml:"scroll"`
	Audio     Audio     `yaml:"audio"`
}

// Viewport defines the world-space screen the simulation runs in.
type Viewport struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"` // Distance of the ground line from the bottom
}

// GroundY returns the world y-coordinate of the ground surface.
func (v Viewport) GroundY() float64 {
	return v.Height - v.GroundHeight
}

// Physics defines per-tick integration constants.
type Physics struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"` // Negative = up
	Speed       float64 `yaml:"speed"`        // World scroll per tick
	SpinRate    float64 `yaml:"spin_rate"`    // Radians per airborne tick
	SnapBlend   float64 `yaml:"snap_blend"`   // Weight kept from the current rotation when grounded
}

// Player defines the player square.
type Player struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Size is a width/height pair.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Spawn defines the obstacle spawn policy. Every threshold is compared
// against a uniform draw in [0,1): the branch is taken when draw > threshold.
type Spawn struct {
	Period            int     `yaml:"period"`
	SkipThreshold     float64 `yaml:"skip_threshold"`
	BlockThreshold    float64 `yaml:"block_threshold"`
	FloatingThreshold float64 `yaml:"floating_threshold"`
	GroupThreshold    float64 `yaml:"group_threshold"`
	FloatOffset       float64 `yaml:"float_offset"`
	Spike             Size    `yaml:"spike"`
	Block             Size    `yaml:"block"`
}

// Scoring defines score and obstacle lifetime constants.
type Scoring struct {
	Increment  int     `yaml:"increment"`
	CullMargin float64 `yaml:"cull_margin"`
}

// Collision defines hitbox tolerances.
type Collision struct {
	Inset float64 `yaml:"inset"`
}

// Particles defines explosion and trail effects.
type Particles struct {
	BurstCount            int     `yaml:"burst_count"`
	BurstSpeed            float64 `yaml:"burst_speed"`
	BurstSizeMin          float64 `yaml:"burst_size_min"`
	BurstSizeRange        float64 `yaml:"burst_size_range"`
	Decay                 float64 `yaml:"decay"`
	Trail                 bool    `yaml:"trail"`
	TrailFlicker          bool    `yaml:"trail_flicker"`
	TrailFlickerThreshold float64 `yaml:"trail_flicker_threshold"`
	TrailLife             float64 `yaml:"trail_life"`
	TrailSpeed            float64 `yaml:"trail_speed"`
	TrailSpread           float64 `yaml:"trail_spread"`
	TrailSize             float64 `yaml:"trail_size"`
}

// Scroll defines background parallax and tiling periods.
type Scroll struct {
	BackgroundSpeed float64 `yaml:"background_speed"`
	GridSize        float64 `yaml:"grid_size"`
	GroundDash      float64 `yaml:"ground_dash"`
}

// Audio defines the procedural music and effects.
type Audio struct {
	Enabled     bool    `yaml:"enabled"`
	Muted       bool    `yaml:"muted"`
	Volume      float64 `yaml:"volume"`
	Tempo       float64 `yaml:"tempo"`
	LookaheadMS int     `yaml:"lookahead_ms"`
	IntervalMS  int     `yaml:"interval_ms"`
	SampleRate  int     `yaml:"sample_rate"`
}

// Lookahead returns how far ahead of playback notes are queued.
func (a Audio) Lookahead() time.Duration {
	return time.Duration(a.LookaheadMS) * time.Millisecond
}

// Interval returns how often the music scheduler wakes up.
func (a Audio) Interval() time.Duration {
	return time.Duration(a.IntervalMS) * time.Millisecond
}

// Validate checks the constants the simulation relies on.
// The simulation itself performs no runtime checks.
func (c NeonConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Viewport.Width > 0 && c.Viewport.Height > 0, "viewport must be positive, got %gx%g", c.Viewport.Width, c.Viewport.Height)
	check(c.Viewport.GroundHeight >= 0 && c.Viewport.GroundHeight < c.Viewport.Height, "ground_height %g outside viewport", c.Viewport.GroundHeight)
	check(c.Physics.Speed > 0, "physics.speed must be positive, got %g", c.Physics.Speed)
	check(c.Physics.Gravity > 0, "physics.gravity must be positive, got %g", c.Physics.Gravity)
	check(c.Physics.JumpImpulse < 0, "physics.jump_impulse must be negative, got %g", c.Physics.JumpImpulse)
	check(c.Physics.SnapBlend >= 0 && c.Physics.SnapBlend <= 1, "physics.snap_blend must be in [0,1], got %g", c.Physics.SnapBlend)
	check(c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive, got %gx%g", c.Player.Width, c.Player.Height)
	check(c.Spawn.Period > 0, "spawn.period must be positive, got %d", c.Spawn.Period)
	check(c.Spawn.Spike.Width > 0 && c.Spawn.Spike.Height > 0, "spawn.spike size must be positive")
	check(c.Spawn.Block.Width > 0 && c.Spawn.Block.Height > 0, "spawn.block size must be positive")
	check(c.Spawn.FloatOffset >= 0, "spawn.float_offset must not be negative, got %g", c.Spawn.FloatOffset)
	for _, p := range []struct {
		name string
		v    float64
	}{
		{"spawn.skip_threshold", c.Spawn.SkipThreshold},
		{"spawn.block_threshold", c.Spawn.BlockThreshold},
		{"spawn.floating_threshold", c.Spawn.FloatingThreshold},
		{"spawn.group_threshold", c.Spawn.GroupThreshold},
		{"particles.trail_flicker_threshold", c.Particles.TrailFlickerThreshold},
	} {
		check(p.v >= 0 && p.v <= 1, "%s must be in [0,1], got %g", p.name, p.v)
	}
	check(c.Scoring.Increment > 0, "scoring.increment must be positive, got %d", c.Scoring.Increment)
	check(c.Scoring.CullMargin >= 0, "scoring.cull_margin must not be negative, got %g", c.Scoring.CullMargin)
	check(c.Collision.Inset >= 0, "collision.inset must not be negative, got %g", c.Collision.Inset)
	check(c.Particles.BurstCount >= 0, "particles.burst_count must not be negative")
	check(c.Particles.Decay > 0, "particles.decay must be positive, got %g", c.Particles.Decay)
	check(c.Scroll.GridSize > 0 && c.Scroll.GroundDash > 0, "scroll tiling periods must be positive")
	check(c.Audio.Tempo > 0, "audio.tempo must be positive, got %g", c.Audio.Tempo)
	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume must be in [0,1], got %g", c.Audio.Volume)
	check(c.Audio.IntervalMS > 0 && c.Audio.LookaheadMS > 0, "audio scheduler timings must be positive")
	check(c.Audio.SampleRate > 0, "audio.sample_rate must be positive, got %d", c.Audio.SampleRate)

	// Inset hitboxes must keep a positive area.
	for _, d := range []struct {
		name string
		size Size
	}{
		{"player", Size{Width: c.Player.Width, Height: c.Player.Height}},
		{"spawn.spike", c.Spawn.Spike},
		{"spawn.block", c.Spawn.Block},
	} {
		check(d.size.Width > 2*c.Collision.Inset && d.size.Height > 2*c.Collision.Inset,
			"%s %gx%g vanishes after collision.inset %g", d.name, d.size.Width, d.size.Height, c.Collision.Inset)
	}

	// A single clamp per tick: an obstacle thinner than one tick of travel
	// could be skipped entirely.
	narrowest := min(c.Spawn.Spike.Width, c.Spawn.Block.Width) - 2*c.Collision.Inset
	check(c.Physics.Speed < narrowest, "physics.speed %g would tunnel through obstacles %g wide after inset", c.Physics.Speed, narrowest)

	return errors.Join(errs...)
}
