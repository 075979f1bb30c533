// Package neondash implements Neon Dash, a side-scrolling reflex runner.
// A square jumps over procedurally spawned spikes and blocks; touching one
// ends the run, every obstacle left behind scores points.
//
// All simulation state lives in one World owned by Game. Each tick runs the
// step functions in a fixed order and the render pass only ever sees a
// copied Snapshot.
package neondash

import (
	"github.com/vovakirdan/neon-dash/internal/config"
	"github.com/vovakirdan/neon-dash/internal/core"
)

// RunState is the state of the run state machine.
type RunState int

const (
	StateMenu RunState = iota
	StatePlaying
	StatePaused
	StateGameOver
)

// String returns a human-readable name for the state.
func (s RunState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// ObstacleKind distinguishes the two obstacle shapes.
type ObstacleKind int

const (
	KindSpike ObstacleKind = iota
	KindBlock
)

// String returns a human-readable name for the kind.
func (k ObstacleKind) String() string {
	if k == KindBlock {
		return "block"
	}
	return "spike"
}

// Player is the jumping square. X is fixed, Y is the top edge.
type Player struct {
	X, Y     float64
	VY       float64 // Vertical velocity, negative = up
	Rotation float64 // Radians, cosmetic only
	Grounded bool
	Width    float64
	Height   float64
}

// Box returns the player's raw collision box.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}

// Obstacle is a spike or block scrolling towards the player.
type Obstacle struct {
	ID       uint64
	Kind     ObstacleKind
	Floating bool
	X, Y     float64
	Width    float64
	Height   float64
	Passed   bool // Set once when the player overtakes it
}

// Box returns the obstacle's raw collision box.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.Width, o.Height)
}

// Right returns the trailing edge of the obstacle.
func (o Obstacle) Right() float64 {
	return o.X + o.Width
}

// Particle is a short-lived visual effect.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // 1 = fresh, removed at <= 0
	Color  core.Color
	Size   float64
}

// World is the mutable state of one run.
type World struct {
	Player    Player
	Obstacles []Obstacle // Spawn order, which is also left-to-right order
	Particles []Particle
	Score     int
	Frame     int // Ticks since the run started, drives spawn cadence

	// Unbounded scroll accumulators; renderers wrap them by their tiling period.
	BackgroundOffset float64
	GroundOffset     float64
}

// groundLine returns the resting Y of the player's top edge.
func groundLine(cfg config.NeonConfig) float64 {
	return cfg.Viewport.GroundY() - cfg.Player.Height
}

// spawnPlayer returns the canonical player pose at the start of a run.
func spawnPlayer(cfg config.NeonConfig) Player {
	return Player{
		X:        cfg.Player.X,
		Y:        groundLine(cfg),
		Grounded: true,
		Width:    cfg.Player.Width,
		Height:   cfg.Player.Height,
	}
}

// reset clears the world for a new run, keeping slice capacity.
func (w *World) reset(cfg config.NeonConfig) {
	w.Player = spawnPlayer(cfg)
	w.Obstacles = w.Obstacles[:0]
	w.Particles = w.Particles[:0]
	w.Score = 0
	w.Frame = 0
	w.BackgroundOffset = 0
	w.GroundOffset = 0
}
