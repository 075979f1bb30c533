package neondash

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/neon-dash/internal/config"
	"github.com/vovakirdan/neon-dash/internal/core"
)

// ErrInvalidTransition is returned when a state change is requested from a
// state that does not allow it.
var ErrInvalidTransition = errors.New("invalid state transition")

// Options wires the collaborators of a Game. Zero values are replaced with
// silent defaults and time-seeded random sources.
type Options struct {
	Audio  Audio
	Scores ScoreSink

	// SpawnRand drives the obstacle policy, EffectsRand drives particles.
	// When nil they are derived from Seed.
	SpawnRand   Rand
	EffectsRand Rand
	Seed        int64
}

// Game owns the world and runs the state machine. It holds no lock:
// the host calls Tick, Render and the control methods from one goroutine.
type Game struct {
	cfg     config.NeonConfig
	world   World
	state   RunState
	audio   Audio
	scores  ScoreSink
	spawner *spawner
	fx      Rand
	ground  float64
	muted   bool
	closed  bool
	runs    int
}

// New creates a game in the Menu state. cfg is expected to be validated.
func New(cfg config.NeonConfig, opts Options) *Game {
	if opts.Audio == nil {
		opts.Audio = NopAudio{}
	}
	if opts.Scores == nil {
		opts.Scores = nopSink{}
	}
	if opts.SpawnRand == nil {
		opts.SpawnRand = NewRand(opts.Seed)
	}
	if opts.EffectsRand == nil {
		seed := opts.Seed
		if seed != 0 {
			seed = ^seed
		}
		opts.EffectsRand = NewRand(seed)
	}

	g := &Game{
		cfg:     cfg,
		state:   StateMenu,
		audio:   opts.Audio,
		scores:  opts.Scores,
		spawner: newSpawner(cfg, opts.SpawnRand),
		fx:      opts.EffectsRand,
		ground:  groundLine(cfg),
		muted:   cfg.Audio.Muted,
	}
	g.world.Player = spawnPlayer(cfg)
	return g
}

// Config returns the constants the game runs with.
func (g *Game) Config() config.NeonConfig {
	return g.cfg
}

// State returns the current run state.
func (g *Game) State() RunState {
	return g.state
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.world.Score
}

// Runs returns how many runs have been started, restarts included.
func (g *Game) Runs() int {
	return g.runs
}

// Muted reports the last mute setting passed to SetMuted.
func (g *Game) Muted() bool {
	return g.muted
}

// Start begins the first run from the menu.
func (g *Game) Start() error {
	if err := g.transition("start", StateMenu); err != nil {
		return err
	}
	g.begin()
	return nil
}

// Pause freezes a run in progress and silences the music.
func (g *Game) Pause() error {
	if err := g.transition("pause", StatePlaying); err != nil {
		return err
	}
	g.state = StatePaused
	g.audio.StopMusic()
	return nil
}

// Resume continues a paused run without resetting it.
func (g *Game) Resume() error {
	if err := g.transition("resume", StatePaused); err != nil {
		return err
	}
	g.state = StatePlaying
	g.audio.StartMusic()
	return nil
}

// Restart begins a fresh run after a crash or from the pause screen.
func (g *Game) Restart() error {
	if err := g.transition("restart", StateGameOver, StatePaused); err != nil {
		return err
	}
	g.begin()
	return nil
}

// TogglePause pauses a running game or resumes a paused one.
func (g *Game) TogglePause() error {
	if g.state == StatePaused {
		return g.Resume()
	}
	return g.Pause()
}

// Jump launches the player if a run is in progress and the player is grounded.
// Reports whether the jump happened.
func (g *Game) Jump() bool {
	if g.closed || g.state != StatePlaying {
		return false
	}
	if !jump(&g.world.Player, g.cfg.Physics.JumpImpulse) {
		return false
	}
	g.audio.PlayJumpSound()
	return true
}

// SetMuted forwards the mute setting to the audio collaborator.
// It works in every state.
func (g *Game) SetMuted(muted bool) {
	if g.closed {
		return
	}
	g.muted = muted
	g.audio.ToggleMute(muted)
}

// Tick advances the simulation by one frame and returns the resulting state.
// It does nothing outside Playing.
func (g *Game) Tick() RunState {
	if g.closed || g.state != StatePlaying {
		return g.state
	}

	w := &g.world
	integrate(&w.Player, g.cfg.Physics, g.ground)

	w.Frame++
	g.spawner.spawn(w)

	if advanceObstacles(w, g.cfg.Physics.Speed, g.cfg.Scoring.Increment) > 0 {
		g.scores.ScoreChanged(w.Score)
	}
	cullObstacles(w, g.cfg.Scoring.CullMargin)

	if _, hit := collide(w, g.cfg.Collision.Inset); hit {
		g.crash()
		return g.state
	}

	w.Particles = advanceParticles(w.Particles, g.cfg.Particles.Decay)
	w.BackgroundOffset -= g.cfg.Scroll.BackgroundSpeed
	w.GroundOffset -= g.cfg.Physics.Speed

	if g.cfg.Particles.Trail {
		emitTrail(w, g.cfg.Particles, g.fx)
	}
	return g.state
}

// Close tears the game down. Every later call is a no-op.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.audio.StopMusic()
}

// Closed reports whether Close was called.
func (g *Game) Closed() bool {
	return g.closed
}

// Render paints the current world into dst.
func (g *Game) Render(dst *core.Screen) {
	Draw(dst, g.Snapshot(), g.cfg)
}

func (g *Game) transition(name string, from ...RunState) error {
	if g.closed {
		return fmt.Errorf("neondash: %s: game closed: %w", name, ErrInvalidTransition)
	}
	for _, s := range from {
		if g.state == s {
			return nil
		}
	}
	return fmt.Errorf("neondash: %s from %s: %w", name, g.state, ErrInvalidTransition)
}

// begin resets the world and enters Playing.
func (g *Game) begin() {
	g.world.reset(g.cfg)
	g.scores.ScoreChanged(0)
	g.state = StatePlaying
	g.runs++
	g.audio.StartMusic()
}

func (g *Game) crash() {
	p := g.world.Player
	cx, cy := p.Box().Center()
	g.world.Particles = burst(g.world.Particles, cx, cy, core.ColorCyan, g.cfg.Particles, g.fx)
	g.state = StateGameOver
	g.audio.PlayCrashSound()
	g.audio.StopMusic()
}
