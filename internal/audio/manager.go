package audio

import (
	"context"
	"errors"
	"io"
	"math"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/neon-dash/internal/config"
	"github.com/vovakirdan/neon-dash/internal/core"
)

// muteTau is the time constant of the mute fade.
const muteTau = 100 * time.Millisecond

// ErrDisabled is returned by Init when audio is switched off in the config.
var ErrDisabled = errors.New("audio disabled")

// Output is the playback device. The speaker package satisfies it through
// the device subpackage; tests use a fake that is pulled by hand.
type Output interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Lock()
	Unlock()
}

// Manager plays the procedural soundtrack and the sound effects.
// All methods return immediately and are safe for concurrent use. When the
// device cannot be opened the manager logs one warning and becomes silent.
type Manager struct {
	mu     sync.Mutex
	cfg    config.Audio
	out    Output
	logger *log.Logger
	rate   beep.SampleRate

	mixer *beep.Mixer
	fader *fader
	clock *clock

	initialized bool
	disabled    bool
	closed      bool
	muted       bool

	cancel context.CancelFunc
	done   chan struct{}
	seed   int64
}

// NewManager creates a manager. The device is opened lazily by the first
// call that needs it.
func NewManager(cfg config.Audio, out Output, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := &Manager{
		cfg:      cfg,
		out:      out,
		logger:   logger,
		rate:     beep.SampleRate(cfg.SampleRate),
		mixer:    &beep.Mixer{},
		muted:    cfg.Muted,
		disabled: !cfg.Enabled || out == nil,
		seed:     time.Now().UnixNano(),
	}

	gain := 1.0
	if m.muted {
		gain = 0
	}
	m.fader = newFader(m.mixer, gain, muteTau.Seconds(), m.rate)
	m.clock = &clock{streamer: newVolume(m.fader, cfg.Volume)}
	return m
}

// Init opens the device now instead of on first use.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed || m.disabled {
		return ErrDisabled
	}
	return m.initLocked()
}

// Enabled reports whether sound can still be produced.
func (m *Manager) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.disabled && !m.closed
}

// Muted reports the current mute setting.
func (m *Manager) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

// Playing reports whether the music scheduler is running.
func (m *Manager) Playing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cancel != nil
}

// StartMusic starts the lookahead scheduler from the first step of the
// pattern. It does nothing when music is already playing.
func (m *Manager) StartMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.readyLocked() || m.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.done = make(chan struct{})

	start := m.clock.Position() + m.rate.N(m.cfg.Lookahead())
	seq := newSequencer(m.cfg.Tempo, m.rate, start)
	m.seed++
	go m.schedule(ctx, seq, rand.New(rand.NewSource(m.seed)), m.done)

	m.logger.Debug("music started", "tempo", m.cfg.Tempo)
}

// StopMusic stops queueing new notes. Notes already queued play out.
func (m *Manager) StopMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopLocked()
}

// ToggleMute fades the master gain to zero or back.
func (m *Manager) ToggleMute(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
	if !m.initialized {
		target := 1.0
		if muted {
			target = 0
		}
		m.fader.target = target
		m.fader.current = target
		return
	}

	m.out.Lock()
	if muted {
		m.fader.target = 0
	} else {
		m.fader.target = 1
	}
	m.out.Unlock()
}

// PlayJumpSound plays the jump blip.
func (m *Manager) PlayJumpSound() {
	m.play(JumpSound)
}

// PlayCrashSound plays the crash growl.
func (m *Manager) PlayCrashSound() {
	m.play(CrashSound)
}

// Close stops the music and silences everything queued. Later calls are no-ops.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.stopLocked()
	if m.initialized {
		m.out.Lock()
		m.mixer.Clear()
		m.out.Unlock()
	}
	m.closed = true
}

func (m *Manager) play(sound func(beep.SampleRate) beep.Streamer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.readyLocked() {
		return
	}
	m.add(sound(m.rate))
}

// add puts a streamer on the mixer under the device lock.
func (m *Manager) add(s beep.Streamer) {
	m.out.Lock()
	m.mixer.Add(s)
	m.out.Unlock()
}

func (m *Manager) readyLocked() bool {
	if m.closed || m.disabled {
		return false
	}
	return m.initLocked() == nil
}

func (m *Manager) initLocked() error {
	if m.initialized {
		return nil
	}
	if err := m.out.Init(m.rate, m.rate.N(m.cfg.Lookahead())); err != nil {
		m.disabled = true
		m.logger.Warn("audio device unavailable, continuing without sound", "error", err)
		return err
	}
	m.out.Play(m.clock)
	m.initialized = true
	return nil
}

func (m *Manager) stopLocked() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	<-m.done
	m.cancel = nil
	m.done = nil
	m.logger.Debug("music stopped")
}

// schedule re-arms every interval and queues the notes falling inside the
// lookahead window. It never holds the manager lock.
func (m *Manager) schedule(ctx context.Context, seq *sequencer, rng *rand.Rand, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(m.cfg.Interval())
	defer ticker.Stop()

	lookahead := m.rate.N(m.cfg.Lookahead())
	for {
		now := m.clock.Position()
		for _, h := range seq.due(now + lookahead) {
			delay := max(h.At-now, 0)
			for _, part := range PartsAt(h.Step) {
				m.add(beep.Seq(beep.Silence(delay), m.partVoice(part, h.Step, rng)))
			}
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (m *Manager) partVoice(p Part, step int, rng *rand.Rand) beep.Streamer {
	switch p {
	case PartKick:
		return Kick(m.rate)
	case PartSnare:
		return Snare(m.rate, rng)
	default:
		return BassNote(m.rate, BassFreq(step))
	}
}

// newVolume wraps s in a linear gain clamped to [0,1]. Zero gain is silent.
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	vol = core.ClampF(vol, 0, 1)
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// clock is the root streamer handed to the device. It never ends and counts
// the samples pulled through it, which is the playback position used to
// schedule notes.
type clock struct {
	streamer beep.Streamer
	pos      atomic.Int64
}

func (c *clock) Stream(samples [][2]float64) (n int, ok bool) {
	n, _ = c.streamer.Stream(samples)
	for i := n; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	c.pos.Add(int64(len(samples)))
	return len(samples), true
}

func (c *clock) Err() error { return nil }

// Position returns the number of samples played so far.
func (c *clock) Position() int {
	return int(c.pos.Load())
}
