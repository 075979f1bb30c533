package audio

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"

	"github.com/vovakirdan/neon-dash/internal/config"
)

// fakeOutput stands in for the speaker. Tests pull samples by hand.
type fakeOutput struct {
	mu      sync.Mutex
	initErr error
	inits   int
	root    beep.Streamer
}

func (f *fakeOutput) Init(beep.SampleRate, int) error {
	f.inits++
	return f.initErr
}

func (f *fakeOutput) Play(s beep.Streamer) { f.root = s }
func (f *fakeOutput) Lock() { f.mu.Lock() }
func (f *fakeOutput) Unlock() { f.mu.Unlock() }

// pull streams n samples through the device root and returns the left channel.
func (f *fakeOutput) pull(n int) []float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	buf := make([][2]float64, n)
	f.root.Stream(buf)
	out := make([]float64, n)
	for i := range buf {
		out[i] = buf[i][0]
	}
	return out
}

func mixerLen(m *Manager, f *fakeOutput) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return m.mixer.Len()
}

func newTestManager(t *testing.T) (*Manager, *fakeOutput) {
	t.Helper()
	out := &fakeOutput{}
	m := NewManager(config.DefaultNeonConfig().Audio, out, nil)
	t.Cleanup(m.Close)
	return m, out
}

func TestManagerDeviceFailure(t *testing.T) {
	var buf bytes.Buffer
	out := &fakeOutput{initErr: errors.New("no device")}
	m := NewManager(config.DefaultNeonConfig().Audio, out, log.New(&buf))
	defer m.Close()

	m.StartMusic()
	m.PlayJumpSound()
	m.PlayCrashSound()
	m.ToggleMute(true)
	m.StopMusic()

	if out.inits != 1 {
		t.Errorf("device opened %d times, expected once", out.inits)
	}
	if m.Enabled() {
		t.Error("manager should disable itself")
	}
	if m.Playing() {
		t.Error("music should not be playing")
	}
	if n := strings.Count(buf.String(), "audio device unavailable"); n != 1 {
		t.Errorf("expected one warning, got %d:\n%s", n, buf.String())
	}
	if err := m.Init(); !errors.Is(err, ErrDisabled) {
		t.Errorf("Init() after failure = %v, expected ErrDisabled", err)
	}
}

func TestManagerDisabledByConfig(t *testing.T) {
	cfg := config.DefaultNeonConfig().Audio
	cfg.Enabled = false
	out := &fakeOutput{}
	m := NewManager(cfg, out, nil)

	m.StartMusic()
	m.PlayJumpSound()
	if out.inits != 0 {
		t.Error("disabled manager should never open the device")
	}
	if m.Enabled() {
		t.Error("Enabled() should be false")
	}
}

func TestManagerEffects(t *testing.T) {
	m, out := newTestManager(t)

	m.PlayJumpSound()
	if n := mixerLen(m, out); n != 1 {
		t.Fatalf("mixer has %d streamers, expected 1", n)
	}

	loud := false
	for _, s := range out.pull(1024) {
		if s != 0 {
			loud = true
			break
		}
	}
	if !loud {
		t.Error("jump sound should be audible")
	}

	out.pull(testRate.N(200 * time.Millisecond))
	if n := mixerLen(m, out); n != 0 {
		t.Errorf("finished sound still on the mixer: %d", n)
	}
}

func TestManagerMusic(t *testing.T) {
	m, out := newTestManager(t)

	m.StartMusic()
	m.StartMusic()
	if !m.Playing() {
		t.Fatal("music should be playing")
	}

	deadline := time.Now().Add(2 * time.Second)
	for mixerLen(m, out) == 0 {
		if time.Now().After(deadline) {
			t.Fatal("scheduler never queued a note")
		}
		out.pull(256)
		time.Sleep(5 * time.Millisecond)
	}

	m.StopMusic()
	if m.Playing() {
		t.Fatal("music should be stopped")
	}

	// Queued notes play out, then nothing new arrives.
	out.pull(testRate.N(time.Second))
	time.Sleep(100 * time.Millisecond)
	out.pull(testRate.N(100 * time.Millisecond))
	if n := mixerLen(m, out); n != 0 {
		t.Errorf("notes queued after StopMusic: %d", n)
	}
}

func TestManagerMute(t *testing.T) {
	m, out := newTestManager(t)

	m.ToggleMute(true)
	if !m.Muted() {
		t.Error("Muted() should be true")
	}
	m.PlayCrashSound()

	for i, s := range out.pull(1024) {
		if s != 0 {
			t.Fatalf("muted output sample %d = %g", i, s)
		}
	}

	m.ToggleMute(false)
	if m.Muted() || m.fader.target != 1 {
		t.Error("unmute should restore the master gain")
	}
}

func TestManagerClose(t *testing.T) {
	m, out := newTestManager(t)

	m.StartMusic()
	m.PlayCrashSound()
	m.Close()
	m.Close()

	if m.Playing() {
		t.Error("Close should stop the music")
	}
	if n := mixerLen(m, out); n != 0 {
		t.Errorf("Close should clear the mixer, %d left", n)
	}

	m.StartMusic()
	m.PlayJumpSound()
	if m.Playing() || mixerLen(m, out) != 0 {
		t.Error("calls after Close should do nothing")
	}
}
