// Package audio synthesises the Neon Dash soundtrack and sound effects.
// Everything is generated procedurally with beep streamers; there are no
// sample files.
package audio

import (
	"math"
	"math/rand"

	"github.com/gopxl/beep"
)

// Wave defines oscillator wave shapes.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// ramp moves exponentially from one value to another over n samples and
// holds the final value afterwards.
type ramp struct {
	from, to float64
	n        int
}

func constant(v float64) ramp {
	return ramp{from: v, to: v}
}

func (r ramp) at(i int) float64 {
	if r.n <= 0 || i >= r.n {
		return r.to
	}
	t := float64(i) / float64(r.n)
	if r.from <= 0 || r.to <= 0 {
		return r.from + (r.to-r.from)*t
	}
	return r.from * math.Pow(r.to/r.from, t)
}

type filterKind int

const (
	filterNone filterKind = iota
	filterLowpass
	filterHighpass
)

// voice is a single oscillator with frequency, gain and filter envelopes.
// It stops after length samples.
type voice struct {
	wave   Wave
	rate   beep.SampleRate
	freq   ramp
	gain   ramp
	filter filterKind
	cutoff ramp
	length int
	rng    *rand.Rand

	pos   int
	phase float64
	lp    float64
}

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if v.pos >= v.length {
			return i, i > 0
		}

		x := v.filtered(v.oscillate())
		s := x * v.gain.at(v.pos)
		samples[i][0] = s
		samples[i][1] = s

		v.phase += v.freq.at(v.pos) / float64(v.rate)
		v.phase -= math.Floor(v.phase)
		v.pos++
	}
	return len(samples), true
}

func (v *voice) Err() error { return nil }

func (v *voice) oscillate() float64 {
	switch v.wave {
	case WaveSquare:
		if v.phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (v.phase - 0.5)
	case WaveNoise:
		return v.rng.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * v.phase)
	}
}

// filtered runs x through a one-pole filter with the current cutoff.
func (v *voice) filtered(x float64) float64 {
	if v.filter == filterNone {
		return x
	}
	alpha := 1 - math.Exp(-2*math.Pi*v.cutoff.at(v.pos)/float64(v.rate))
	v.lp += alpha * (x - v.lp)
	if v.filter == filterHighpass {
		return x - v.lp
	}
	return v.lp
}

// fader smooths gain changes with an exponential approach towards target,
// time constant tau.
type fader struct {
	streamer beep.Streamer
	current  float64
	target   float64
	coef     float64
}

func newFader(s beep.Streamer, gain float64, tau float64, rate beep.SampleRate) *fader {
	return &fader{
		streamer: s,
		current:  gain,
		target:   gain,
		coef:     1 - math.Exp(-1/(tau*float64(rate))),
	}
}

func (f *fader) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		f.current += (f.target - f.current) * f.coef
		samples[i][0] *= f.current
		samples[i][1] *= f.current
	}
	return n, ok
}

func (f *fader) Err() error { return f.streamer.Err() }
