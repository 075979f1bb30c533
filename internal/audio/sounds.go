package audio

import (
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// BassLine is the arpeggio played on every eighth note, in Hz.
var BassLine = []float64{65.41, 65.41, 77.78, 65.41, 58.27, 58.27, 48.00, 58.27}

// Part is one instrument of the drum-and-bass pattern.
type Part int

const (
	PartBass Part = iota
	PartKick
	PartSnare
)

func (p Part) String() string {
	switch p {
	case PartBass:
		return "bass"
	case PartKick:
		return "kick"
	case PartSnare:
		return "snare"
	default:
		return "unknown"
	}
}

// PartsAt returns the parts triggered on a sixteenth-note step.
func PartsAt(step int) []Part {
	var parts []Part
	if step%2 == 0 {
		parts = append(parts, PartBass)
	}
	if step%4 == 0 {
		parts = append(parts, PartKick)
	}
	if (step+4)%8 == 0 {
		parts = append(parts, PartSnare)
	}
	return parts
}

// BassFreq returns the bass note for a step.
func BassFreq(step int) float64 {
	return BassLine[(step/2)%len(BassLine)]
}

// JumpSound is a short rising square blip.
func JumpSound(rate beep.SampleRate) beep.Streamer {
	n := rate.N(100 * time.Millisecond)
	return &voice{
		wave:   WaveSquare,
		rate:   rate,
		freq:   ramp{from: 150, to: 600, n: n},
		gain:   ramp{from: 0.1, to: 0.01, n: n},
		length: n,
	}
}

// CrashSound is a falling sawtooth growl.
func CrashSound(rate beep.SampleRate) beep.Streamer {
	n := rate.N(500 * time.Millisecond)
	return &voice{
		wave:   WaveSaw,
		rate:   rate,
		freq:   ramp{from: 100, to: 10, n: n},
		gain:   ramp{from: 0.3, to: 0.01, n: n},
		length: n,
	}
}

// BassNote is a plucked sawtooth through a closing lowpass.
func BassNote(rate beep.SampleRate, freq float64) beep.Streamer {
	n := rate.N(200 * time.Millisecond)
	return &voice{
		wave:   WaveSaw,
		rate:   rate,
		freq:   constant(freq),
		gain:   ramp{from: 0.3, to: 0.01, n: n},
		filter: filterLowpass,
		cutoff: ramp{from: 500, to: 100, n: n},
		length: n,
	}
}

// Kick is a sine dropping from 150 Hz to silence.
func Kick(rate beep.SampleRate) beep.Streamer {
	n := rate.N(500 * time.Millisecond)
	return &voice{
		wave:   WaveSine,
		rate:   rate,
		freq:   ramp{from: 150, to: 0.01, n: n},
		gain:   ramp{from: 0.7, to: 0.01, n: n},
		length: n,
	}
}

// Snare is a burst of high-passed noise.
func Snare(rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	n := rate.N(200 * time.Millisecond)
	return &voice{
		wave:   WaveNoise,
		rate:   rate,
		freq:   constant(0),
		gain:   ramp{from: 0.4, to: 0.01, n: n},
		filter: filterHighpass,
		cutoff: constant(1000),
		length: n,
		rng:    rng,
	}
}
