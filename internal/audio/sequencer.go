package audio

import (
	"github.com/gopxl/beep"
)

// hit is a pattern step due at an absolute sample position.
type hit struct {
	Step int
	At   int
}

// sequencer walks the sixteenth-note grid. Step times are kept as floats so
// rounding does not drift the tempo.
type sequencer struct {
	stepLen float64
	next    float64
	step    int
}

func newSequencer(tempo float64, rate beep.SampleRate, start int) *sequencer {
	return &sequencer{
		stepLen: float64(rate) * 60 / tempo / 4,
		next:    float64(start),
	}
}

// due returns every step starting before until and advances past them.
func (s *sequencer) due(until int) []hit {
	var hits []hit
	for s.next < float64(until) {
		hits = append(hits, hit{Step: s.step, At: int(s.next)})
		s.next += s.stepLen
		s.step++
	}
	return hits
}
