package neondash

import (
	"github.com/vovakirdan/neon-dash/internal/config"
)

// seqRand replays fixed draws, then returns 0 forever.
type seqRand struct {
	vals []float64
	used int
}

func newSeqRand(vals ...float64) *seqRand {
	return &seqRand{vals: vals}
}

func (s *seqRand) Float64() float64 {
	if s.used >= len(s.vals) {
		s.used++
		return 0
	}
	v := s.vals[s.used]
	s.used++
	return v
}

// recordingAudio counts every call it receives.
type recordingAudio struct {
	starts, stops, jumps, crashes int
	muted                         []bool
}

func (a *recordingAudio) StartMusic() { a.starts++ }
func (a *recordingAudio) StopMusic() { a.stops++ }
func (a *recordingAudio) ToggleMute(m bool) { a.muted = append(a.muted, m) }
func (a *recordingAudio) PlayJumpSound() { a.jumps++ }
func (a *recordingAudio) PlayCrashSound() { a.crashes++ }
func (a *recordingAudio) total() int { return a.starts + a.stops + a.jumps + a.crashes + len(a.muted) }

// scoreLog records every pushed score.
type scoreLog struct {
	scores []int
}

func (s *scoreLog) ScoreChanged(score int) {
	s.scores = append(s.scores, score)
}

func (s *scoreLog) last() int {
	if len(s.scores) == 0 {
		return -1
	}
	return s.scores[len(s.scores)-1]
}

// quietConfig returns the defaults with no trail, so particle lists only
// change on a crash.
func quietConfig() config.NeonConfig {
	cfg := config.DefaultNeonConfig()
	cfg.Particles.Trail = false
	return cfg
}

// newTestGame builds a game with scripted spawn draws and recording collaborators.
func newTestGame(cfg config.NeonConfig, spawn ...float64) (*Game, *recordingAudio, *scoreLog) {
	audio := &recordingAudio{}
	scores := &scoreLog{}
	g := New(cfg, Options{
		Audio:       audio,
		Scores:      scores,
		SpawnRand:   newSeqRand(spawn...),
		EffectsRand: NewRand(7),
	})
	return g, audio, scores
}

// obstacleAt builds a ground spike-sized obstacle at x.
func obstacleAt(x float64) Obstacle {
	return Obstacle{ID: 1, Kind: KindSpike, X: x, Y: 580, Width: 30, Height: 40}
}
