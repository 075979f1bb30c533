package neondash

// Audio is the sound collaborator driven by the state machine and input.
// Implementations must return immediately; an unavailable device is a no-op.
type Audio interface {
	StartMusic()
	StopMusic()
	ToggleMute(muted bool)
	PlayJumpSound()
	PlayCrashSound()
}

// NopAudio discards every call.
type NopAudio struct{}

func (NopAudio) StartMusic() {}
func (NopAudio) StopMusic() {}
func (NopAudio) ToggleMute(bool) {}
func (NopAudio) PlayJumpSound() {}
func (NopAudio) PlayCrashSound() {}

// ScoreSink receives every score change, including the reset to zero.
type ScoreSink interface {
	ScoreChanged(score int)
}

// ScoreFunc adapts a plain function to ScoreSink.
type ScoreFunc func(score int)

// ScoreChanged calls f(score).
func (f ScoreFunc) ScoreChanged(score int) {
	f(score)
}

type nopSink struct{}

func (nopSink) ScoreChanged(int) {}
