// Package device connects the audio manager to the system speaker.
// It lives apart from the audio package so tests never open a device.
package device

import (
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Speaker is the system audio output backed by beep's speaker package.
type Speaker struct{}

// Init opens the default output device.
func (Speaker) Init(rate beep.SampleRate, bufferSize int) error {
	return speaker.Init(rate, bufferSize)
}

// Play starts streaming s to the device.
func (Speaker) Play(s beep.Streamer) {
	speaker.Play(s)
}

// Lock blocks the playback goroutine.
func (Speaker) Lock() {
	speaker.Lock()
}

// Unlock resumes the playback goroutine.
func (Speaker) Unlock() {
	speaker.Unlock()
}
