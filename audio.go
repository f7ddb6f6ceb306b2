package gamesound

import "io"

type (
	// AudioBuffer is a buffer of stereo audio samples of variable length, each
	// sample represented by [2]float32. [0] is left channel, [1] is right
	AudioBuffer [][2]float32

	// AudioSource fills the whole buffer with audio. It is called from the
	// audio goroutine of an AudioContext, so it should not block.
	AudioSource func(buf AudioBuffer) error

	// AudioContext represents the low-level audio drivers. There should be at
	// most one AudioContext at a time. The interface is implemented at least by
	// oto.OtoContext, but in future we could also mock it.
	AudioContext interface {
		Play(f AudioSource) CloserWaiter
	}

	// CloserWaiter is a handle to a playing AudioSource. Close stops the
	// playback and Wait blocks until the playback has stopped, returning the
	// error that stopped it, if any.
	CloserWaiter interface {
		io.Closer
		Wait() error
	}
)

// SampleRate is the sample rate of the mixed output, in Hz.
const SampleRate = 44100

// Fill fills the buffer with a stereo value
func (b AudioBuffer) Fill(value [2]float32) {
	for i := range b {
		b[i] = value
	}
}
