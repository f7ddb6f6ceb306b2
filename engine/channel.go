package engine

import (
	"time"

	"github.com/gopxl/beep/v2"
)

type (
	// Channel is an audio source that can be added to a Controller. The
	// controller calls Stream from the audio goroutine; the other methods may
	// be called from any goroutine. A channel that is not playing is skipped
	// by the controller and its parameter ramps do not advance.
	Channel interface {
		beep.Streamer
		Playing() bool
		SetPlaying(playing bool)
	}

	// Fader is a channel whose volume can be ramped down, stopping the channel
	// once the ramp ends. Controller.FadeOutAndRemove uses it for graceful
	// removal.
	Fader interface {
		Channel
		VolumeToAndStop(volume float64, d time.Duration)
	}
)
