package engine

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/vsariola/gamesound"
)

// controlBlock is the number of frames rendered between parameter updates.
// Ramps are linear per block; at 44.1 kHz a block is about 1.5 ms.
const controlBlock = 64

// strip is the volume and pan stage shared by all channel types. The source is
// wrapped by a gain and a balance effect, whose amounts are updated from the
// ramped params at the start of every control block.
type strip struct {
	sr        beep.SampleRate
	volume    gamesound.Param
	pan       gamesound.Param
	gain      effects.Gain
	balance   effects.Pan
	stopAfter bool // clear the playing flag when the current volume ramp ends
}

func (s *strip) init(sr beep.SampleRate, source beep.Streamer, volume float64) {
	s.sr = sr
	s.volume = gamesound.MakeParam(volume)
	s.pan = gamesound.MakeParam(0)
	s.gain = effects.Gain{Streamer: source}
	s.balance = effects.Pan{Streamer: &s.gain}
}

func (s *strip) frames(d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(s.sr.N(d))
}

func (s *strip) setVolume(v float64) {
	s.volume.Set(math.Max(v, 0))
	s.stopAfter = false
}

func (s *strip) volumeTo(v float64, d time.Duration, stopAfter bool) {
	s.volume.RampTo(math.Max(v, 0), s.frames(d))
	s.stopAfter = stopAfter && s.volume.Ramping()
}

func (s *strip) setPan(v float64) {
	s.pan.Set(clampF(v, -1, 1))
}

func (s *strip) panTo(v float64, d time.Duration) {
	s.pan.RampTo(clampF(v, -1, 1), s.frames(d))
}

func (s *strip) modulating() bool {
	return s.volume.Ramping() || s.pan.Ramping()
}

// stream renders one control block of at most controlBlock frames and then
// advances the params by the rendered amount. It returns true if a volume ramp
// with stopAfter set finished during the block.
func (s *strip) stream(samples [][2]float64) (n int, stop bool) {
	s.gain.Gain = s.volume.Value() - 1
	s.balance.Pan = s.pan.Value()
	n, _ = s.balance.Stream(samples)
	if n < len(samples) {
		clear(samples[n:])
	}
	if s.volume.Advance(float64(len(samples))) && s.stopAfter {
		s.stopAfter = false
		stop = true
	}
	s.pan.Advance(float64(len(samples)))
	return len(samples), stop
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
