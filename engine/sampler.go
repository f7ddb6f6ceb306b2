package engine

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/vsariola/gamesound"
)

type (
	// Sampler is a polyphonic sample player channel, the kind of channel used
	// for game sound effects. Every call to Play starts a new voice streaming
	// the clip from the beginning, so overlapping plays are mixed together.
	// Volume, pan and pitch bend act on all voices at once and can be ramped.
	Sampler struct {
		mu      sync.Mutex
		clip    *Clip
		loop    bool
		tuning  float64 // frequency ratio from the tuning in cents
		bend    gamesound.Param
		voices  []*voice
		mixer   beep.Mixer
		strip   strip
		playing bool
	}

	voice struct {
		resampler *beep.Resampler
		done      bool
	}

	SamplerOptions struct {
		// Loop makes every voice repeat the clip until the channel is removed.
		Loop bool
		// Cents tunes the sampler in the range of +/- 2400 cents (100 cents =
		// 1 semitone), independent of the pitch bend.
		Cents int
	}
)

const (
	resamplerQuality = 3
	maxTuningCents   = 2400
)

// NewSampler creates a playing sampler channel with no voices, at full volume,
// centered and at pitch.
func NewSampler(clip *Clip, opts SamplerOptions) *Sampler {
	cents := max(min(opts.Cents, maxTuningCents), -maxTuningCents)
	s := &Sampler{
		clip:    clip,
		loop:    opts.Loop,
		tuning:  math.Pow(2, float64(cents)/1200),
		bend:    gamesound.MakeParam(1),
		playing: true,
	}
	s.strip.init(clip.SampleRate(), &s.mixer, 1)
	return s
}

// Play starts a new voice at the given volume (0.0 to 1.0). The volume is per
// voice, so sounds started from the same sampler can play at different levels;
// the sampler volume still applies on top of it.
func (s *Sampler) Play(volume float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var source beep.Streamer = s.clip.Streamer()
	if s.loop {
		source = &looper{s: s.clip.Streamer(), loop: true}
	}
	v := &voice{resampler: beep.ResampleRatio(resamplerQuality, s.ratio(), source)}
	s.voices = append(s.voices, v)
	s.mixer.Add(&effects.Gain{Streamer: v, Gain: clampF(volume, 0, 1) - 1})
}

// Voices returns the number of voices that have not finished yet.
func (s *Sampler) Voices() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.voices)
}

func (s *Sampler) Clip() *Clip {
	return s.clip
}

func (s *Sampler) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing
}

func (s *Sampler) SetPlaying(playing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = playing
}

// Pan returns the current pan, -1.0 (left) to 1.0 (right).
func (s *Sampler) Pan() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.strip.pan.Value()
}

// SetPan sets the pan instantly, stopping any pan modulation.
func (s *Sampler) SetPan(pan float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.strip.setPan(pan)
}

// PanTo ramps the pan linearly to pan over d.
func (s *Sampler) PanTo(pan float64, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.strip.panTo(pan, d)
}

// Volume returns the current sampler volume.
func (s *Sampler) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.strip.volume.Value()
}

// SetVolume sets the volume instantly, stopping any volume modulation.
func (s *Sampler) SetVolume(volume float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.strip.setVolume(volume)
}

// VolumeTo ramps the volume linearly to volume over d.
func (s *Sampler) VolumeTo(volume float64, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.strip.volumeTo(volume, d, false)
}

// VolumeToAndStop ramps the volume like VolumeTo and clears the playing flag
// when the ramp finishes.
func (s *Sampler) VolumeToAndStop(volume float64, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.strip.volumeTo(volume, d, true)
	if !s.strip.stopAfter {
		s.playing = false
	}
}

// PitchBend returns the current pitch bend, 0.0 (two octaves lower) to 2.0
// (two octaves higher). 1.0 is at pitch.
func (s *Sampler) PitchBend() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bend.Value()
}

// SetPitchBend sets the pitch bend instantly, stopping any bend modulation.
func (s *Sampler) SetPitchBend(bend float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bend.Set(clampF(bend, 0, 2))
}

// PitchBendTo ramps the pitch bend of all playing voices linearly to bend
// over d.
func (s *Sampler) PitchBendTo(bend float64, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bend.RampTo(clampF(bend, 0, 2), s.strip.frames(d))
}

// IsModulating returns true if any of the pan, volume or pitch bend ramps is
// active.
func (s *Sampler) IsModulating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.strip.modulating() || s.bend.Ramping()
}

// BendRatio converts a pitch bend value into a playback speed ratio: 0.5 is one
// octave lower (ratio 0.5), 1.5 one octave higher (ratio 2).
func BendRatio(bend float64) float64 {
	return math.Pow(2, 2*(clampF(bend, 0, 2)-1))
}

func (s *Sampler) ratio() float64 {
	return s.tuning * BendRatio(s.bend.Value())
}

func (s *Sampler) Stream(samples [][2]float64) (n int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for len(samples) > 0 {
		m := min(len(samples), controlBlock)
		r := s.ratio()
		for _, v := range s.voices {
			v.resampler.SetRatio(r)
		}
		_, stop := s.strip.stream(samples[:m])
		if stop {
			s.playing = false
		}
		s.bend.Advance(float64(m))
		samples = samples[m:]
		n += m
	}
	s.voices = pruneVoices(s.voices)
	return n, true
}

func (s *Sampler) Err() error {
	return nil
}

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = v.resampler.Stream(samples)
	// beep.Mixer drops a streamer after its first short read
	if n < len(samples) || !ok {
		v.done = true
	}
	return n, ok
}

func (v *voice) Err() error {
	return v.resampler.Err()
}

func pruneVoices(voices []*voice) []*voice {
	ret := voices[:0]
	for _, v := range voices {
		if !v.done {
			ret = append(ret, v)
		}
	}
	clear(voices[len(ret):])
	return ret
}
