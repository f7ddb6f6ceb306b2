package engine

import (
	"math"
	"slices"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/viterin/vek/vek32"
	"github.com/vsariola/gamesound"
)

type (
	// Controller owns the set of channels that are mixed into the output. It
	// is itself a beep.Streamer, pulled by the audio output goroutine, and can
	// render directly into a gamesound.AudioBuffer. Channel membership can be
	// changed from any goroutine; channels are mixed in the order they were
	// added.
	Controller struct {
		mu       sync.Mutex
		sr       beep.SampleRate
		channels []Channel
		fading   map[Channel]struct{}
		mix      [][2]float64
		tmp      [][2]float64
		level    Level
		mono     []float32
		sq       []float32
	}

	// Level is the signal level of the last rendered block, per stereo
	// channel, as linear amplitudes.
	Level struct {
		RMS  [2]float32
		Peak [2]float32
	}
)

func NewController(sr beep.SampleRate) *Controller {
	return &Controller{sr: sr, fading: map[Channel]struct{}{}}
}

func (c *Controller) SampleRate() beep.SampleRate {
	return c.sr
}

// AddChannels adds channels to the mix. Channels that are already members are
// ignored, so a channel is never mixed twice.
func (c *Controller) AddChannels(chs ...Channel) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, ch := range chs {
		if ch == nil || slices.Contains(c.channels, ch) {
			continue
		}
		c.channels = append(c.channels, ch)
	}
}

// RemoveChannels removes channels from the mix immediately. Removing a channel
// that is not a member is a no-op.
func (c *Controller) RemoveChannels(chs ...Channel) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remove(chs...)
}

func (c *Controller) remove(chs ...Channel) {
	c.channels = slices.DeleteFunc(c.channels, func(ch Channel) bool {
		return slices.Contains(chs, ch)
	})
	for _, ch := range chs {
		delete(c.fading, ch)
	}
}

// Channels returns a copy of the current channel list.
func (c *Controller) Channels() []Channel {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.channels)
}

// FadeOutAndRemove ramps the volume of the given channels to zero over d and
// removes them when they have stopped. Channels that cannot fade are removed
// immediately.
func (c *Controller) FadeOutAndRemove(d time.Duration, chs ...Channel) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, ch := range chs {
		if !slices.Contains(c.channels, ch) {
			continue
		}
		f, ok := ch.(Fader)
		if !ok || !ch.Playing() {
			c.remove(ch)
			continue
		}
		f.VolumeToAndStop(0, d)
		c.fading[ch] = struct{}{}
	}
}

// Fading returns the number of channels that are fading out but not yet
// removed.
func (c *Controller) Fading() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.fading)
}

// Level returns the level of the most recently rendered block.
func (c *Controller) Level() Level {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.level
}

func (c *Controller) Stream(samples [][2]float64) (n int, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stream(samples)
	return len(samples), true
}

func (c *Controller) Err() error {
	return nil
}

// Render mixes len(buf) frames of all playing channels into buf.
func (c *Controller) Render(buf gamesound.AudioBuffer) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mix = slices.Grow(c.mix[:0], len(buf))[:len(buf)]
	c.stream(c.mix)
	for i, s := range c.mix {
		buf[i] = [2]float32{float32(s[0]), float32(s[1])}
	}
	return nil
}

func (c *Controller) stream(samples [][2]float64) {
	clear(samples)
	c.tmp = slices.Grow(c.tmp[:0], len(samples))[:len(samples)]
	var done []Channel
	for _, ch := range c.channels {
		if !ch.Playing() {
			if _, ok := c.fading[ch]; ok {
				done = append(done, ch)
			}
			continue
		}
		n, _ := ch.Stream(c.tmp)
		for i := range c.tmp[:n] {
			samples[i][0] += c.tmp[i][0]
			samples[i][1] += c.tmp[i][1]
		}
		if _, ok := c.fading[ch]; ok && !ch.Playing() {
			done = append(done, ch)
		}
	}
	if len(done) > 0 {
		c.remove(done...)
	}
	c.measure(samples)
}

func (c *Controller) measure(samples [][2]float64) {
	if len(samples) == 0 {
		return
	}
	c.mono = slices.Grow(c.mono[:0], len(samples))[:len(samples)]
	c.sq = slices.Grow(c.sq[:0], len(samples))[:len(samples)]
	for chn := 0; chn < 2; chn++ {
		for i, s := range samples {
			c.mono[i] = float32(s[chn])
		}
		c.level.RMS[chn] = float32(math.Sqrt(float64(vek32.Mean(vek32.Mul_Into(c.sq, c.mono, c.mono)))))
		vek32.Abs_Inplace(c.mono)
		c.level.Peak[chn] = vek32.Max(c.mono)
	}
}

// Decibels converts a linear amplitude to dBFS, with silence clamped to -120.
func Decibels(amplitude float32) float64 {
	if amplitude <= 1e-6 {
		return -120
	}
	return 20 * math.Log10(float64(amplitude))
}
