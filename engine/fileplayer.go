package engine

import (
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
)

// FilePlayer plays a single clip from start to end, optionally looping. It is
// the channel type used for background music. A player that reaches the end
// without looping stops itself and rewinds, so Play or SetPlaying(true) starts
// it from the beginning again.
type FilePlayer struct {
	mu     sync.Mutex
	clip   *Clip
	source beep.StreamSeeker
	looper looper
	ctrl   beep.Ctrl
	strip  strip
}

// NewFilePlayer creates a playing, non-looping player at full volume.
func NewFilePlayer(clip *Clip) *FilePlayer {
	p := &FilePlayer{clip: clip, source: clip.Streamer()}
	p.looper = looper{s: p.source, end: p.ended}
	p.ctrl = beep.Ctrl{Streamer: &p.looper}
	p.strip.init(clip.SampleRate(), &p.ctrl, 1)
	return p
}

// ended is called by the looper from within Stream, with the lock held.
func (p *FilePlayer) ended() {
	p.ctrl.Paused = true
}

func (p *FilePlayer) Clip() *Clip {
	return p.clip
}

func (p *FilePlayer) Loop() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.looper.loop
}

func (p *FilePlayer) SetLoop(loop bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.looper.loop = loop
}

// Play rewinds the player and starts it at the given volume.
func (p *FilePlayer) Play(volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.source.Seek(0)
	p.strip.setVolume(volume)
	p.ctrl.Paused = false
}

// Position returns the current playback position within the clip.
func (p *FilePlayer) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.clip.SampleRate().D(p.source.Position())
}

func (p *FilePlayer) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.ctrl.Paused
}

func (p *FilePlayer) SetPlaying(playing bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ctrl.Paused = !playing
}

func (p *FilePlayer) Pan() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.strip.pan.Value()
}

func (p *FilePlayer) SetPan(pan float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.strip.setPan(pan)
}

func (p *FilePlayer) PanTo(pan float64, d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.strip.panTo(pan, d)
}

func (p *FilePlayer) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.strip.volume.Value()
}

func (p *FilePlayer) SetVolume(volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.strip.setVolume(volume)
}

func (p *FilePlayer) VolumeTo(volume float64, d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.strip.volumeTo(volume, d, false)
}

// VolumeToAndStop ramps the volume and pauses the player when the ramp ends.
func (p *FilePlayer) VolumeToAndStop(volume float64, d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.strip.volumeTo(volume, d, true)
	if !p.strip.stopAfter {
		p.ctrl.Paused = true
	}
}

func (p *FilePlayer) IsModulating() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.strip.modulating()
}

func (p *FilePlayer) Stream(samples [][2]float64) (n int, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for len(samples) > 0 {
		m := min(len(samples), controlBlock)
		if _, stop := p.strip.stream(samples[:m]); stop {
			p.ctrl.Paused = true
		}
		samples = samples[m:]
		n += m
	}
	return n, true
}

func (p *FilePlayer) Err() error {
	return p.source.Err()
}
