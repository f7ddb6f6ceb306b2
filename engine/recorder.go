package engine

import (
	"sync"

	"github.com/vsariola/gamesound"
)

// Recorder keeps the last frames written to it, so that the output of the
// last minute or so can be saved on demand.
type Recorder struct {
	mu     sync.Mutex
	buf    gamesound.AudioBuffer
	pos    int
	filled bool
}

func NewRecorder(frames int) *Recorder {
	return &Recorder{buf: make(gamesound.AudioBuffer, max(frames, 1))}
}

// Write appends buf to the recording, overwriting the oldest frames when full.
func (r *Recorder) Write(buf gamesound.AudioBuffer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(buf) >= len(r.buf) {
		copy(r.buf, buf[len(buf)-len(r.buf):])
		r.pos = 0
		r.filled = true
		return
	}
	n := copy(r.buf[r.pos:], buf)
	if n < len(buf) {
		copy(r.buf, buf[n:])
		r.filled = true
	}
	r.pos = (r.pos + len(buf)) % len(r.buf)
	if r.pos == 0 {
		r.filled = true
	}
}

// Snapshot returns a copy of the recorded frames, oldest first.
func (r *Recorder) Snapshot() gamesound.AudioBuffer {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.filled {
		return append(gamesound.AudioBuffer(nil), r.buf[:r.pos]...)
	}
	ret := make(gamesound.AudioBuffer, 0, len(r.buf))
	ret = append(ret, r.buf[r.pos:]...)
	return append(ret, r.buf[:r.pos]...)
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pos = 0
	r.filled = false
}
