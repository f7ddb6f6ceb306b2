package engine

import "github.com/gopxl/beep/v2"

// looper streams a StreamSeeker, rewinding it when it drains. If loop is false
// the rest of the buffer is filled with silence and end is called once per
// pass. A looper never drains itself; it always returns ok.
type looper struct {
	s    beep.StreamSeeker
	loop bool
	end  func()
}

func (l *looper) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		m, ok := l.s.Stream(samples[n:])
		n += m
		if ok && m > 0 {
			continue
		}
		if err := l.s.Seek(0); err != nil || !l.loop || l.s.Len() == 0 {
			clear(samples[n:])
			if l.end != nil {
				l.end()
			}
			return len(samples), true
		}
	}
	return n, true
}

func (l *looper) Err() error {
	return l.s.Err()
}
