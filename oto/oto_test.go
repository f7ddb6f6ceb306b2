package oto

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/vsariola/gamesound"
)

func TestAudioBufferToFloat32LE(t *testing.T) {
	buf := gamesound.AudioBuffer{{0.5, -0.25}, {1, 0}}
	out := make([]byte, 16)
	if n := AudioBufferToFloat32LE(buf, out); n != 16 {
		t.Fatalf("wrote %d bytes, want 16", n)
	}
	want := []float32{0.5, -0.25, 1, 0}
	for i, w := range want {
		got := math.Float32frombits(binary.LittleEndian.Uint32(out[i*4:]))
		if got != w {
			t.Errorf("sample %d: got %v, want %v", i, got, w)
		}
	}
}

func TestSourceReader(t *testing.T) {
	calls := 0
	r := &sourceReader{
		source: func(buf gamesound.AudioBuffer) error {
			calls++
			if calls > 2 {
				return io.EOF
			}
			buf.Fill([2]float32{0.5, 0.5})
			return nil
		},
		done: make(chan struct{}),
	}
	p := make([]byte, 8*10+3) // not a whole number of frames
	for i := 0; i < 2; i++ {
		n, err := r.Read(p)
		if err != nil || n != len(p) {
			t.Fatalf("Read: got (%d, %v), want (%d, nil)", n, err, len(p))
		}
		if got := math.Float32frombits(binary.LittleEndian.Uint32(p[72:])); got != 0.5 {
			t.Errorf("last frame: got %v, want 0.5", got)
		}
		if p[len(p)-1] != 0 {
			t.Error("partial frame at the end should be silent")
		}
	}
	if _, err := r.Read(p); err != io.EOF {
		t.Fatalf("Read after the source ended: got %v, want io.EOF", err)
	}
	select {
	case <-r.done:
	default:
		t.Fatal("reader should be done after the source ended")
	}
	if r.err != nil {
		t.Errorf("io.EOF from the source should end without error, got %v", r.err)
	}
}

func TestSourceReaderError(t *testing.T) {
	boom := errors.New("boom")
	r := &sourceReader{
		source: func(buf gamesound.AudioBuffer) error { return boom },
		done:   make(chan struct{}),
	}
	r.Read(make([]byte, 64))
	if !errors.Is(r.err, boom) {
		t.Errorf("got %v, want %v", r.err, boom)
	}
	r.finish(nil)
	if !errors.Is(r.err, boom) {
		t.Error("finish should only record the first error")
	}
}
