package oto

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/vsariola/gamesound"
)

type (
	// OtoContext is the audio output of the system. There should be at most
	// one per process.
	OtoContext struct {
		ctx *oto.Context
	}

	// OtoPlayer is a playing AudioSource. Close stops it; Wait blocks until
	// it has stopped, either because it was closed or because the source
	// returned an error. A source returning io.EOF is a normal end.
	OtoPlayer struct {
		player *oto.Player
		reader *sourceReader
	}

	// sourceReader adapts an AudioSource to the io.Reader oto pulls from.
	sourceReader struct {
		source gamesound.AudioSource
		buf    gamesound.AudioBuffer
		once   sync.Once
		done   chan struct{}
		err    error
	}
)

const otoBufferSize = 20 * time.Millisecond

func NewContext() (*OtoContext, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   gamesound.SampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
		BufferSize:   otoBufferSize,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot create oto context: %w", err)
	}
	<-ready
	return &OtoContext{ctx: ctx}, nil
}

func (c *OtoContext) Play(f gamesound.AudioSource) gamesound.CloserWaiter {
	r := &sourceReader{source: f, done: make(chan struct{})}
	p := c.ctx.NewPlayer(r)
	p.Play()
	return &OtoPlayer{player: p, reader: r}
}

// Suspend pauses all output of the context, e.g. when the window is hidden.
func (c *OtoContext) Suspend() error {
	if err := c.ctx.Suspend(); err != nil {
		return fmt.Errorf("cannot suspend oto context: %w", err)
	}
	return nil
}

func (c *OtoContext) Resume() error {
	if err := c.ctx.Resume(); err != nil {
		return fmt.Errorf("cannot resume oto context: %w", err)
	}
	return nil
}

func (p *OtoPlayer) Close() error {
	p.reader.finish(nil)
	if err := p.player.Close(); err != nil {
		return fmt.Errorf("cannot close oto player: %w", err)
	}
	return nil
}

func (p *OtoPlayer) Wait() error {
	<-p.reader.done
	return p.reader.err
}

func (r *sourceReader) Read(p []byte) (int, error) {
	select {
	case <-r.done:
		return 0, io.EOF
	default:
	}
	frames := len(p) / bytesPerFrame
	if cap(r.buf) < frames {
		r.buf = make(gamesound.AudioBuffer, frames)
	}
	r.buf = r.buf[:frames]
	if err := r.source(r.buf); err != nil {
		if errors.Is(err, io.EOF) {
			err = nil
		}
		r.finish(err)
		return 0, io.EOF
	}
	n := AudioBufferToFloat32LE(r.buf, p)
	clear(p[n:])
	return len(p), nil
}

func (r *sourceReader) finish(err error) {
	r.once.Do(func() {
		r.err = err
		close(r.done)
	})
}
