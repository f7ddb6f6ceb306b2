package scene

import (
	"fmt"
	"log"
	"time"

	"github.com/vsariola/gamesound/engine"
)

type (
	// TrackState is either Unloaded or Loaded.
	TrackState interface {
		isTrackState()
	}

	Unloaded struct{}

	Loaded struct {
		Player *engine.FilePlayer
	}

	// Mixer is the part of the audio controller the scene uses.
	// *engine.Controller implements it.
	Mixer interface {
		AddChannels(chs ...engine.Channel)
		RemoveChannels(chs ...engine.Channel)
		Channels() []engine.Channel
		FadeOutAndRemove(d time.Duration, chs ...engine.Channel)
	}

	// Loader creates channels from named assets. engine.Loader implements it.
	Loader interface {
		LoadFilePlayer(name, ext string) (*engine.FilePlayer, error)
		LoadSampler(name, ext string, opts engine.SamplerOptions) (*engine.Sampler, error)
	}

	// BackgroundTrack toggles a looping music track on and off. The player is
	// created when the track is switched on and thrown away when it is
	// switched off, so there is never more than one of them.
	BackgroundTrack struct {
		Asset  Asset
		Volume float64
		state  TrackState
	}
)

func (Unloaded) isTrackState() {}
func (Loaded) isTrackState()   {}

// State returns the current state; the zero value is Unloaded.
func (b *BackgroundTrack) State() TrackState {
	if b.state == nil {
		return Unloaded{}
	}
	return b.state
}

// Player returns the current player, or nil if the track is not loaded.
func (b *BackgroundTrack) Player() *engine.FilePlayer {
	if l, ok := b.state.(Loaded); ok {
		return l.Player
	}
	return nil
}

// Toggle switches the track. When switching on fails to load the asset, the
// track stays unloaded and the error is returned.
func (b *BackgroundTrack) Toggle(m Mixer, l Loader) error {
	switch s := b.State().(type) {
	case Loaded:
		m.RemoveChannels(s.Player)
		b.state = Unloaded{}
	case Unloaded:
		p, err := l.LoadFilePlayer(b.Asset.Name, b.Asset.Ext)
		if err != nil {
			log.Printf("could not load background track: %v", err)
			return fmt.Errorf("background track: %w", err)
		}
		p.SetLoop(true)
		p.SetVolume(b.Volume)
		m.AddChannels(p)
		b.state = Loaded{Player: p}
	}
	return nil
}
