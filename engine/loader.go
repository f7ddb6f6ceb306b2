package engine

import (
	"io/fs"

	"github.com/gopxl/beep/v2"
)

// Loader creates channels from assets in a resource bundle, decoded at the
// sample rate of the output. If Cache is set, each asset is decoded only once
// and the channels share the decoded clip.
type Loader struct {
	FS         fs.FS
	SampleRate beep.SampleRate
	Cache      *ClipCache
}

func (l Loader) LoadClip(name, ext string) (*Clip, error) {
	if l.Cache != nil {
		if clip, ok := l.Cache.get(name, ext, l.SampleRate); ok {
			return clip, nil
		}
	}
	clip, err := LoadClip(l.FS, name, ext, l.SampleRate)
	if err != nil {
		return nil, err
	}
	if l.Cache != nil {
		l.Cache.put(name, ext, l.SampleRate, clip)
	}
	return clip, nil
}

func (l Loader) LoadFilePlayer(name, ext string) (*FilePlayer, error) {
	clip, err := l.LoadClip(name, ext)
	if err != nil {
		return nil, err
	}
	return NewFilePlayer(clip), nil
}

func (l Loader) LoadSampler(name, ext string, opts SamplerOptions) (*Sampler, error) {
	clip, err := l.LoadClip(name, ext)
	if err != nil {
		return nil, err
	}
	return NewSampler(clip, opts), nil
}
