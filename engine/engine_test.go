package engine_test

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/stretchr/testify/require"
	"github.com/vsariola/gamesound"
	"github.com/vsariola/gamesound/engine"
)

const sr = beep.SampleRate(gamesound.SampleRate)

// dcWav returns a 16-bit stereo WAV file with a constant value in both
// channels.
func dcWav(t *testing.T, frames int, value float32, sampleRate int) []byte {
	t.Helper()
	buf := make(gamesound.AudioBuffer, frames)
	buf.Fill([2]float32{value, value})
	data, err := buf.Wav(true, sampleRate)
	require.NoError(t, err)
	return data
}

func testFS(t *testing.T) fstest.MapFS {
	return fstest.MapFS{
		"dc.wav":     {Data: dcWav(t, 1000, 0.5, gamesound.SampleRate)},
		"short.wav":  {Data: dcWav(t, 100, 0.5, gamesound.SampleRate)},
		"half.wav":   {Data: dcWav(t, 1000, 0.5, gamesound.SampleRate/2)},
		"broken.wav": {Data: []byte("RIFF....not really a wav")},
	}
}

func render(c *engine.Controller, frames int) [][2]float64 {
	buf := make([][2]float64, frames)
	c.Stream(buf)
	return buf
}

func TestLoadClip(t *testing.T) {
	fsys := testFS(t)
	clip, err := engine.LoadClip(fsys, "dc", "wav", sr)
	require.NoError(t, err)
	require.Equal(t, 1000, clip.Len())
	require.Equal(t, sr, clip.SampleRate())
	require.Equal(t, "dc", clip.Name)

	clip, err = engine.LoadClip(fsys, "half", ".WAV", sr)
	require.NoError(t, err, "extension should be case insensitive and may have a dot")
	require.InDelta(t, 2000, clip.Len(), 8, "22050 Hz asset should be resampled to 44100 Hz")
}

func TestLoadClipErrors(t *testing.T) {
	fsys := testFS(t)
	_, err := engine.LoadClip(fsys, "dc", "aiff", sr)
	require.Error(t, err)
	_, err = engine.LoadClip(fsys, "missing", "wav", sr)
	require.Error(t, err)
	_, err = engine.LoadClip(fsys, "broken", "wav", sr)
	require.Error(t, err)
}

func TestLoadClipUnsupportedFormat(t *testing.T) {
	fsys := fstest.MapFS{"dc.aiff": {Data: dcWav(t, 10, 0.5, gamesound.SampleRate)}}
	_, err := engine.LoadClip(fsys, "dc", "aiff", sr)
	require.ErrorIs(t, err, engine.ErrUnsupportedFormat)
}

func TestSamplerPlay(t *testing.T) {
	s, err := engine.Loader{FS: testFS(t), SampleRate: sr}.LoadSampler("dc", "wav", engine.SamplerOptions{})
	require.NoError(t, err)
	c := engine.NewController(sr)
	c.AddChannels(s)
	out := render(c, 100)
	require.Equal(t, [2]float64{0, 0}, out[50], "sampler should be silent before Play")
	s.Play(1)
	out = render(c, 500)
	require.InDelta(t, 0.5, out[250][0], 1e-3)
	require.InDelta(t, 0.5, out[250][1], 1e-3)
	s.Play(0.5)
	out = render(c, 100)
	require.InDelta(t, 0.75, out[50][0], 1e-3, "overlapping voices should be mixed with their own volume")
	require.Equal(t, 2, s.Voices())
	render(c, 1000)
	require.Equal(t, 0, s.Voices(), "finished voices should be removed")
}

func TestSamplerPan(t *testing.T) {
	s, err := engine.Loader{FS: testFS(t), SampleRate: sr}.LoadSampler("dc", "wav", engine.SamplerOptions{})
	require.NoError(t, err)
	c := engine.NewController(sr)
	c.AddChannels(s)
	s.SetPan(-1)
	s.Play(1)
	out := render(c, 500)
	require.InDelta(t, 1.0, out[250][0], 1e-3)
	require.InDelta(t, 0.0, out[250][1], 1e-3)
	s.SetPan(5)
	require.Equal(t, 1.0, s.Pan(), "pan should be clamped")
}

func TestSamplerRamps(t *testing.T) {
	s, err := engine.Loader{FS: testFS(t), SampleRate: sr}.LoadSampler("dc", "wav", engine.SamplerOptions{Loop: true})
	require.NoError(t, err)
	c := engine.NewController(sr)
	c.AddChannels(s)
	s.SetVolume(0)
	s.VolumeTo(1, 100*time.Millisecond)
	s.PanTo(1, 50*time.Millisecond)
	s.PitchBendTo(1.1, 200*time.Millisecond)
	require.True(t, s.IsModulating())
	render(c, sr.N(50*time.Millisecond))
	require.InDelta(t, 0.5, s.Volume(), 0.01)
	require.Equal(t, 1.0, s.Pan())
	render(c, sr.N(50*time.Millisecond))
	require.Equal(t, 1.0, s.Volume())
	require.InDelta(t, 1.05, s.PitchBend(), 0.01)
	require.True(t, s.IsModulating())
	s.SetPitchBend(1)
	require.False(t, s.IsModulating(), "setting a param should stop its ramp")
	render(c, 1000)
	require.Equal(t, 1.0, s.PitchBend())
}

func TestSamplerRampsPauseWhenNotPlaying(t *testing.T) {
	s, err := engine.Loader{FS: testFS(t), SampleRate: sr}.LoadSampler("dc", "wav", engine.SamplerOptions{})
	require.NoError(t, err)
	c := engine.NewController(sr)
	c.AddChannels(s)
	s.SetVolume(0)
	s.VolumeTo(1, 10*time.Millisecond)
	s.SetPlaying(false)
	render(c, 1000)
	require.Equal(t, 0.0, s.Volume())
	s.SetPlaying(true)
	render(c, 1000)
	require.Equal(t, 1.0, s.Volume())
}

func TestSamplerVolumeToAndStop(t *testing.T) {
	s, err := engine.Loader{FS: testFS(t), SampleRate: sr}.LoadSampler("dc", "wav", engine.SamplerOptions{})
	require.NoError(t, err)
	c := engine.NewController(sr)
	c.AddChannels(s)
	s.VolumeToAndStop(0, 10*time.Millisecond)
	render(c, 200)
	require.True(t, s.Playing())
	render(c, 400)
	require.False(t, s.Playing())
	require.Equal(t, 0.0, s.Volume())
	s.VolumeToAndStop(0, 0)
	require.False(t, s.Playing())
}

func TestSamplerTuning(t *testing.T) {
	fsys := testFS(t)
	for _, c := range []struct {
		cents  int
		voices int
	}{{0, 1}, {1200, 0}} {
		s, err := engine.Loader{FS: fsys, SampleRate: sr}.LoadSampler("dc", "wav", engine.SamplerOptions{Cents: c.cents})
		require.NoError(t, err)
		ctrl := engine.NewController(sr)
		ctrl.AddChannels(s)
		s.Play(1)
		render(ctrl, 800)
		require.Equal(t, c.voices, s.Voices(), "cents %d", c.cents)
	}
}

func TestSamplerForgetsFinishedVoices(t *testing.T) {
	s, err := engine.Loader{FS: testFS(t), SampleRate: sr}.LoadSampler("short", "wav", engine.SamplerOptions{})
	require.NoError(t, err)
	c := engine.NewController(sr)
	c.AddChannels(s)
	for range 50 {
		s.Play(1)
		render(c, gamesound.SampleRate/10)
	}
	require.Equal(t, 0, s.Voices())
}

func TestBendRatio(t *testing.T) {
	for _, c := range []struct{ bend, ratio float64 }{
		{1, 1}, {0.5, 0.5}, {1.5, 2}, {0, 0.25}, {2, 4}, {-3, 0.25}, {7, 4},
	} {
		require.InDelta(t, c.ratio, engine.BendRatio(c.bend), 1e-12, "bend %v", c.bend)
	}
}

func TestFilePlayer(t *testing.T) {
	p, err := engine.Loader{FS: testFS(t), SampleRate: sr}.LoadFilePlayer("short", "wav")
	require.NoError(t, err)
	c := engine.NewController(sr)
	c.AddChannels(p)
	out := render(c, 300)
	require.InDelta(t, 0.5, out[50][0], 1e-3)
	require.Equal(t, [2]float64{0, 0}, out[200])
	require.False(t, p.Playing(), "player should stop at the end of a non-looping clip")
	require.Equal(t, time.Duration(0), p.Position(), "player should rewind when it stops")

	p.SetLoop(true)
	p.Play(0.5)
	out = render(c, 300)
	require.InDelta(t, 0.25, out[250][0], 1e-3)
	require.True(t, p.Playing())
}

func TestControllerMembership(t *testing.T) {
	fsys := testFS(t)
	a, err := engine.Loader{FS: fsys, SampleRate: sr}.LoadFilePlayer("dc", "wav")
	require.NoError(t, err)
	b, err := engine.Loader{FS: fsys, SampleRate: sr}.LoadSampler("dc", "wav", engine.SamplerOptions{})
	require.NoError(t, err)
	c := engine.NewController(sr)
	c.AddChannels(a, b, a)
	require.Equal(t, []engine.Channel{a, b}, c.Channels())
	c.RemoveChannels(a, a)
	require.Equal(t, []engine.Channel{b}, c.Channels())
	c.RemoveChannels(a)
	require.Equal(t, []engine.Channel{b}, c.Channels())
	chs := c.Channels()
	chs[0] = nil
	require.Equal(t, []engine.Channel{b}, c.Channels(), "Channels should return a copy")
}

func TestControllerFadeOutAndRemove(t *testing.T) {
	p, err := engine.Loader{FS: testFS(t), SampleRate: sr}.LoadFilePlayer("dc", "wav")
	require.NoError(t, err)
	p.SetLoop(true)
	c := engine.NewController(sr)
	c.AddChannels(p)
	c.FadeOutAndRemove(10*time.Millisecond, p)
	require.Equal(t, 1, c.Fading())
	render(c, 200)
	require.Len(t, c.Channels(), 1)
	render(c, 400)
	require.Empty(t, c.Channels())
	require.Equal(t, 0, c.Fading())
}

func TestControllerLevel(t *testing.T) {
	p, err := engine.Loader{FS: testFS(t), SampleRate: sr}.LoadFilePlayer("dc", "wav")
	require.NoError(t, err)
	c := engine.NewController(sr)
	c.AddChannels(p)
	buf := make(gamesound.AudioBuffer, 256)
	require.NoError(t, c.Render(buf))
	require.InDelta(t, 0.5, buf[100][0], 1e-3)
	l := c.Level()
	require.InDelta(t, 0.5, l.RMS[0], 1e-3)
	require.InDelta(t, 0.5, l.Peak[1], 1e-3)
	require.InDelta(t, -6.02, engine.Decibels(l.Peak[0]), 0.05)
	require.Equal(t, -120.0, engine.Decibels(0))
}

func TestLoaderCache(t *testing.T) {
	fsys := testFS(t)
	cache := engine.NewClipCache(0)
	l := engine.Loader{FS: fsys, SampleRate: sr, Cache: cache}
	a, err := l.LoadClip("dc", "wav")
	require.NoError(t, err)
	b, err := l.LoadClip("dc", ".WAV")
	require.NoError(t, err)
	require.Same(t, a, b)
	require.Equal(t, 1, cache.Len())

	_, err = l.LoadClip("missing", "wav")
	require.Error(t, err)
	require.Equal(t, 1, cache.Len(), "failed loads should not be cached")

	// the cache survives the file changing until it is invalidated
	fsys["dc.wav"] = &fstest.MapFile{Data: dcWav(t, 500, 0.5, gamesound.SampleRate)}
	c, err := l.LoadClip("dc", "wav")
	require.NoError(t, err)
	require.Equal(t, 1000, c.Len())
	cache.Invalidate("dc.wav")
	require.Equal(t, 0, cache.Len())
	c, err = l.LoadClip("dc", "wav")
	require.NoError(t, err)
	require.Equal(t, 500, c.Len())

	s1, err := l.LoadSampler("dc", "wav", engine.SamplerOptions{})
	require.NoError(t, err)
	s2, err := l.LoadSampler("dc", "wav", engine.SamplerOptions{})
	require.NoError(t, err)
	require.Same(t, s1.Clip(), s2.Clip())
	cache.Flush()
	require.Equal(t, 0, cache.Len())
}

func TestRecorder(t *testing.T) {
	frames := func(vs ...float32) gamesound.AudioBuffer {
		ret := make(gamesound.AudioBuffer, len(vs))
		for i, v := range vs {
			ret[i] = [2]float32{v, -v}
		}
		return ret
	}
	r := engine.NewRecorder(4)
	require.Empty(t, r.Snapshot())
	r.Write(frames(1, 2))
	require.Equal(t, frames(1, 2), r.Snapshot())
	r.Write(frames(3, 4, 5))
	require.Equal(t, frames(2, 3, 4, 5), r.Snapshot())
	r.Write(frames(6, 7))
	require.Equal(t, frames(4, 5, 6, 7), r.Snapshot())
	r.Write(frames(8, 9, 10, 11, 12))
	require.Equal(t, frames(9, 10, 11, 12), r.Snapshot())
	r.Reset()
	require.Empty(t, r.Snapshot())
	r.Write(frames(1, 2, 3, 4))
	require.Equal(t, frames(1, 2, 3, 4), r.Snapshot())
}
