package assets_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/stretchr/testify/require"
	"github.com/vsariola/gamesound"
	"github.com/vsariola/gamesound/assets"
	"github.com/vsariola/gamesound/engine"
	"github.com/vsariola/gamesound/scene"
)

func TestEmbeddedAssetsLoad(t *testing.T) {
	cfg := scene.DefaultConfig()
	l := engine.Loader{FS: assets.Embedded(), SampleRate: beep.SampleRate(gamesound.SampleRate)}
	for _, a := range []scene.Asset{cfg.Background.Asset, cfg.Effect.Asset} {
		clip, err := l.LoadClip(a.Name, a.Ext)
		require.NoError(t, err, a.Name)
		require.Positive(t, clip.Len())
	}
}

func TestOpen(t *testing.T) {
	fsys, err := assets.Open("")
	require.NoError(t, err)
	_, err = fs.Stat(fsys, "bg_music.wav")
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "x.wav"), []byte("x"), 0o644))
	fsys, err = assets.Open(dir)
	require.NoError(t, err)
	_, err = fs.Stat(fsys, "x.wav")
	require.NoError(t, err)

	_, err = assets.Open(filepath.Join(dir, "x.wav"))
	require.Error(t, err)
	_, err = assets.Open(filepath.Join(dir, "missing"))
	require.Error(t, err)
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	changed := make(chan string, 16)
	w, err := assets.Watch(dir, func(name string) { changed <- name })
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "effect1.wav"), []byte("data"), 0o644))
	select {
	case name := <-changed:
		require.Equal(t, "effect1.wav", name)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatchMissingDir(t *testing.T) {
	_, err := assets.Watch(filepath.Join(t.TempDir(), "missing"), func(string) {})
	require.Error(t, err)
}
