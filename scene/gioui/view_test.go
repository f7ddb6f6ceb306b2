package gioui_test

import (
	"image"
	"testing"
	"testing/fstest"
	"time"

	"gioui.org/f32"
	"gioui.org/io/input"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"github.com/gopxl/beep/v2"
	"github.com/vsariola/gamesound"
	"github.com/vsariola/gamesound/engine"
	"github.com/vsariola/gamesound/scene"
	"github.com/vsariola/gamesound/scene/gioui"
)

const sr = beep.SampleRate(gamesound.SampleRate)

func newView(t *testing.T, prefs gioui.Preferences) (*gioui.SceneView, *engine.Controller) {
	t.Helper()
	buf := make(gamesound.AudioBuffer, 1000)
	buf.Fill([2]float32{0.25, 0.25})
	wav, err := buf.Wav(true, gamesound.SampleRate)
	if err != nil {
		t.Fatal(err)
	}
	fsys := fstest.MapFS{"bg_music.wav": {Data: wav}, "effect1.wav": {Data: wav}}
	ctrl := engine.NewController(sr)
	s, err := scene.New(scene.DefaultConfig(), ctrl, engine.Loader{FS: fsys, SampleRate: sr})
	if err != nil {
		t.Fatal(err)
	}
	return gioui.NewSceneView(s, scene.NewBroker(), ctrl, prefs), ctrl
}

func frame(v *gioui.SceneView, now time.Time) {
	routedFrame(v, now, nil)
}

func routedFrame(v *gioui.SceneView, now time.Time, r *input.Router) {
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Exact(image.Pt(800, 600)),
		Metric:      unit.Metric{PxPerDp: 1, PxPerSp: 1},
		Now:         now,
	}
	if r != nil {
		gtx.Source = r.Source()
	}
	v.Layout(gtx)
	if r != nil {
		r.Frame(gtx.Ops)
	}
}

func TestLayoutPlacesLabels(t *testing.T) {
	v, _ := newView(t, gioui.MakePreferences())
	frame(v, time.Now())
	eff := v.Scene.Region(scene.EffectRegion)
	bg := v.Scene.Region(scene.BackgroundRegion)
	if eff.Center != f32.Pt(400, 300-64) || bg.Center != f32.Pt(400, 300+64) {
		t.Fatalf("unexpected centers %v %v", eff.Center, bg.Center)
	}
	for _, r := range []*scene.Region{eff, bg} {
		if r.Size.X <= 0 || r.Size.Y <= 0 {
			t.Errorf("region %v was not measured: %v", r.ID, r.Size)
		}
		if !r.Contains(r.Center) {
			t.Errorf("region %v does not contain its center", r.ID)
		}
	}
	if bg.Bounds().Max.Y > 600 || eff.Bounds().Min.Y < 0 {
		t.Errorf("labels outside the window")
	}
}

func TestLayoutDrivesSceneClock(t *testing.T) {
	v, _ := newView(t, gioui.MakePreferences())
	start := time.Now()
	frame(v, start)
	bg := v.Scene.Region(scene.BackgroundRegion)
	if _, ok := v.Scene.Press(bg.Center); !ok {
		t.Fatal("press on the background label should be accepted")
	}
	if !bg.Press.Active() {
		t.Fatal("press should start the animation")
	}
	frame(v, start.Add(time.Second))
	if bg.Press.Active() {
		t.Error("animation should have finished after a second of frames")
	}
	if v.Scene.Now() != time.Second {
		t.Errorf("scene clock at %v, want 1s", v.Scene.Now())
	}
}

func TestEffectKeyTimedFromFrame(t *testing.T) {
	v, _ := newView(t, gioui.MakePreferences())
	r := new(input.Router)
	start := time.Now()
	routedFrame(v, start, r)
	r.Queue(key.Event{Name: "E", State: key.Press})
	routedFrame(v, start.Add(500*time.Millisecond), r)
	if v.Scene.Stats().Effects != 1 {
		t.Fatalf("effect key was not handled: %+v", v.Scene.Stats())
	}
	// from the center, the first pan step ends 250ms after the press
	next, ok := v.Scene.NextDeadline()
	if !ok || next != 750*time.Millisecond {
		t.Errorf("next step at %v (%v), want 750ms", next, ok)
	}
}

func TestPreferences(t *testing.T) {
	p := gioui.MakePreferences()
	w, h := p.WindowSize()
	if w <= 0 || h <= 0 {
		t.Errorf("bad default window size %vx%v", w, h)
	}
	cases := []struct {
		labelCase string
		want      string
		ok        bool
	}{
		{"none", "", false},
		{"title", "Play Background Music Track!", true},
		{"upper", "PLAY BACKGROUND MUSIC TRACK!", true},
		{"Lower", "play background music track!", true},
	}
	for _, c := range cases {
		p.LabelCase = c.labelCase
		caser, ok := p.Caser()
		if ok != c.ok {
			t.Errorf("%s: got ok %v", c.labelCase, ok)
			continue
		}
		if ok {
			if got := caser.String("Play background music track!"); got != c.want {
				t.Errorf("%s: got %q, want %q", c.labelCase, got, c.want)
			}
		}
	}
}
