package gioui

import (
	"fmt"
	"image"
	"io"
	"log"
	"time"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/x/explorer"
	"github.com/vsariola/gamesound"
	"github.com/vsariola/gamesound/engine"
	"github.com/vsariola/gamesound/scene"
	"golang.org/x/text/cases"
)

type (
	// SceneView is the window of the scene: it draws the labels, turns
	// pointer presses and keys into activations and drives the scene clock.
	SceneView struct {
		Scene    *scene.Scene
		Theme    *Theme
		Broker   *scene.Broker
		Meter    Meter
		Recorder *engine.Recorder
		Explorer *explorer.Explorer
		Title    string
		Version  string

		preferences Preferences
		status      *scene.StatusLine
		caser       cases.Caser
		useCaser    bool
		exploring   bool
		start       time.Time
		started     bool
	}

	// Meter reports the level of the audio output.
	Meter interface {
		Level() engine.Level
	}

	C = layout.Context
	D = layout.Dimensions
)

const meterFrameInterval = 33 * time.Millisecond

func NewSceneView(s *scene.Scene, broker *scene.Broker, meter Meter, prefs Preferences) *SceneView {
	v := &SceneView{
		Scene:       s,
		Theme:       NewTheme(unit.Sp(s.Config().FontSize)),
		Broker:      broker,
		Meter:       meter,
		Title:       "gamesound",
		preferences: prefs,
	}
	v.caser, v.useCaser = prefs.Caser()
	if prefs.YmlError != nil {
		s.Alerts().AddAlert(scene.Alert{
			Priority: scene.Warning,
			Message:  fmt.Sprintf("could not read preferences: %v", prefs.YmlError),
			Duration: 10 * time.Second,
		})
	}
	var err error
	if v.status, err = scene.NewStatusLine(s.Config().Status); err != nil {
		s.Alerts().AddAlert(scene.Alert{
			Priority: scene.Warning,
			Message:  err.Error(),
			Duration: 10 * time.Second,
		})
	}
	return v
}

// Main runs the window until it is closed or something is sent to
// Broker.CloseGUI. It fades out the sounds of the scene and closes
// Broker.FinishedGUI before returning.
func (v *SceneView) Main() {
	var ops op.Ops
	w := v.newWindow()
	v.Explorer = explorer.NewExplorer(w)
	acks := make(chan struct{})
	events := make(chan event.Event)
	go func() {
		for {
			ev := w.Event()
			events <- ev
			<-acks
			if _, ok := ev.(app.DestroyEvent); ok {
				return
			}
		}
	}()
F:
	for {
		select {
		case e := <-v.Broker.ToScene:
			v.advanceClock(time.Now())
			v.Scene.ProcessMsg(e)
			w.Invalidate()
		case <-v.Broker.CloseGUI:
			w.Perform(system.ActionClose)
		case e := <-events:
			v.Explorer.ListenEvents(e)
			switch e := e.(type) {
			case app.DestroyEvent:
				if e.Err != nil {
					log.Printf("window: %v", e.Err)
				}
				acks <- struct{}{}
				break F
			case app.FrameEvent:
				gtx := app.NewContext(&ops, e)
				v.Layout(gtx)
				e.Frame(gtx.Ops)
			}
			acks <- struct{}{}
		}
	}
	v.Scene.Close()
	close(v.Broker.FinishedGUI)
}

func (v *SceneView) newWindow() *app.Window {
	w := new(app.Window)
	w.Option(app.Title(v.Title))
	w.Option(app.Size(v.preferences.WindowSize()))
	if v.preferences.Window.Maximized {
		w.Option(app.Maximized.Option())
	}
	return w
}

func (v *SceneView) Layout(gtx C) D {
	v.advanceClock(gtx.Now)
	defer clip.Rect(image.Rectangle{Max: gtx.Constraints.Max}).Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, v.Theme.Bg)
	event.Op(gtx.Ops, v)
	// presses are timed from the scene clock, so it must be current
	v.handleEvents(gtx)
	v.Scene.Update(gtx.Now.Sub(v.start))
	size := gtx.Constraints.Max
	v.Scene.Layout(f32.Pt(float32(size.X), float32(size.Y)), float32(gtx.Dp(unit.Dp(v.Scene.Config().LabelOffset))))
	for _, r := range v.Scene.Regions() {
		v.layoutRegion(gtx, r)
	}
	v.layoutStatus(gtx)
	Alerts(v.Scene.Alerts(), v.Theme).Layout(gtx)

	animating := false
	for _, r := range v.Scene.Regions() {
		animating = animating || r.Press.Active()
	}
	if animating {
		gtx.Execute(op.InvalidateCmd{})
	} else if deadline, ok := v.Scene.NextDeadline(); ok {
		gtx.Execute(op.InvalidateCmd{At: v.start.Add(deadline)})
	}
	if v.Meter != nil && (v.preferences.ShowVuMeter || v.preferences.ShowStatus) {
		gtx.Execute(op.InvalidateCmd{At: gtx.Now.Add(meterFrameInterval)})
	}
	return D{Size: size}
}

func (v *SceneView) advanceClock(now time.Time) {
	if !v.started {
		v.start = now
		v.started = true
	}
	v.Scene.Update(now.Sub(v.start))
}

func (v *SceneView) handleEvents(gtx C) {
	for {
		ev, ok := gtx.Event(
			pointer.Filter{Target: v, Kinds: pointer.Press},
			key.Filter{Name: "M"},
			key.Filter{Name: "E"},
			key.Filter{Name: "S", Required: key.ModShortcut},
		)
		if !ok {
			break
		}
		switch e := ev.(type) {
		case pointer.Event:
			if e.Kind == pointer.Press {
				v.Scene.Press(e.Position)
			}
		case key.Event:
			if e.State != key.Press {
				continue
			}
			switch {
			case e.Name == "S" && e.Modifiers.Contain(key.ModShortcut):
				v.saveRecording()
			case e.Name == "M":
				v.activate(scene.BackgroundRegion)
			case e.Name == "E":
				v.activate(scene.EffectRegion)
			}
		}
	}
}

func (v *SceneView) activate(id scene.RegionID) {
	if _, err := v.Scene.Activate(id, "keyboard"); err != nil {
		v.Scene.Alerts().Add(err.Error(), scene.Error)
	}
}

func (v *SceneView) labelText(r *scene.Region) string {
	if v.useCaser {
		return v.caser.String(r.Text)
	}
	return r.Text
}

func (v *SceneView) layoutRegion(gtx C, r *scene.Region) {
	musicOn := v.Scene.Background().Player() != nil
	icon := regionIcon(r.ID, musicOn)
	w := func(gtx C) D {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				if icon == nil {
					return D{}
				}
				sz := gtx.Dp(v.Theme.Icon.Size)
				gtx.Constraints = layout.Exact(image.Pt(sz, sz))
				return icon.Layout(gtx, v.Theme.Icon.Color)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Rigid(Label(&v.Theme.Label, v.labelText(r)).Layout),
		)
	}
	center := image.Pt(int(r.Center.X+0.5), int(r.Center.Y+0.5))
	dims := LayoutCentered(gtx, center, r.Press.Scale(), w)
	v.Scene.SetLabelSize(r.ID, f32.Pt(float32(dims.Size.X), float32(dims.Size.Y)))
}

func (v *SceneView) layoutStatus(gtx C) {
	if v.Meter == nil {
		return
	}
	level := v.Meter.Level()
	layout.NW.Layout(gtx, func(gtx C) D {
		return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx C) D {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(func(gtx C) D {
					if !v.preferences.ShowStatus || v.status == nil {
						return D{}
					}
					st := v.Scene.Status(level)
					st.Version = v.Version
					line, err := v.status.Render(st)
					if err != nil {
						line = err.Error()
					}
					return Label(&v.Theme.Status, line).Layout(gtx)
				}),
				layout.Rigid(func(gtx C) D {
					if !v.preferences.ShowVuMeter {
						return D{}
					}
					gtx.Constraints.Max.X = gtx.Dp(unit.Dp(200))
					return VuMeter{Level: level, Style: &v.Theme.VuMeter}.Layout(gtx)
				}),
			)
		})
	})
}

// saveRecording asks for a file and writes the recorded output there as a
// float wav.
func (v *SceneView) saveRecording() {
	if v.Recorder == nil || v.Explorer == nil || v.exploring {
		return
	}
	rec := v.Recorder.Snapshot()
	if len(rec) == 0 {
		v.Scene.Alerts().Add("nothing recorded yet", scene.Info)
		return
	}
	v.exploring = true
	go func() {
		file, err := v.Explorer.CreateFile("gamesound.wav")
		v.Broker.ToScene <- func() {
			v.exploring = false
			if err != nil {
				if err != explorer.ErrUserDecline {
					v.Scene.Alerts().Add(err.Error(), scene.Error)
				}
				return
			}
			if err := writeWav(file, rec); err != nil {
				v.Scene.Alerts().Add(err.Error(), scene.Error)
				return
			}
			v.Scene.Alerts().Add(fmt.Sprintf("saved %.1f s of audio", float64(len(rec))/gamesound.SampleRate), scene.Info)
		}
	}()
}

func writeWav(wc io.WriteCloser, rec gamesound.AudioBuffer) error {
	defer wc.Close()
	b, err := rec.Wav(false, gamesound.SampleRate)
	if err != nil {
		return fmt.Errorf("could not encode recording: %w", err)
	}
	if _, err := wc.Write(b); err != nil {
		return fmt.Errorf("could not write recording: %w", err)
	}
	return nil
}
