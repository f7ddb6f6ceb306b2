package scene

import (
	"fmt"
	"log"
	"math"
	"time"

	"gioui.org/f32"
	"github.com/vsariola/gamesound/engine"
)

type (
	// Scene is the state of the demo: two labels, the background track toggle,
	// the effect channel and the queue of timed effect steps. It is not safe
	// for concurrent use; everything happens on the goroutine that owns it, and
	// other goroutines talk to it through the Broker.
	Scene struct {
		cfg        Config
		mixer      Mixer
		loader     Loader
		regions    Regions
		background BackgroundTrack
		effect     *engine.Sampler
		sched      Scheduler
		alerts     Alerts
		stats      Stats
		last       time.Duration
		closed     bool
	}

	// Stats counts what has happened in the scene, for the status line.
	Stats struct {
		Toggles    int
		Effects    int
		Ignored    int
		LastSource string
	}
)

// New creates the scene and preloads the effect channel, adding it to the
// mixer. An effect that cannot be loaded is an error, since the scene would be
// useless without it.
func New(cfg Config, mixer Mixer, loader Loader) (*Scene, error) {
	s := &Scene{
		cfg:    cfg,
		mixer:  mixer,
		loader: loader,
		background: BackgroundTrack{
			Asset:  cfg.Background.Asset,
			Volume: cfg.Background.Volume,
		},
	}
	s.regions = Regions{
		&Region{ID: BackgroundRegion, Text: cfg.Background.Label},
		&Region{ID: EffectRegion, Text: cfg.Effect.Label},
	}
	effect, err := s.loadEffect()
	if err != nil {
		return nil, err
	}
	s.effect = effect
	mixer.AddChannels(effect)
	if cfg.Tip.Enabled {
		s.sched.At(cfg.Tip.Delay, ShowTipCmd{Message: cfg.Tip.Message, Duration: cfg.Tip.Duration})
	}
	return s, nil
}

func (s *Scene) loadEffect() (*engine.Sampler, error) {
	a := s.cfg.Effect.Asset
	effect, err := s.loader.LoadSampler(a.Name, a.Ext, engine.SamplerOptions{Cents: s.cfg.Effect.Cents})
	if err != nil {
		return nil, fmt.Errorf("could not load effect: %w", err)
	}
	return effect, nil
}

func (s *Scene) Config() Config               { return s.cfg }
func (s *Scene) Regions() Regions             { return s.regions }
func (s *Scene) Background() *BackgroundTrack { return &s.background }
func (s *Scene) Effect() *engine.Sampler      { return s.effect }
func (s *Scene) Alerts() *Alerts              { return &s.alerts }
func (s *Scene) Stats() Stats                 { return s.stats }
func (s *Scene) Scheduler() *Scheduler        { return &s.sched }
func (s *Scene) Region(id RegionID) *Region   { return s.regions.Find(id) }
func (s *Scene) Now() time.Duration           { return s.sched.Now() }
func (s *Scene) Closed() bool                 { return s.closed }

// Layout places the labels in a window of the given size: the effect label
// offset pixels above the center and the background label offset pixels
// below it. The y axis points down, so the effect label is drawn on top.
func (s *Scene) Layout(size f32.Point, offset float32) {
	mid := size.Mul(0.5)
	s.Region(EffectRegion).Center = f32.Pt(mid.X, mid.Y-offset)
	s.Region(BackgroundRegion).Center = f32.Pt(mid.X, mid.Y+offset)
}

// SetLabelSize sets the unscaled size of a label, as measured by whoever draws
// it.
func (s *Scene) SetLabelSize(id RegionID, size f32.Point) {
	if r := s.Region(id); r != nil {
		r.Size = size
	}
}

// EstimateLabelSize guesses the size of a single line label for when there is
// no text shaper, e.g. when rendering offline.
func EstimateLabelSize(text string, fontSize float32) f32.Point {
	return f32.Pt(float32(len([]rune(text)))*fontSize*0.55, fontSize*1.2)
}

// Press handles a press at p. It returns the region that was hit and whether
// the press was accepted by it.
func (s *Scene) Press(p f32.Point) (RegionID, bool) {
	id := s.regions.HitTest(p)
	ok, _ := s.Activate(id, "pointer")
	return id, ok
}

// Activate presses a region. Pressing the background label is ignored while
// the label is still animating from an earlier press. A failed background
// track load is returned as an error; the press still counts as accepted.
func (s *Scene) Activate(id RegionID, source string) (accepted bool, err error) {
	if s.closed {
		return false, nil
	}
	r := s.Region(id)
	if r == nil {
		return false, nil
	}
	switch id {
	case BackgroundRegion:
		if !s.settled(r) {
			s.stats.Ignored++
			return false, nil
		}
		r.Press.Start()
		s.stats.Toggles++
		err = s.background.Toggle(s.mixer, s.loader)
		if s.cfg.ReloadEffectOnToggle {
			s.reloadEffect()
		}
	case EffectRegion:
		r.Press.Start()
		s.stats.Effects++
		s.triggerEffect()
	}
	s.stats.LastSource = source
	return true, err
}

func (s *Scene) settled(r *Region) bool {
	return math.Abs(float64(r.Press.Scale().Y)-1) < s.cfg.SettleTolerance
}

func (s *Scene) triggerEffect() {
	if s.effect == nil {
		return
	}
	now := s.sched.Now()
	for _, step := range EffectSequence(s.effect.Pan(), s.cfg.Effect.Volume) {
		s.sched.At(now+step.Delay, step.Cmd)
	}
	s.run(s.sched.Due(now))
}

func (s *Scene) reloadEffect() {
	effect, err := s.loadEffect()
	if err != nil {
		log.Print(err)
		s.alerts.AddNamed("EffectReload", err.Error(), Error)
		return
	}
	if s.effect != nil {
		s.mixer.RemoveChannels(s.effect)
	}
	s.effect = effect
	s.mixer.AddChannels(effect)
}

func (s *Scene) applyToEffect(c ChannelCommand) {
	if s.effect != nil {
		c.Apply(s.effect)
	}
}

func (s *Scene) run(cmds []Command) {
	for _, c := range cmds {
		c.Execute(s)
	}
}

// Update advances the scene clock to now, running the steps that have come
// due and advancing the label animations and alerts. It returns true if
// anything is still animating or queued, i.e. another frame is needed.
func (s *Scene) Update(now time.Duration) bool {
	dt := max(now-s.last, 0)
	s.last = max(s.last, now)
	s.run(s.sched.Due(now))
	animating := s.alerts.Update(dt)
	for _, r := range s.regions {
		if r.Press.Advance(dt) {
			animating = true
		}
	}
	return animating || s.sched.Pending() > 0
}

// NextDeadline returns when the next queued step is due.
func (s *Scene) NextDeadline() (time.Duration, bool) {
	return s.sched.Next()
}

// ProcessMsg handles a message from the broker.
func (s *Scene) ProcessMsg(msg any) {
	switch m := msg.(type) {
	case TriggerMsg:
		if _, err := s.Activate(m.Region, m.Source); err != nil {
			s.alerts.AddNamed("Trigger", err.Error(), Warning)
		}
	case Alert:
		s.alerts.AddAlert(m)
	case func():
		m()
	default:
		log.Printf("scene: unknown message %T", msg)
	}
}

// Close fades out and removes all channels of the mixer. The scene ignores
// presses after it has been closed.
func (s *Scene) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.mixer.FadeOutAndRemove(s.cfg.FadeOut, s.mixer.Channels()...)
	s.background.state = Unloaded{}
}
