// Package render runs the scene without a window, replaying scripted presses
// and mixing the output into a buffer.
package render

import (
	"fmt"
	"time"

	"gioui.org/f32"
	"github.com/vsariola/gamesound"
	"github.com/vsariola/gamesound/engine"
	"github.com/vsariola/gamesound/scene"
)

// Block is how much audio is rendered between scene updates.
const Block = 10 * time.Millisecond

// Result is the rendered audio and what happened to the scripted presses.
type Result struct {
	Audio    gamesound.AudioBuffer
	Accepted int
	Ignored  int
	Stats    scene.Stats
}

// Run plays script on a new scene and returns the mixed output. After the
// script duration the scene is closed and its fade out is rendered too.
// progress, if not nil, is called after every block with the fraction done.
func Run(cfg scene.Config, loader engine.Loader, script Script, progress func(float64)) (Result, error) {
	ctrl := engine.NewController(loader.SampleRate)
	s, err := scene.New(cfg, ctrl, loader)
	if err != nil {
		return Result{}, err
	}
	s.Layout(f32.Pt(script.Window.Width, script.Window.Height), cfg.LabelOffset)
	for _, r := range s.Regions() {
		s.SetLabelSize(r.ID, scene.EstimateLabelSize(r.Text, cfg.FontSize))
	}
	total := script.Duration + cfg.FadeOut
	frames := loader.SampleRate.N(total)
	res := Result{Audio: make(gamesound.AudioBuffer, 0, frames)}
	block := make(gamesound.AudioBuffer, loader.SampleRate.N(Block))
	events := script.Events
	var now time.Duration
	for now < total {
		if !s.Closed() && now >= script.Duration {
			s.Close()
		}
		s.Update(now)
		for len(events) > 0 && events[0].At <= now && !s.Closed() {
			ok, err := press(s, events[0])
			if err != nil {
				return res, fmt.Errorf("press at %v: %w", events[0].At, err)
			}
			if ok {
				res.Accepted++
			} else {
				res.Ignored++
			}
			events = events[1:]
		}
		n := min(len(block), frames-len(res.Audio))
		if err := ctrl.Render(block[:n]); err != nil {
			return res, err
		}
		res.Audio = append(res.Audio, block[:n]...)
		now += Block
		if progress != nil {
			progress(min(float64(now)/float64(total), 1))
		}
	}
	res.Stats = s.Stats()
	return res, nil
}

func press(s *scene.Scene, e Event) (bool, error) {
	if e.Region != "" {
		id, _ := scene.ParseRegionID(e.Region)
		return s.Activate(id, "script")
	}
	_, ok := s.Press(f32.Pt(*e.X, *e.Y))
	return ok, nil
}
