package scene

import (
	"time"

	"gioui.org/f32"
	"github.com/vsariola/gamesound"
)

// PressAnimation is the "boing" a label does when pressed: it squashes to
// 90% width and 60% height and then springs back to full size. Restarting the
// animation snaps the scale back to 1 first. The zero value is at rest.
type PressAnimation struct {
	// how much the label is squashed, i.e. 1 - scale; advanced in seconds
	x, y    gamesound.Param
	release bool
}

const (
	squashDuration  = 75 * time.Millisecond
	releaseDuration = 150 * time.Millisecond
	squashX         = 0.9
	squashY         = 0.6
)

// Start restarts the animation.
func (a *PressAnimation) Start() {
	a.x.Set(0)
	a.y.Set(0)
	a.x.RampTo(1-squashX, squashDuration.Seconds())
	a.y.RampTo(1-squashY, squashDuration.Seconds())
	a.release = false
}

// Advance moves the animation forward by d. It returns true while the
// animation is still running.
func (a *PressAnimation) Advance(d time.Duration) bool {
	dt := d.Seconds()
	for dt > 0 && a.x.Ramping() {
		step := min(dt, a.x.Remaining())
		a.y.Advance(step)
		if !a.x.Advance(step) || a.release {
			break
		}
		dt -= step
		a.release = true
		a.x.RampTo(0, releaseDuration.Seconds())
		a.y.RampTo(0, releaseDuration.Seconds())
	}
	return a.Active()
}

func (a *PressAnimation) Active() bool {
	return a.x.Ramping()
}

// Scale returns the current scale of the label.
func (a *PressAnimation) Scale() f32.Point {
	return f32.Pt(float32(1-a.x.Value()), float32(1-a.y.Value()))
}
