package scene

import (
	"gioui.org/f32"
)

type (
	// RegionID names a tappable area of the scene.
	RegionID int

	// Region is a label that can be pressed. Center and Size are in pixels;
	// Size is the unscaled size of the label contents. While the press
	// animation runs, the hit area shrinks along with the label.
	Region struct {
		ID     RegionID
		Text   string
		Center f32.Point
		Size   f32.Point
		Press  PressAnimation
	}

	// Rect is an axis aligned rectangle, Min inclusive and Max exclusive.
	Rect struct {
		Min, Max f32.Point
	}

	// Regions are hit tested in order; the first match wins.
	Regions []*Region
)

const (
	NoRegion RegionID = iota
	BackgroundRegion
	EffectRegion
)

func (r RegionID) String() string {
	switch r {
	case BackgroundRegion:
		return "background"
	case EffectRegion:
		return "effect"
	}
	return "none"
}

// ParseRegionID is the inverse of RegionID.String.
func ParseRegionID(s string) (RegionID, bool) {
	for _, id := range []RegionID{NoRegion, BackgroundRegion, EffectRegion} {
		if id.String() == s {
			return id, true
		}
	}
	return NoRegion, false
}

// Bounds returns the current hit area of the region.
func (r *Region) Bounds() Rect {
	s := r.Press.Scale()
	half := f32.Pt(r.Size.X*s.X/2, r.Size.Y*s.Y/2)
	return Rect{Min: r.Center.Sub(half), Max: r.Center.Add(half)}
}

func (r *Region) Contains(p f32.Point) bool {
	return r.Bounds().Contains(p)
}

func (r Rect) Contains(p f32.Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

func (r Rect) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// HitTest returns the ID of the first region containing p, or NoRegion.
func (rs Regions) HitTest(p f32.Point) RegionID {
	for _, r := range rs {
		if r != nil && r.Contains(p) {
			return r.ID
		}
	}
	return NoRegion
}

// Find returns the region with the given ID, or nil.
func (rs Regions) Find(id RegionID) *Region {
	for _, r := range rs {
		if r != nil && r.ID == id {
			return r
		}
	}
	return nil
}
