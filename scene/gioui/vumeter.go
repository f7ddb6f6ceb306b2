package gioui

import (
	"image"
	"image/color"

	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"github.com/vsariola/gamesound/engine"
)

type (
	VuMeterStyle struct {
		Range     float32 // dB shown, from -Range to 0
		Loudness  color.NRGBA
		Peak      color.NRGBA
		Clipping  color.NRGBA
		Height    unit.Dp // per channel
		Thickness unit.Dp // of the peak marker
	}

	VuMeter struct {
		Level engine.Level
		Style *VuMeterStyle
	}
)

func (v VuMeter) Layout(gtx C) D {
	defer op.Offset(image.Point{}).Push(gtx.Ops).Pop()
	height := gtx.Dp(v.Style.Height)
	thickness := max(gtx.Dp(v.Style.Thickness), 1)
	width := gtx.Constraints.Max.X
	for j := 0; j < 2; j++ {
		if x := v.x(v.Level.RMS[j], width); x > 0 {
			paint.FillShape(gtx.Ops, v.Style.Loudness, clip.Rect(image.Rect(0, 0, x, height)).Op())
		}
		if x := v.x(v.Level.Peak[j], width); x > 0 {
			c := v.Style.Peak
			if v.Level.Peak[j] >= 1 {
				c = v.Style.Clipping
			}
			paint.FillShape(gtx.Ops, c, clip.Rect(image.Rect(x-thickness, 0, x, height)).Op())
		}
		op.Offset(image.Point{0, height}).Add(gtx.Ops)
	}
	return D{Size: image.Pt(width, 2*height)}
}

func (v VuMeter) x(amplitude float32, width int) int {
	value := float32(engine.Decibels(amplitude)) + v.Style.Range
	if value <= 0 {
		return 0
	}
	return min(int(value/v.Style.Range*float32(width)+0.5), width)
}
