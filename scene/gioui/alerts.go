package gioui

import (
	"image"
	"image/color"
	"time"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"github.com/vsariola/gamesound/scene"
)

type (
	AlertStyle struct {
		Bg   color.NRGBA
		Text LabelStyle
	}

	AlertStyles struct {
		Info    AlertStyle
		Warning AlertStyle
		Error   AlertStyle
		Margin  layout.Inset
		Inset   layout.Inset
	}

	// AlertsWidget stacks the alerts of the scene at the bottom of the window,
	// newest lowest. An alert slides in from below while it fades in and
	// slides back out when it fades out.
	AlertsWidget struct {
		Theme *Theme
		Model *scene.Alerts
	}
)

const alertFrameInterval = 50 * time.Millisecond

func Alerts(m *scene.Alerts, th *Theme) AlertsWidget {
	return AlertsWidget{Theme: th, Model: m}
}

func (s *AlertStyles) forPriority(p scene.AlertPriority) *AlertStyle {
	switch p {
	case scene.Warning:
		return &s.Warning
	case scene.Error:
		return &s.Error
	}
	return &s.Info
}

func (a AlertsWidget) Layout(gtx C) D {
	if a.Model.Len() == 0 {
		return D{}
	}
	gtx.Execute(op.InvalidateCmd{At: gtx.Now.Add(alertFrameInterval)})
	styles := &a.Theme.Alert
	width := gtx.Constraints.Max.X - gtx.Dp(styles.Margin.Left) - gtx.Dp(styles.Margin.Right)
	bottom := gtx.Constraints.Max.Y - gtx.Dp(styles.Margin.Bottom)
	// the newest alert is at the bottom, so walk from the end
	var alerts []scene.Alert
	for _, alert := range a.Model.Iterate {
		alerts = append(alerts, alert)
	}
	for i := len(alerts) - 1; i >= 0; i-- {
		alert := alerts[i]
		style := styles.forPriority(alert.Priority)
		cgtx := gtx
		cgtx.Constraints = layout.Constraints{
			Min: image.Pt(width, 0),
			Max: image.Pt(width, gtx.Constraints.Max.Y),
		}
		macro := op.Record(gtx.Ops)
		dims := styles.Inset.Layout(cgtx, Label(&style.Text, alert.Message).Layout)
		content := macro.Stop()
		h := dims.Size.Y
		// fully faded in, the box sits above the previous one; faded out, it
		// is just below the window edge
		fade := float32(min(max(alert.FadeLevel, 0), 1))
		y := int(float32(bottom-h)*fade + float32(gtx.Constraints.Max.Y)*(1-fade))
		stack := op.Offset(image.Pt(gtx.Dp(styles.Margin.Left), y)).Push(gtx.Ops)
		paint.FillShape(gtx.Ops, style.Bg, clip.Rect{Max: image.Pt(width, h)}.Op())
		content.Add(gtx.Ops)
		stack.Pop()
		bottom -= int(float32(h+gtx.Dp(styles.Margin.Top)) * fade)
	}
	return D{}
}
