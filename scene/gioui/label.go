package gioui

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
)

type LabelStyle struct {
	Color      color.NRGBA
	ShadeColor color.NRGBA
	Font       font.Font
	FontSize   unit.Sp
	Shaper     *text.Shaper
}

// Label binds a text to a style, giving a widget.
func Label(style *LabelStyle, txt string) LabelWidget {
	return LabelWidget{Style: style, Text: txt}
}

type LabelWidget struct {
	Style *LabelStyle
	Text  string
}

func (l LabelWidget) Layout(gtx C) D {
	gtx.Constraints.Min = image.Point{}
	paint.ColorOp{Color: l.Style.ShadeColor}.Add(gtx.Ops)
	offs := op.Offset(image.Pt(2, 2)).Push(gtx.Ops)
	widget.Label{
		Alignment: text.Start,
		MaxLines:  1,
	}.Layout(gtx, l.Style.Shaper, l.Style.Font, l.Style.FontSize, l.Text, op.CallOp{})
	offs.Pop()
	paint.ColorOp{Color: l.Style.Color}.Add(gtx.Ops)
	dims := widget.Label{
		Alignment: text.Start,
		MaxLines:  1,
	}.Layout(gtx, l.Style.Shaper, l.Style.Font, l.Style.FontSize, l.Text, op.CallOp{})
	return D{Size: dims.Size, Baseline: dims.Baseline}
}

// LayoutCentered draws w centered at center (in pixels), scaled around its
// center. It returns the unscaled size of w.
func LayoutCentered(gtx C, center image.Point, scale f32.Point, w layout.Widget) D {
	gtx.Constraints.Min = image.Point{}
	macro := op.Record(gtx.Ops)
	dims := w(gtx)
	call := macro.Stop()
	half := dims.Size.Div(2)
	tr := f32.Affine2D{}.
		Offset(f32.Pt(float32(center.X-half.X), float32(center.Y-half.Y))).
		Scale(f32.Pt(float32(center.X), float32(center.Y)), scale)
	defer op.Affine(tr).Push(gtx.Ops).Pop()
	call.Add(gtx.Ops)
	return dims
}
