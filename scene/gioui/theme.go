package gioui

import (
	"image/color"

	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

type (
	Theme struct {
		Material material.Theme
		Bg       color.NRGBA
		Label    LabelStyle
		Status   LabelStyle
		Alert    AlertStyles
		VuMeter  VuMeterStyle
		Icon     IconStyle
	}

	IconStyle struct {
		Color color.NRGBA
		Size  unit.Dp
	}
)

var fontCollection []text.FontFace = gofont.Collection()

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
var black = color.NRGBA{R: 0, G: 0, B: 0, A: 255}

var primaryColor = color.NRGBA{R: 206, G: 147, B: 216, A: 255}
var secondaryColor = color.NRGBA{R: 128, G: 222, B: 234, A: 255}

var highEmphasisTextColor = color.NRGBA{R: 222, G: 222, B: 222, A: 222}
var mediumEmphasisTextColor = color.NRGBA{R: 153, G: 153, B: 153, A: 153}

var backgroundColor = color.NRGBA{R: 18, G: 18, B: 18, A: 255}
var popupSurfaceColor = color.NRGBA{R: 50, G: 50, B: 51, A: 255}

var errorColor = color.NRGBA{R: 207, G: 102, B: 121, A: 255}
var warningColor = color.NRGBA{R: 251, G: 192, B: 45, A: 255}

var labelFont = fontCollection[6].Font

// NewTheme returns the dark theme of the scene view. fontSize is the size of
// the region labels.
func NewTheme(fontSize unit.Sp) *Theme {
	th := &Theme{Bg: backgroundColor}
	th.Material = *material.NewTheme()
	th.Material.Shaper = text.NewShaper(text.WithCollection(fontCollection))
	th.Material.Palette.Bg = backgroundColor
	th.Material.Palette.Fg = highEmphasisTextColor
	th.Material.Palette.ContrastBg = primaryColor
	th.Material.Palette.ContrastFg = black
	th.Label = LabelStyle{
		Color:      highEmphasisTextColor,
		ShadeColor: black,
		Font:       labelFont,
		FontSize:   fontSize,
		Shaper:     th.Material.Shaper,
	}
	th.Status = LabelStyle{
		Color:      mediumEmphasisTextColor,
		ShadeColor: black,
		Font:       font.Font{Typeface: "Go Mono"},
		FontSize:   unit.Sp(12),
		Shaper:     th.Material.Shaper,
	}
	alertText := LabelStyle{
		Color:      highEmphasisTextColor,
		ShadeColor: black,
		Font:       labelFont,
		FontSize:   unit.Sp(16),
		Shaper:     th.Material.Shaper,
	}
	th.Alert = AlertStyles{
		Info:    AlertStyle{Bg: popupSurfaceColor, Text: alertText},
		Warning: AlertStyle{Bg: warningColor, Text: alertText},
		Error:   AlertStyle{Bg: errorColor, Text: alertText},
		Margin:  layout.UniformInset(unit.Dp(6)),
		Inset:   layout.UniformInset(unit.Dp(6)),
	}
	th.Alert.Warning.Text.Color = black
	th.VuMeter = VuMeterStyle{
		Range:     60,
		Loudness:  mediumEmphasisTextColor,
		Peak:      white,
		Clipping:  errorColor,
		Height:    unit.Dp(6),
		Thickness: unit.Dp(1),
	}
	th.Icon = IconStyle{Color: secondaryColor, Size: unit.Dp(24)}
	return th
}
