package main

import (
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
)

type Panel struct {
	Width           unit.Dp     // of border
	CornerRadius    unit.Dp     // of border
	Color           color.NRGBA // of border
	BackgroundColor color.NRGBA
	Margin          unit.Dp // outside the border
	Padding         unit.Dp // inside the border
}

// draw widget with the given background colour
func LayoutColour(gtx C, col color.NRGBA, widget layout.Widget) D {
	return layout.Background{}.Layout(gtx, func(gtx C) D {
		paint.FillShape(gtx.Ops, col, clip.Rect{Max: gtx.Constraints.Min}.Op())
		return D{Size: gtx.Constraints.Min}
	}, widget)
}

func (p Panel) Layout(gtx C, w layout.Widget) D {
	if p.BackgroundColor.A > 0 {
		return layout.UniformInset(p.Margin).Layout(gtx, func(gtx C) D {
			return widget.Border{Width: p.Width, CornerRadius: p.CornerRadius, Color: p.Color}.Layout(gtx, func(gtx C) D {
				return LayoutColour(gtx, p.BackgroundColor, func(gtx C) D {
					return layout.UniformInset(p.Padding).Layout(gtx, w)
				})
			})
		})
	} else {
		return layout.UniformInset(p.Margin).Layout(gtx, func(gtx C) D {
			return widget.Border{Width: p.Width, CornerRadius: p.CornerRadius, Color: p.Color}.Layout(gtx, func(gtx C) D {
				return layout.UniformInset(p.Padding).Layout(gtx, w)
			})
		})
	}
}

func rgb(r uint8, g uint8, b uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func rgba(r uint8, g uint8, b uint8, a uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

func grey(v uint8) color.NRGBA {
	return rgb(v, v, v)
}
