package main

import (
	"fmt"
	"image"
	"strings"

	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/widget/material"
)

func newTheme() *material.Theme {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(chooseFonts(gofont.Collection())))
	th.Palette.Fg = grey(255)
	th.Palette.Bg = rgb(40, 40, 40)
	return th
}

func chooseFonts(fonts []font.FontFace) []font.FontFace {
	monos := make([]font.FontFace, 0)
	// look for monospace fonts
	for _, font := range fonts {
		if strings.Contains(strings.ToLower(string(font.Font.Typeface)), "mono") {
			monos = append(monos, font)
		}
	}
	if len(monos) > 0 {
		return monos
	} else {
		return fonts
	}
}

func statusText(s *State, im *Image) string {
	return fmt.Sprintf("%.0f%%  %dx%d %s", s.View.Scale*100, im.Width, im.Height, strings.ToUpper(im.Format))
}

// LayoutStatusBar draws the zoom readout in the bottom left corner, on top
// of the image.
func (v *Viewer) LayoutStatusBar(gtx C) D {
	gtx.Constraints.Min = image.Point{}

	macro := op.Record(gtx.Ops)
	dims := Label{th: v.th, text: statusText(&v.state, v.img)}.Layout(gtx)
	call := macro.Stop()

	defer op.Offset(image.Pt(0, gtx.Constraints.Max.Y-dims.Size.Y)).Push(gtx.Ops).Pop()
	call.Add(gtx.Ops)
	return dims
}
