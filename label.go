package main

import (
	"gioui.org/widget/material"
)

type Label struct {
	th   *material.Theme
	text string
}

func (l Label) Layout(gtx C) D {
	label := material.Body1(l.th, l.text)
	label.Color = grey(230)

	return Panel{Width: 1, CornerRadius: 2, Color: grey(128), BackgroundColor: rgba(0, 0, 0, 160), Margin: 6, Padding: 4}.Layout(gtx, label.Layout)
}
