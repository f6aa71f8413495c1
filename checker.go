package main

import (
	"image"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
)

const (
	checkerCell    = 16
	checkerMaxSize = 512
)

var (
	checkerLight = grey(204)
	checkerDark  = grey(153)
)

// checkerSize scales the image size down so the longest side fits in
// checkerMaxSize, keeping the aspect ratio. The board is stretched into the
// same rectangle as the image, so it only needs the right shape.
func checkerSize(w int, h int) image.Point {
	if w <= checkerMaxSize && h <= checkerMaxSize {
		return image.Pt(w, h)
	}
	if w >= h {
		return image.Pt(checkerMaxSize, max(1, h*checkerMaxSize/w))
	}
	return image.Pt(max(1, w*checkerMaxSize/h), checkerMaxSize)
}

// renderChecker draws a board of alternating grey cells, light in the top
// left corner.
func renderChecker(size image.Point, cell int) *image.RGBA {
	img := image.NewRGBA(image.Rectangle{Max: size})
	gc := draw2dimg.NewGraphicContext(img)

	w := float64(size.X)
	h := float64(size.Y)

	gc.SetFillColor(checkerLight)
	gc.BeginPath()
	draw2dkit.Rectangle(gc, 0, 0, w, h)
	gc.Fill()

	gc.SetFillColor(checkerDark)
	gc.BeginPath()
	for y := 0; y < size.Y; y += cell {
		for x := 0; x < size.X; x += cell {
			if (x/cell+y/cell)%2 == 1 {
				draw2dkit.Rectangle(gc, float64(x), float64(y), float64(x+cell), float64(y+cell))
			}
		}
	}
	gc.Fill()

	return img
}
