package main

import (
	"math"

	"gioui.org/io/key"
)

const (
	InitialWidth    = 1280
	InitialHeight   = 720
	DefaultZoomStep = 1.08
)

type Point struct {
	X float64
	Y float64
}

func (a Point) Add(b Point) Point {
	return Point{X: a.X + b.X, Y: a.Y + b.Y}
}

// Rect is the on-screen box the texture is stretched into.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

type ViewState struct {
	Scale    float64
	Pan      Point
	Dragging bool
}

func (v *ViewState) Reset() {
	v.Scale = 1
	v.Pan = Point{}
}

type WindowState struct {
	Width  int
	Height int
}

// State is everything the input step writes and the render step reads.
type State struct {
	Running bool
	Window  WindowState
	View    ViewState
}

func NewState() State {
	return State{
		Running: true,
		Window:  WindowState{Width: InitialWidth, Height: InitialHeight},
		View:    ViewState{Scale: 1},
	}
}

// DestRect fits the image to the window width at scale 1, keeps the image's
// aspect ratio, and centres it before applying the pan offset.
func DestRect(win WindowState, imgW, imgH int, scale float64, pan Point) Rect {
	var r Rect
	r.W = float64(win.Width) * scale
	r.X = float64(win.Width)/2 - r.W/2 + pan.X
	r.H = r.W * float64(imgH) / float64(imgW)
	r.Y = float64(win.Height)/2 - r.H/2 + pan.Y
	return r
}

func (s *State) DestRect(imgW, imgH int) Rect {
	return DestRect(s.Window, imgW, imgH, s.View.Scale, s.View.Pan)
}

// Controls decides how input events change the state.
type Controls struct {
	ZoomStep float64
	SignOnly bool    // zoom by one step per event whatever the wheel distance
	MinScale float64 // 0 means no lower bound
	MaxScale float64 // 0 means no upper bound
	Static   bool    // fixed fit-to-width view, no pan or zoom
	ResetKey string
}

func NewControls(s Settings) Controls {
	return Controls{
		ZoomStep: s.ZoomStep,
		SignOnly: s.SignOnly,
		MinScale: s.MinScale,
		MaxScale: s.MaxScale,
		Static:   s.Static,
		ResetKey: key.NameSpace,
	}
}

// Handle applies one event and reports whether anything changed.
func (c *Controls) Handle(s *State, e Event) bool {
	switch e := e.(type) {
	case QuitEvent:
		s.Running = false
		return true
	case ResizeEvent:
		if s.Window.Width == e.Width && s.Window.Height == e.Height {
			return false
		}
		s.Window = WindowState{Width: e.Width, Height: e.Height}
		return true
	}

	if c.Static {
		return false
	}

	switch e := e.(type) {
	case WheelEvent:
		old := s.View.Scale
		s.View.Scale = c.zoom(old, e.Delta)
		return s.View.Scale != old
	case KeyEvent:
		if e.Name != c.resetKey() {
			return false
		}
		s.View.Reset()
		return true
	case ButtonEvent:
		if e.Button != ButtonLeft {
			return false
		}
		changed := s.View.Dragging != e.Down
		s.View.Dragging = e.Down
		return changed
	case MotionEvent:
		if !s.View.Dragging {
			return false
		}
		s.View.Pan = s.View.Pan.Add(Point{X: e.DX, Y: e.DY})
		return e.DX != 0 || e.DY != 0
	}
	return false
}

func (c *Controls) resetKey() string {
	if c.ResetKey == "" {
		return key.NameSpace
	}
	return c.ResetKey
}

// zoom multiplies by the step times the wheel delta, so a faster scroll
// zooms harder.
func (c *Controls) zoom(scale, delta float64) float64 {
	step := c.ZoomStep
	if step <= 0 {
		step = DefaultZoomStep
	}
	if c.SignOnly && delta != 0 {
		delta = math.Copysign(1, delta)
	}

	if delta > 0 {
		scale *= step * delta
	} else if delta < 0 {
		scale /= step * -delta
	} else {
		return scale
	}
	return c.clamp(scale)
}

func (c *Controls) clamp(scale float64) float64 {
	if c.MinScale > 0 && scale < c.MinScale {
		return c.MinScale
	}
	if c.MaxScale > 0 && scale > c.MaxScale {
		return c.MaxScale
	}
	return scale
}
