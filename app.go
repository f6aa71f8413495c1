package main

import (
	"image"
	"log/slog"
	"path/filepath"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget/material"
)

var background = rgb(40, 40, 40)

// Viewer owns the texture and the view state for one image, and runs the
// window's event loop.
type Viewer struct {
	img      *Image
	format   PixelFormat
	texture  paint.ImageOp
	backdrop *paint.ImageOp
	th       *material.Theme

	settings Settings
	controls Controls
	pointer  pointerTracker
	pacer    Pacer
	state    State
	log      *slog.Logger

	title   string
	framed  bool
	focused bool
}

// NewViewer uploads the image into a texture. It fails if the image's
// channel count has no pixel format.
func NewViewer(img *Image, s Settings, log *slog.Logger) (*Viewer, error) {
	if log == nil {
		log = slog.Default()
	}

	texture, format, err := newTexture(img)
	if err != nil {
		return nil, err
	}

	v := &Viewer{
		img:      img,
		format:   format,
		texture:  texture,
		settings: s,
		controls: NewControls(s),
		pointer:  pointerTracker{WheelStep: s.WheelStep},
		pacer:    Pacer{FPS: s.FPS},
		state:    NewState(),
		log:      log,
		title:    "picview",
	}
	if s.Path != "" {
		v.title = "picview: " + filepath.Base(s.Path)
	}

	if s.Checker && format == FormatRGBA32 {
		board := paint.NewImageOp(renderChecker(checkerSize(img.Width, img.Height), checkerCell))
		v.backdrop = &board
	}
	if s.HUD {
		v.th = newTheme()
	}

	log.Debug("texture ready", "width", img.Width, "height", img.Height, "format", format)
	return v, nil
}

func (v *Viewer) Title() string {
	return v.title
}

func (v *Viewer) Window() WindowState {
	return v.state.Window
}

func (v *Viewer) Running() bool {
	return v.state.Running
}

// Run drains the window's events until it is closed. A window that dies
// before showing its first frame is reported as a PlatformInitError.
func (v *Viewer) Run(w *app.Window) error {
	defer v.Release()

	var ops op.Ops

	for {
		e := w.NextEvent()
		switch e := e.(type) {
		case system.FrameEvent:
			v.framed = true
			gtx := layout.NewContext(&ops, e)
			v.Frame(gtx)
			e.Frame(gtx.Ops)
		case system.DestroyEvent:
			v.handle(QuitEvent{})
			if e.Err != nil && !v.framed {
				return &PlatformInitError{Op: "create window", Err: e.Err}
			}
			return e.Err
		}
	}
}

// Frame handles the events queued for this frame, then draws it.
func (v *Viewer) Frame(gtx C) {
	v.handle(ResizeEvent{Width: gtx.Constraints.Max.X, Height: gtx.Constraints.Max.Y})

	for _, gtxEvent := range gtx.Events(v) {
		switch gtxE := gtxEvent.(type) {
		case key.Event:
			v.handleAll(translateKey(gtxE))
		case pointer.Event:
			v.handleAll(v.pointer.Translate(gtxE))
		}
	}

	v.Layout(gtx)

	// ask for keyboard and mouse events in the whole window
	eventArea := clip.Rect(image.Rectangle{Max: gtx.Constraints.Max}).Push(gtx.Ops)
	if !v.focused {
		key.FocusOp{Tag: v}.Add(gtx.Ops)
		v.focused = true
	}
	key.InputOp{
		Tag:  v,
		Keys: key.Set(v.controls.resetKey()),
	}.Add(gtx.Ops)
	pointer.InputOp{
		Tag:          v,
		Kinds:        pointer.Press | pointer.Release | pointer.Move | pointer.Drag | pointer.Scroll | pointer.Cancel,
		ScrollBounds: image.Rectangle{Min: image.Point{Y: -100}, Max: image.Point{Y: 100}},
	}.Add(gtx.Ops)
	v.cursor().Add(gtx.Ops)
	eventArea.Pop()

	if next := v.pacer.Next(gtx.Now); !next.IsZero() {
		op.InvalidateOp{At: next}.Add(gtx.Ops)
	}
}

func (v *Viewer) handleAll(events []Event) {
	for _, e := range events {
		v.handle(e)
	}
}

func (v *Viewer) handle(e Event) {
	wasDragging := v.state.View.Dragging
	if !v.controls.Handle(&v.state, e) {
		return
	}

	switch e := e.(type) {
	case ResizeEvent:
		v.log.Debug("resize", "width", e.Width, "height", e.Height)
	case WheelEvent:
		v.log.Debug("mouse wheel", "delta", e.Delta, "scale", v.state.View.Scale)
	case KeyEvent:
		v.log.Debug("view reset")
	case ButtonEvent:
		if v.state.View.Dragging != wasDragging {
			v.log.Debug("drag", "active", v.state.View.Dragging)
		}
	case QuitEvent:
		v.log.Debug("quit")
	}
}

func (v *Viewer) cursor() pointer.Cursor {
	if v.state.View.Dragging {
		return pointer.CursorAllScroll
	}
	return pointer.CursorDefault
}

// Layout clears the window and draws the image into its destination
// rectangle.
func (v *Viewer) Layout(gtx C) D {
	paint.Fill(gtx.Ops, background)

	dst := v.state.DestRect(v.img.Width, v.img.Height)
	if v.backdrop != nil {
		drawInto(gtx.Ops, *v.backdrop, dst)
	}
	drawInto(gtx.Ops, v.texture, dst)

	if v.th != nil {
		v.LayoutStatusBar(gtx)
	}
	return D{Size: gtx.Constraints.Max}
}

// drawInto stretches the whole of src over dst.
func drawInto(ops *op.Ops, src paint.ImageOp, dst Rect) {
	size := src.Size()
	if size.X == 0 || size.Y == 0 || dst.W <= 0 || dst.H <= 0 {
		return
	}

	defer op.Affine(textureTransform(size, dst)).Push(ops).Pop()
	defer clip.Rect{Max: size}.Push(ops).Pop()

	src.Add(ops)
	paint.PaintOp{}.Add(ops)
}

// textureTransform maps texture pixels onto dst: the origin lands on
// (dst.X, dst.Y) and the far corner on (dst.X+dst.W, dst.Y+dst.H).
func textureTransform(size image.Point, dst Rect) f32.Affine2D {
	scale := f32.Pt(float32(dst.W/float64(size.X)), float32(dst.H/float64(size.Y)))
	return f32.Affine2D{}.Scale(f32.Point{}, scale).Offset(f32.Pt(float32(dst.X), float32(dst.Y)))
}

// Release forgets the viewer's references to the image ops and ends any
// drag. gio itself frees the window and GPU resources when the window is
// destroyed. It is safe to call more than once.
func (v *Viewer) Release() {
	v.texture = paint.ImageOp{}
	v.backdrop = nil
	v.state.View.Dragging = false
	v.state.Running = false
}
