package main

import (
	"gioui.org/f32"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
)

// Event is an input event in window coordinates, independent of gio.
type Event interface {
	ImplementsEvent()
}

type QuitEvent struct{}

type ResizeEvent struct {
	Width  int
	Height int
}

// WheelEvent carries the wheel movement in notches, positive away from the
// user.
type WheelEvent struct {
	Delta float64
}

type KeyEvent struct {
	Name string
}

type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
)

type ButtonEvent struct {
	Button Button
	Down   bool
}

// MotionEvent is the pointer movement since the previous pointer event.
type MotionEvent struct {
	DX float64
	DY float64
}

func (QuitEvent) ImplementsEvent()   {}
func (ResizeEvent) ImplementsEvent() {}
func (WheelEvent) ImplementsEvent()  {}
func (KeyEvent) ImplementsEvent()    {}
func (ButtonEvent) ImplementsEvent() {}
func (MotionEvent) ImplementsEvent() {}

var buttonMap = []struct {
	gio pointer.Buttons
	btn Button
}{
	{pointer.ButtonPrimary, ButtonLeft},
	{pointer.ButtonSecondary, ButtonRight},
	{pointer.ButtonTertiary, ButtonMiddle},
}

// pointerTracker turns gio's absolute pointer events into button
// transitions and relative motion.
type pointerTracker struct {
	WheelStep float64 // scroll distance of one wheel notch

	last    f32.Point
	havePos bool
	buttons pointer.Buttons
}

func (t *pointerTracker) Translate(e pointer.Event) []Event {
	var out []Event

	switch e.Kind {
	case pointer.Press:
		for _, b := range buttonMap {
			if e.Buttons.Contain(b.gio) && !t.buttons.Contain(b.gio) {
				out = append(out, ButtonEvent{Button: b.btn, Down: true})
			}
		}
		t.buttons = e.Buttons
	case pointer.Release:
		// gio reports the buttons still held after the release
		for _, b := range buttonMap {
			if t.buttons.Contain(b.gio) && !e.Buttons.Contain(b.gio) {
				out = append(out, ButtonEvent{Button: b.btn, Down: false})
			}
		}
		t.buttons = e.Buttons
	case pointer.Cancel:
		for _, b := range buttonMap {
			if t.buttons.Contain(b.gio) {
				out = append(out, ButtonEvent{Button: b.btn, Down: false})
			}
		}
		t.buttons = 0
		t.havePos = false
		return out
	case pointer.Move, pointer.Drag:
		if t.havePos {
			d := e.Position.Sub(t.last)
			if d.X != 0 || d.Y != 0 {
				out = append(out, MotionEvent{DX: float64(d.X), DY: float64(d.Y)})
			}
		}
	case pointer.Scroll:
		if e.Scroll.Y != 0 {
			step := t.WheelStep
			if step <= 0 {
				step = 1
			}
			// gio scrolls positive towards the user
			out = append(out, WheelEvent{Delta: -float64(e.Scroll.Y) / step})
		}
	}

	t.last = e.Position
	t.havePos = true
	return out
}

func translateKey(e key.Event) []Event {
	if e.State != key.Press {
		return nil
	}
	return []Event{KeyEvent{Name: e.Name}}
}
