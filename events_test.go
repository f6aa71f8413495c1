package main

import (
	"reflect"
	"testing"

	"gioui.org/f32"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
)

func TestPointerTrackerDrag(t *testing.T) {
	tr := pointerTracker{WheelStep: 10}

	steps := []struct {
		ev   pointer.Event
		want []Event
	}{
		{
			pointer.Event{Kind: pointer.Move, Position: f32.Pt(10, 10)},
			nil,
		},
		{
			pointer.Event{Kind: pointer.Press, Buttons: pointer.ButtonPrimary, Position: f32.Pt(10, 10)},
			[]Event{ButtonEvent{Button: ButtonLeft, Down: true}},
		},
		{
			pointer.Event{Kind: pointer.Drag, Buttons: pointer.ButtonPrimary, Position: f32.Pt(15, 8)},
			[]Event{MotionEvent{DX: 5, DY: -2}},
		},
		{
			pointer.Event{Kind: pointer.Press, Buttons: pointer.ButtonPrimary | pointer.ButtonSecondary, Position: f32.Pt(15, 8)},
			[]Event{ButtonEvent{Button: ButtonRight, Down: true}},
		},
		{
			pointer.Event{Kind: pointer.Release, Buttons: pointer.ButtonSecondary, Position: f32.Pt(15, 8)},
			[]Event{ButtonEvent{Button: ButtonLeft, Down: false}},
		},
		{
			pointer.Event{Kind: pointer.Release, Position: f32.Pt(15, 8)},
			[]Event{ButtonEvent{Button: ButtonRight, Down: false}},
		},
	}

	for i, s := range steps {
		got := tr.Translate(s.ev)
		if !reflect.DeepEqual(got, s.want) {
			t.Errorf("step %d: got %#v, want %#v", i, got, s.want)
		}
	}
}

func TestPointerTrackerFirstMoveHasNoDelta(t *testing.T) {
	var tr pointerTracker
	if got := tr.Translate(pointer.Event{Kind: pointer.Move, Position: f32.Pt(300, 200)}); len(got) != 0 {
		t.Errorf("first move produced %#v", got)
	}
	if got := tr.Translate(pointer.Event{Kind: pointer.Move, Position: f32.Pt(300, 200)}); len(got) != 0 {
		t.Errorf("move to the same spot produced %#v", got)
	}
}

func TestPointerTrackerCancel(t *testing.T) {
	var tr pointerTracker
	tr.Translate(pointer.Event{Kind: pointer.Press, Buttons: pointer.ButtonPrimary})
	got := tr.Translate(pointer.Event{Kind: pointer.Cancel})
	want := []Event{ButtonEvent{Button: ButtonLeft, Down: false}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("cancel: got %#v, want %#v", got, want)
	}
	if got := tr.Translate(pointer.Event{Kind: pointer.Move, Position: f32.Pt(50, 50)}); len(got) != 0 {
		t.Errorf("move after cancel produced %#v", got)
	}
}

func TestPointerTrackerScroll(t *testing.T) {
	tr := pointerTracker{WheelStep: 10}

	tests := []struct {
		scrollY float32
		want    []Event
	}{
		{-10, []Event{WheelEvent{Delta: 1}}},
		{20, []Event{WheelEvent{Delta: -2}}},
		{-5, []Event{WheelEvent{Delta: 0.5}}},
		{0, nil},
	}
	for _, tt := range tests {
		got := tr.Translate(pointer.Event{Kind: pointer.Scroll, Scroll: f32.Pt(0, tt.scrollY)})
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("scroll %v: got %#v, want %#v", tt.scrollY, got, tt.want)
		}
	}
}

func TestTranslateKey(t *testing.T) {
	got := translateKey(key.Event{Name: key.NameSpace, State: key.Press})
	want := []Event{KeyEvent{Name: key.NameSpace}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("press: got %#v", got)
	}
	if got := translateKey(key.Event{Name: key.NameSpace, State: key.Release}); got != nil {
		t.Errorf("release: got %#v", got)
	}
}
