package main

import (
	"time"
)

// Pacer sets the redraw cadence. A zero FPS means frames are only drawn in
// response to input, and gio presents them in step with the display.
type Pacer struct {
	FPS float64
}

func (p Pacer) Interval() time.Duration {
	if p.FPS <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / p.FPS)
}

// Next returns the first frame deadline after now, on a fixed grid so that
// slow frames don't make the rate drift. It returns the zero time when
// pacing is off.
func (p Pacer) Next(now time.Time) time.Time {
	iv := p.Interval()
	if iv <= 0 {
		return time.Time{}
	}
	return now.Truncate(iv).Add(iv)
}
