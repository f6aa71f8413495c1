package main

import (
	"errors"
	"flag"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadConf(t *testing.T) {
	conf := `
# picview settings
zoom-step = 1.25
min-scale=1/64
max-scale = 2*8
checker=true
wheel-step = 120
`
	s := DefaultSettings()
	if err := s.ReadConf(strings.NewReader(conf), "test.conf"); err != nil {
		t.Fatal(err)
	}
	if s.ZoomStep != 1.25 || s.MinScale != 1.0/64 || s.MaxScale != 16 || !s.Checker || s.WheelStep != 120 {
		t.Errorf("settings = %+v", s)
	}
}

func TestReadConfErrors(t *testing.T) {
	tests := []struct {
		conf string
		want string
	}{
		{"zoom-step", "test.conf:1: expected key=value"},
		{"\ncolour=red", "test.conf:2: unrecognised setting [colour]"},
		{"zoom-step=0", "must be positive"},
		{"min-scale=-1", "must not be negative"},
		{"hud=maybe", "hud:"},
	}
	for _, tt := range tests {
		s := DefaultSettings()
		err := s.ReadConf(strings.NewReader(tt.conf), "test.conf")
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%q: got %v, want error containing %q", tt.conf, err, tt.want)
		}
	}
}

func TestLoadSettingsPrecedence(t *testing.T) {
	conf := writeFile(t, "picview.conf", []byte("zoom-step=1.5\nfps=60\n"))

	s, err := LoadSettings([]string{"-zoom-step", "1.1", "-hud", "-v", "cat.png"}, conf)
	if err != nil {
		t.Fatal(err)
	}
	if s.ZoomStep != 1.1 {
		t.Errorf("zoom-step = %v, want flag value 1.1", s.ZoomStep)
	}
	if s.FPS != 60 {
		t.Errorf("fps = %v, want config value 60", s.FPS)
	}
	if s.WheelStep != 10 {
		t.Errorf("wheel-step = %v, want default 10", s.WheelStep)
	}
	if !s.HUD || !s.Verbose {
		t.Errorf("bool flags not set: %+v", s)
	}
	if s.Path != "cat.png" {
		t.Errorf("path = %q", s.Path)
	}
}

func TestLoadSettingsMissingConf(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.conf")
	s, err := LoadSettings([]string{"a.png"}, missing)
	if err != nil {
		t.Fatal(err)
	}
	if s.ZoomStep != DefaultZoomStep {
		t.Errorf("zoom-step = %v", s.ZoomStep)
	}
}

func TestLoadSettingsUsage(t *testing.T) {
	tests := [][]string{
		{},
		{"a.png", "b.png"},
		{"-zoom-step", "nonsense", "a.png"},
		{"-no-such-flag", "a.png"},
		{"-min-scale", "4", "-max-scale", "2", "a.png"},
		{"-min-scale", "2", "-max-scale", "4", "a.png"},
		{"-max-scale", "1/2", "a.png"},
	}
	for _, args := range tests {
		_, err := LoadSettings(args, "")
		var ue *UsageError
		if !errors.As(err, &ue) {
			t.Errorf("%q: got %v, want UsageError", args, err)
		}
	}
}

func TestLoadSettingsScaleBoundsAroundOne(t *testing.T) {
	s, err := LoadSettings([]string{"-min-scale", "1", "-max-scale", "1", "a.png"}, "")
	if err != nil {
		t.Fatal(err)
	}

	c := NewControls(s)
	st := NewState()
	c.Handle(&st, WheelEvent{Delta: 3})
	c.Handle(&st, KeyEvent{Name: c.resetKey()})
	if st.View.Scale < s.MinScale || st.View.Scale > s.MaxScale {
		t.Errorf("scale %v outside [%v, %v]", st.View.Scale, s.MinScale, s.MaxScale)
	}
}

func TestLoadSettingsBadConf(t *testing.T) {
	conf := writeFile(t, "picview.conf", []byte("fps=fast\n"))
	_, err := LoadSettings([]string{"a.png"}, conf)
	var ue *UsageError
	if !errors.As(err, &ue) {
		t.Errorf("got %v, want UsageError", err)
	}
}

func TestLoadSettingsHelp(t *testing.T) {
	_, err := LoadSettings([]string{"-h"}, "")
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("got %v, want flag.ErrHelp", err)
	}
}
