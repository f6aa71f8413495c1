package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Settings struct {
	ZoomStep  float64
	WheelStep float64
	MinScale  float64
	MaxScale  float64
	SignOnly  bool
	FPS       float64
	Checker   bool
	HUD       bool
	Static    bool
	Verbose   bool

	Path string
}

func DefaultSettings() Settings {
	return Settings{
		ZoomStep:  DefaultZoomStep,
		WheelStep: 10,
	}
}

var settingKeys = []struct {
	name    string
	boolean bool
	usage   string
}{
	{"zoom-step", false, "zoom factor per wheel notch"},
	{"wheel-step", false, "scroll distance of one wheel notch, in pixels"},
	{"min-scale", false, "smallest zoom, 0 for no limit"},
	{"max-scale", false, "largest zoom, 0 for no limit"},
	{"sign-only", true, "zoom one step per wheel event, ignoring its distance"},
	{"fps", false, "redraw continuously at this rate, 0 to redraw on input"},
	{"checker", true, "draw a checkerboard behind transparent images"},
	{"hud", true, "show the zoom level"},
	{"static", true, "fit to window width, no pan or zoom"},
	{"verbose", true, "log input and frame timing"},
}

// Set assigns one setting from its textual form.
func (s *Settings) Set(key string, val string) error {
	var err error
	switch key {
	case "zoom-step":
		s.ZoomStep, err = parsePositive(val)
	case "wheel-step":
		s.WheelStep, err = parsePositive(val)
	case "min-scale":
		s.MinScale, err = parseNonNegative(val)
	case "max-scale":
		s.MaxScale, err = parseNonNegative(val)
	case "fps":
		s.FPS, err = parseNonNegative(val)
	case "sign-only":
		s.SignOnly, err = strconv.ParseBool(val)
	case "checker":
		s.Checker, err = strconv.ParseBool(val)
	case "hud":
		s.HUD, err = strconv.ParseBool(val)
	case "static":
		s.Static, err = strconv.ParseBool(val)
	case "verbose", "v":
		s.Verbose, err = strconv.ParseBool(val)
	default:
		return fmt.Errorf("unrecognised setting [%s]", key)
	}
	if err != nil {
		return fmt.Errorf("%s: %v", key, err)
	}
	return nil
}

func (s *Settings) Validate() error {
	if s.MinScale > 0 && s.MaxScale > 0 && s.MinScale > s.MaxScale {
		return fmt.Errorf("min-scale %g is larger than max-scale %g", s.MinScale, s.MaxScale)
	}
	// the view starts at, and resets to, scale 1
	if s.MinScale > 1 {
		return fmt.Errorf("min-scale %g is above 1", s.MinScale)
	}
	if s.MaxScale > 0 && s.MaxScale < 1 {
		return fmt.Errorf("max-scale %g is below 1", s.MaxScale)
	}
	return nil
}

func parsePositive(str string) (float64, error) {
	v, err := parseNumber(str)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, fmt.Errorf("%q must be positive", str)
	}
	return v, nil
}

func parseNonNegative(str string) (float64, error) {
	v, err := parseNumber(str)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("%q must not be negative", str)
	}
	return v, nil
}

// ReadConf applies key=value lines. Blank lines and lines starting with #
// are skipped.
func (s *Settings) ReadConf(r io.Reader, filename string) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("%s:%d: expected key=value", filename, lineNo)
		}
		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		if err := s.Set(key, val); err != nil {
			return fmt.Errorf("%s:%d: %v", filename, lineNo, err)
		}
	}
	return scanner.Err()
}

// ConfFile is where the optional settings file lives. It is only ever read.
func ConfFile() string {
	confdir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(confdir, "picview", "picview.conf")
}

// LoadSettings layers the config file at confPath (if there is one) and then
// the command line over the defaults.
func LoadSettings(args []string, confPath string) (Settings, error) {
	s := DefaultSettings()

	if confPath != "" {
		f, err := os.Open(confPath)
		if err == nil {
			err = s.ReadConf(f, confPath)
			f.Close()
			if err != nil {
				return s, &UsageError{Msg: err.Error()}
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return s, &UsageError{Msg: fmt.Sprintf("read %s: %v", confPath, err)}
		}
	}

	fs := flag.NewFlagSet("picview", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	for _, k := range settingKeys {
		name := k.name
		set := func(v string) error { return s.Set(name, v) }
		if k.boolean {
			fs.BoolFunc(name, k.usage, set)
		} else {
			fs.Func(name, k.usage, set)
		}
	}
	fs.BoolFunc("v", "same as -verbose", func(v string) error { return s.Set("v", v) })

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return s, err
		}
		return s, &UsageError{Msg: err.Error()}
	}
	if fs.NArg() != 1 {
		return s, &UsageError{Msg: "specify exactly one image to open"}
	}
	s.Path = fs.Arg(0)

	if err := s.Validate(); err != nil {
		return s, &UsageError{Msg: err.Error()}
	}
	return s, nil
}
