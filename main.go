package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gioui.org/app"
	"gioui.org/layout"
	"gioui.org/unit"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

func usage(w io.Writer) {
	fmt.Fprintf(w, `usage: picview [options] <image>

options:
        -zoom-step <n>   Zoom factor per wheel notch (default 1.08).
        -wheel-step <n>  Scroll distance of one wheel notch in pixels (default 10).
        -min-scale <n>   Smallest zoom, 0 for no limit.
        -max-scale <n>   Largest zoom, 0 for no limit.
        -sign-only       Zoom one step per wheel event.
        -fps <n>         Redraw continuously at this rate.
        -checker         Checkerboard behind transparent images.
        -hud             Show the zoom level.
        -static          Fit to window width, no pan or zoom.
        -v, -verbose     Log input and frame timing.

Numbers may be expressions, e.g. -min-scale 1/64. The same keys can be set
as key=value lines in %s.

Drag with the left button to pan, use the wheel to zoom, press space to
reset the view.
`, ConfFile())
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// prepare does everything that can fail before a window is opened: it
// reads the settings, decodes the image and uploads the texture.
func prepare(args []string, confPath string, stderr io.Writer) (*Viewer, error) {
	s, err := LoadSettings(args, confPath)
	if err != nil {
		return nil, err
	}
	log := newLogger(stderr, s.Verbose)

	img, err := LoadImage(s.Path)
	if err != nil {
		return nil, err
	}
	log.Debug("decoded", "path", s.Path, "format", img.Format, "width", img.Width, "height", img.Height, "channels", img.Channels)

	return NewViewer(img, s, log)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "picview: %v\n", err)
	var ue *UsageError
	if errors.As(err, &ue) {
		usage(os.Stderr)
	}
	os.Exit(1)
}

func main() {
	v, err := prepare(os.Args[1:], ConfFile(), os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		usage(os.Stdout)
		os.Exit(0)
	} else if err != nil {
		fail(err)
	}

	go func() {
		// app.Size is in dp, so on a scaled display the window is bigger
		// than 1280x720 pixels; the first frame reports the real size.
		w := app.NewWindow(
			app.Title(v.Title()),
			app.Size(unit.Dp(InitialWidth), unit.Dp(InitialHeight)),
		)
		if err := v.Run(w); err != nil {
			fail(err)
		}
		os.Exit(0)
	}()

	app.Main()
}
