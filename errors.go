package main

import (
	"fmt"
)

// UsageError means the command line or config file could not be used.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

// DecodeError means the image file could not be read or decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("decode image: %v", e.Err)
	}
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// PlatformInitError means the window or rendering surface could not be set up.
type PlatformInitError struct {
	Op  string
	Err error
}

func (e *PlatformInitError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PlatformInitError) Unwrap() error {
	return e.Err
}

// UnsupportedFormatError means the channel count has no texture pixel format.
type UnsupportedFormatError struct {
	Channels int
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("pixel format could not be interpreted: %d channel(s)", e.Channels)
}
