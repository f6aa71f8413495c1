package main

import (
	"errors"
	"testing"
)

func TestPixelFormat(t *testing.T) {
	tests := []struct {
		channels int
		want     PixelFormat
	}{
		{1, FormatUnknown},
		{2, FormatUnknown},
		{3, FormatRGB24},
		{4, FormatRGBA32},
		{5, FormatUnknown},
	}
	for _, tt := range tests {
		if got := pixelFormat(tt.channels); got != tt.want {
			t.Errorf("pixelFormat(%d) = %v, want %v", tt.channels, got, tt.want)
		}
	}
}

func TestTextureImageRGB(t *testing.T) {
	im := &Image{Width: 2, Height: 1, Channels: 3, Pix: []byte{1, 2, 3, 4, 5, 6}}
	dst, format, err := textureImage(im)
	if err != nil {
		t.Fatal(err)
	}
	if format != FormatRGB24 {
		t.Errorf("format = %v", format)
	}
	want := []byte{1, 2, 3, 255, 4, 5, 6, 255}
	if string(dst.Pix) != string(want) {
		t.Errorf("pixels = %v, want %v", dst.Pix, want)
	}
	if dst.Bounds().Dx() != 2 || dst.Bounds().Dy() != 1 {
		t.Errorf("bounds = %v", dst.Bounds())
	}
}

func TestTextureImageRGBAShares(t *testing.T) {
	im := &Image{Width: 1, Height: 2, Channels: 4, Pix: []byte{1, 2, 3, 4, 5, 6, 7, 8}}
	dst, format, err := textureImage(im)
	if err != nil {
		t.Fatal(err)
	}
	if format != FormatRGBA32 {
		t.Errorf("format = %v", format)
	}
	if &dst.Pix[0] != &im.Pix[0] {
		t.Error("RGBA texture copied the pixel buffer")
	}
	if dst.Stride != 4 {
		t.Errorf("stride = %d", dst.Stride)
	}
}

func TestTextureImageGrey(t *testing.T) {
	for _, ch := range []int{1, 2} {
		im := &Image{Width: 1, Height: 1, Channels: ch, Pix: make([]byte, ch)}
		_, _, err := textureImage(im)
		var ue *UnsupportedFormatError
		if !errors.As(err, &ue) || ue.Channels != ch {
			t.Errorf("%d channels: got %v, want UnsupportedFormatError", ch, err)
		}
	}
}
