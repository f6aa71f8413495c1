package main

import (
	"image"

	"gioui.org/op/paint"
)

type PixelFormat int

const (
	FormatUnknown PixelFormat = iota
	FormatRGB24
	FormatRGBA32
)

func (f PixelFormat) String() string {
	if f == FormatRGB24 {
		return "RGB24"
	} else if f == FormatRGBA32 {
		return "RGBA32"
	} else {
		return "UNKNOWN"
	}
}

// pixelFormat maps a channel count to a texture layout. Grey images are
// not mapped.
func pixelFormat(channels int) PixelFormat {
	switch channels {
	case 3:
		return FormatRGB24
	case 4:
		return FormatRGBA32
	}
	return FormatUnknown
}

// textureImage lays the pixels out as straight-alpha RGBA, which is what
// gio uploads. 4-channel images share their buffer.
func textureImage(im *Image) (*image.NRGBA, PixelFormat, error) {
	format := pixelFormat(im.Channels)
	r := image.Rect(0, 0, im.Width, im.Height)

	switch format {
	case FormatRGBA32:
		return &image.NRGBA{Pix: im.Pix, Stride: im.Stride(), Rect: r}, format, nil
	case FormatRGB24:
		dst := image.NewNRGBA(r)
		n := im.Width * im.Height
		for i := 0; i < n; i++ {
			dst.Pix[i*4] = im.Pix[i*3]
			dst.Pix[i*4+1] = im.Pix[i*3+1]
			dst.Pix[i*4+2] = im.Pix[i*3+2]
			dst.Pix[i*4+3] = 255
		}
		return dst, format, nil
	}
	return nil, FormatUnknown, &UnsupportedFormatError{Channels: im.Channels}
}

// newTexture uploads the image once. The returned op is never updated.
func newTexture(im *Image) (paint.ImageOp, PixelFormat, error) {
	src, format, err := textureImage(im)
	if err != nil {
		return paint.ImageOp{}, format, err
	}
	return paint.NewImageOp(src), format, nil
}
