package main

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "github.com/xfmoulet/qoi"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image is a decoded raster image with its channels interleaved per pixel:
//
//	Channels  components
//	   1      grey
//	   2      grey, alpha
//	   3      red, green, blue
//	   4      red, green, blue, alpha
type Image struct {
	Width    int
	Height   int
	Channels int
	Format   string
	Pix      []byte
}

// Stride is the number of bytes in one row of Pix.
func (im *Image) Stride() int {
	return im.Width * im.Channels
}

func LoadImage(name string) (*Image, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, &DecodeError{Path: name, Err: err}
	}
	im, err := DecodeImage(data)
	if err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			de.Path = name
		}
		return nil, err
	}
	return im, nil
}

// DecodeImage decodes an in-memory file, keeping its native channel count.
func DecodeImage(data []byte) (*Image, error) {
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	b := src.Bounds()
	if b.Empty() {
		return nil, &DecodeError{Err: errors.New("image has no pixels")}
	}

	channels := nativeChannels(format, data, src)
	return &Image{
		Width:    b.Dx(),
		Height:   b.Dy(),
		Channels: channels,
		Format:   format,
		Pix:      interleave(src, channels),
	}, nil
}

// nativeChannels reports how many components the file stores per pixel.
// PNG and QOI say so in their headers; everything else is judged by the
// colour model the decoder picked.
func nativeChannels(format string, data []byte, src image.Image) int {
	switch format {
	case "png":
		if n := pngChannels(data); n > 0 {
			return n
		}
	case "qoi":
		// "qoif", width, height, channels, colorspace
		if len(data) >= 14 && (data[12] == 3 || data[12] == 4) {
			return int(data[12])
		}
	case "gif":
		return 4
	}

	switch m := src.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.YCbCr, *image.CMYK:
		return 3
	case *image.Paletted:
		for _, c := range m.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return 4
			}
		}
		return 3
	case *image.RGBA:
		if m.Opaque() {
			return 3
		}
	case *image.RGBA64:
		if m.Opaque() {
			return 3
		}
	}
	return 4
}

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// pngChannels reads the IHDR colour type, and adds an alpha channel when a
// tRNS chunk turns up before the image data. It returns 0 if the header
// can't be understood.
func pngChannels(data []byte) int {
	if len(data) < 33 || !bytes.Equal(data[:8], pngSignature) || string(data[12:16]) != "IHDR" {
		return 0
	}

	var n int
	switch data[25] {
	case 0:
		n = 1
	case 2, 3:
		n = 3
	case 4:
		return 2
	case 6:
		return 4
	default:
		return 0
	}

	for off := 8; off+8 <= len(data); {
		length := int(binary.BigEndian.Uint32(data[off:]))
		kind := string(data[off+4 : off+8])
		if kind == "tRNS" {
			return n + 1
		}
		if kind == "IDAT" || kind == "IEND" || length < 0 {
			break
		}
		off += 12 + length
	}
	return n
}

func interleave(src image.Image, channels int) []byte {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := make([]byte, w*h*channels)

	if m, ok := src.(*image.NRGBA); ok && channels == 4 {
		for y := 0; y < h; y++ {
			row := m.Pix[m.PixOffset(b.Min.X, b.Min.Y+y):]
			copy(pix[y*w*4:(y+1)*w*4], row[:w*4])
		}
		return pix
	}

	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			switch channels {
			case 1:
				pix[i] = luma(c)
			case 2:
				pix[i] = luma(c)
				pix[i+1] = c.A
			case 3:
				pix[i] = c.R
				pix[i+1] = c.G
				pix[i+2] = c.B
			case 4:
				pix[i] = c.R
				pix[i+1] = c.G
				pix[i+2] = c.B
				pix[i+3] = c.A
			}
			i += channels
		}
	}
	return pix
}

// luma is the grey level of the colour with its alpha ignored.
func luma(c color.NRGBA) uint8 {
	return color.GrayModel.Convert(color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}).(color.Gray).Y
}
