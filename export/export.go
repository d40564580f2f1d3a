// Package export rasterizes maze snapshots into images.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"github.com/beka-birhanu/vinom-mazegen/maze"
	"golang.org/x/image/bmp"
)

// Format is an image encoding.
type Format string

const (
	FormatBMP Format = "bmp"
	FormatPNG Format = "png"
)

var (
	ErrUnknownFormat = errors.New("export: unknown image format")
	ErrInvalidScale  = errors.New("export: scale must be at least 1")
)

// ParseFormat accepts "bmp" and "png" in any case. An empty name is BMP.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case "", FormatBMP:
		return FormatBMP, nil
	case FormatPNG:
		return FormatPNG, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/bmp"
}

// Image draws s with a one-cell wall border, each cell scale pixels wide.
// Carved cells are white, everything else black.
func Image(s maze.Snapshot, scale int) (*image.Gray, error) {
	if scale < 1 {
		return nil, ErrInvalidScale
	}

	img := image.NewGray(image.Rect(0, 0, (s.Width+2)*scale, (s.Height+2)*scale))
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			if !s.Visited(x, y) {
				continue
			}
			fill(img, (x+1)*scale, (y+1)*scale, scale, color.Gray{Y: 0xff})
		}
	}
	return img, nil
}

func fill(img *image.Gray, x0, y0, size int, c color.Gray) {
	for y := y0; y < y0+size; y++ {
		for x := x0; x < x0+size; x++ {
			img.SetGray(x, y, c)
		}
	}
}

// Encode writes s to w in format f.
func Encode(w io.Writer, s maze.Snapshot, f Format, scale int) error {
	img, err := Image(s, scale)
	if err != nil {
		return err
	}

	switch f {
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatPNG:
		return png.Encode(w, img)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}
