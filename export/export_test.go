package export

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/beka-birhanu/vinom-mazegen/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func plus(t *testing.T) maze.Snapshot {
	t.Helper()
	s, err := maze.DecodeCells(3, 3, "010111010")
	require.NoError(t, err)
	return s
}

func gray(img image.Image, x, y int) uint8 {
	return color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		err  error
	}{
		{"", FormatBMP, nil},
		{"bmp", FormatBMP, nil},
		{"PNG", FormatPNG, nil},
		{"gif", "", ErrUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, "image/png", FormatPNG.ContentType())
	assert.Equal(t, "image/bmp", FormatBMP.ContentType())
}

func TestImage(t *testing.T) {
	s := plus(t)

	t.Run("border and cells", func(t *testing.T) {
		img, err := Image(s, 1)
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 5, 5), img.Bounds())

		for i := 0; i < 5; i++ {
			assert.Zero(t, gray(img, i, 0))
			assert.Zero(t, gray(img, 0, i))
			assert.Zero(t, gray(img, i, 4))
			assert.Zero(t, gray(img, 4, i))
		}
		assert.Equal(t, uint8(0xff), gray(img, 2, 2))
		assert.Equal(t, uint8(0xff), gray(img, 2, 1))
		assert.Zero(t, gray(img, 1, 1))
	})

	t.Run("scaled", func(t *testing.T) {
		img, err := Image(s, 3)
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 15, 15), img.Bounds())

		for y := 6; y < 9; y++ {
			for x := 6; x < 9; x++ {
				assert.Equal(t, uint8(0xff), gray(img, x, y))
			}
		}
		assert.Zero(t, gray(img, 5, 5))
	})

	t.Run("invalid scale", func(t *testing.T) {
		_, err := Image(s, 0)
		assert.ErrorIs(t, err, ErrInvalidScale)
	})
}

func TestEncode(t *testing.T) {
	s := plus(t)

	t.Run("bmp", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, s, FormatBMP, 2))

		img, err := bmp.Decode(&buf)
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 10, 10), img.Bounds())
		assert.Equal(t, uint8(0xff), gray(img, 4, 4))
		assert.Zero(t, gray(img, 2, 2))
	})

	t.Run("png", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, s, FormatPNG, 1))

		img, err := png.Decode(&buf)
		require.NoError(t, err)
		assert.Equal(t, uint8(0xff), gray(img, 2, 3))
		assert.Zero(t, gray(img, 3, 3))
	})

	t.Run("unknown format", func(t *testing.T) {
		var buf bytes.Buffer
		assert.ErrorIs(t, Encode(&buf, s, Format("tiff"), 1), ErrUnknownFormat)
	})
}
