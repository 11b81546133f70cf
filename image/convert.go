// Package image converts pictures into the 1-bit padded stream the
// ESC/POS raster command consumes, and frames that stream as device
// writes.
package image

import (
	"image"

	"github.com/MaxHalford/halfgone"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	// MaxHeight is the tallest image the raster header can describe;
	// exceeding it is a hard error.
	MaxHeight = 255

	// AdvisoryWidth is where common print heads start truncating.
	// Wider images still convert, with a warning.
	AdvisoryWidth = 512
)

// ErrImageTooTall reports an image taller than MaxHeight lines.
var ErrImageTooTall = errors.New("image taller than 255 lines")

// Dither selects the monochrome reduction applied during conversion.
type Dither int

const (
	// DitherPattern is the fixed 3-level ordered pattern: dark pixels
	// print solid, midtones print a checkerboard, light pixels stay
	// blank.
	DitherPattern Dither = iota

	// DitherFloydSteinberg applies error diffusion before
	// thresholding.
	DitherFloydSteinberg
)

// Converter turns an RGB image into a Bitstream.
type Converter struct {
	Mode   Dither
	Logger *zap.Logger
}

// Bitstream is a row-major monochrome grid, one byte per bit (0 or 1),
// padded so Width is a multiple of 32. Rows run top to bottom.
type Bitstream struct {
	Bits   []byte
	Width  int
	Height int
}

// Border returns the left and right zero-bit padding that rounds width
// up to the next multiple of 32, split as evenly as possible with the
// odd dot going right.
func Border(width int) (left, right int) {
	b := (32 - width%32) % 32
	return b / 2, b - b/2
}

// luminance thresholds for the 3-level pattern: R+G+B ranges over
// 0..765 and each level takes an equal third, boundary values falling
// into the darker bucket.
const (
	darkMax = 255
	midMax  = 510
)

// Convert produces the padded bitstream for img. The midtone
// checkerboard toggle advances once per pixel and deliberately does not
// reset at row boundaries.
func (c *Converter) Convert(img image.Image) (*Bitstream, error) {
	sz := img.Bounds().Size()
	if sz.Y > MaxHeight {
		return nil, errors.Wrapf(ErrImageTooTall, "%d lines", sz.Y)
	}
	if sz.X > AdvisoryWidth {
		c.logger().Warn("image wider than the print head, may truncate",
			zap.Int("width", sz.X),
			zap.Int("advisory", AdvisoryWidth))
	}

	if c.Mode == DitherFloydSteinberg {
		var fs halfgone.FloydSteinbergDitherer
		img = fs.Apply(halfgone.ImageToGray(img))
	}

	left, right := Border(sz.X)
	width := sz.X + left + right
	min := img.Bounds().Min

	var pad [32]byte
	bits := make([]byte, 0, width*sz.Y)
	mid := byte(0)
	for y := 0; y < sz.Y; y++ {
		bits = append(bits, pad[:left]...)
		for x := 0; x < sz.X; x++ {
			r, g, b, _ := img.At(min.X+x, min.Y+y).RGBA()
			lum := int(r>>8) + int(g>>8) + int(b>>8)
			mid ^= 1
			switch {
			case lum <= darkMax:
				bits = append(bits, 1)
			case lum <= midMax:
				bits = append(bits, mid)
			default:
				bits = append(bits, 0)
			}
		}
		bits = append(bits, pad[:right]...)
	}

	return &Bitstream{Bits: bits, Width: width, Height: sz.Y}, nil
}

func (c *Converter) logger() *zap.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return zap.NewNop()
}
