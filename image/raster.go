package image

import (
	"io"

	"github.com/pkg/errors"

	"github.com/anonymouzz/escpos-go/command"
	"github.com/anonymouzz/escpos-go/util"
)

// GroupSize is how many packed bytes go into a single device write.
// The grouping bounds individual transfer sizes; the protocol itself
// does not require it.
const GroupSize = 4

// Encoder frames a Bitstream as a GS v 0 raster block, streaming the
// body so tall images never sit in memory twice. Header bytes always
// precede body bytes, and body groups go out in row-major order.
type Encoder struct {
	// Group overrides GroupSize when positive.
	Group int
}

// Encode writes the raster marker, the byte-width/height header and the
// packed body to w. Write failures propagate immediately, unretried.
func (e *Encoder) Encode(bs *Bitstream, w io.Writer) error {
	if _, err := w.Write(command.RasterMarker); err != nil {
		return errors.Wrap(err, "raster marker")
	}

	header := util.IntLowHigh(bs.Width/8, 2)
	header = append(header, util.IntLowHigh(bs.Height, 2)...)
	if _, err := w.Write(header); err != nil {
		return errors.Wrap(err, "raster header")
	}

	size := e.Group
	if size <= 0 {
		size = GroupSize
	}

	group := make([]byte, 0, size)
	for i := 0; i+8 <= len(bs.Bits); i += 8 {
		var b byte
		for j := 0; j < 8; j++ {
			b = b<<1 | bs.Bits[i+j]
		}
		group = append(group, b)
		if len(group) == size {
			if _, err := w.Write(group); err != nil {
				return errors.Wrap(err, "raster body")
			}
			group = group[:0]
		}
	}
	// trailing partial group
	if len(group) > 0 {
		if _, err := w.Write(group); err != nil {
			return errors.Wrap(err, "raster body")
		}
	}
	return nil
}
