package symbol

import (
	"image"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/codabar"
	"github.com/boombuler/barcode/code39"
	"github.com/boombuler/barcode/ean"
	"github.com/boombuler/barcode/twooffive"
	"github.com/pkg/errors"

	"github.com/anonymouzz/escpos-go/command"
)

// ErrNoRenderer reports a symbology the graphic producer cannot draw.
// Printers with native barcode firmware may still handle it.
var ErrNoRenderer = errors.New("symbology has no graphic renderer")

// Barcode renders code as sym, sized for the requested dpi: module
// width grows with dpi and the bars stand half an inch tall.
func Barcode(code string, sym command.Symbology, dpi int) (image.Image, error) {
	var (
		bc  barcode.Barcode
		err error
	)
	switch sym {
	case command.EAN13, command.EAN8:
		bc, err = ean.Encode(code)
	case command.UPCA:
		// UPC-A is EAN-13 with a leading zero.
		bc, err = ean.Encode("0" + code)
	case command.Code39:
		bc, err = code39.Encode(code, true, false)
	case command.ITF:
		bc, err = twooffive.Encode(code, true)
	case command.NW7:
		bc, err = codabar.Encode(code)
	default:
		return nil, errors.Wrap(ErrNoRenderer, sym.String())
	}
	if err != nil {
		return nil, errors.Wrapf(err, "render %s", sym)
	}

	scale := dpi / 75
	if scale < 1 {
		scale = 1
	}
	width := bc.Bounds().Dx() * scale
	height := dpi / 2
	if height < bc.Bounds().Dy() {
		height = bc.Bounds().Dy()
	}

	scaled, err := barcode.Scale(bc, width, height)
	if err != nil {
		return nil, errors.Wrapf(err, "scale %s", sym)
	}
	return scaled, nil
}
