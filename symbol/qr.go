// Package symbol renders QR codes and barcodes as RGB images. The
// printer treats the result exactly like a user-supplied picture, so
// everything here feeds the same raster pipeline.
package symbol

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
	"github.com/pkg/errors"

	"github.com/anonymouzz/escpos-go/command"
)

// ErrorCorrection selects the QR redundancy level.
type ErrorCorrection int

const (
	CorrectionL ErrorCorrection = iota
	CorrectionM
	CorrectionQ
	CorrectionH
)

func (e ErrorCorrection) level() qr.ErrorCorrectionLevel {
	switch e {
	case CorrectionL:
		return qr.L
	case CorrectionQ:
		return qr.Q
	case CorrectionH:
		return qr.H
	default:
		return qr.M
	}
}

// QROptions tune the generated symbol.
type QROptions struct {
	// Version is accepted for parity with other producers; the
	// underlying encoder always picks the smallest version that fits.
	Version int

	// BoxSize is the dots per module, defaulting to 4 and clamped to
	// command.MaxQRBoxSize.
	BoxSize int

	// Border is the quiet zone in modules.
	Border int

	Correction ErrorCorrection
}

// QR renders text as a QR symbol image.
func QR(text string, opts QROptions) (image.Image, error) {
	if opts.BoxSize <= 0 {
		opts.BoxSize = 4
	}
	if opts.BoxSize > command.MaxQRBoxSize {
		opts.BoxSize = command.MaxQRBoxSize
	}
	if opts.Border < 0 {
		opts.Border = 0
	}

	code, err := qr.Encode(text, opts.Correction.level(), qr.Auto)
	if err != nil {
		return nil, errors.Wrap(err, "qr encode")
	}

	modules := code.Bounds().Dx()
	scaled, err := barcode.Scale(code, modules*opts.BoxSize, modules*opts.BoxSize)
	if err != nil {
		return nil, errors.Wrap(err, "qr scale")
	}
	return frame(scaled, opts.Border*opts.BoxSize), nil
}

// frame copies img onto a white canvas with a quiet-zone margin.
func frame(img image.Image, margin int) image.Image {
	if margin <= 0 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()+2*margin, b.Dy()+2*margin))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(margin, margin, margin+b.Dx(), margin+b.Dy()), img, b.Min, draw.Src)
	return dst
}
