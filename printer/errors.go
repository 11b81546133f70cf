package printer

import "github.com/pkg/errors"

// Fatal command errors. Each aborts the call that raised it and leaves
// the session usable for subsequent calls.
var (
	ErrUnknownStyleKey        = errors.New("unknown style key")
	ErrInvalidStyleValue      = errors.New("invalid style value")
	ErrUnsupportedBarcodeType = errors.New("unsupported barcode symbology")
	ErrBarcodeDimension       = errors.New("barcode dimensions out of range")
	ErrEmptyBarcodeData       = errors.New("empty barcode data")
	ErrInvalidCashDrawerPin   = errors.New("cash drawer pin must be 2 or 5")
)
