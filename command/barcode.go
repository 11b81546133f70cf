package command

import "strings"

// Symbology enumerates the barcode families the GS k command accepts.
// The numeric value is the firmware's own code.
type Symbology byte

const (
	UPCA Symbology = iota
	UPCE
	EAN13
	EAN8
	Code39
	ITF
	NW7
)

var symbologyNames = map[string]Symbology{
	"upc-a":  UPCA,
	"upc-e":  UPCE,
	"ean13":  EAN13,
	"ean8":   EAN8,
	"code39": Code39,
	"itf":    ITF,
	"nw7":    NW7,
}

// ParseSymbology resolves a case-insensitive symbology name.
func ParseSymbology(name string) (Symbology, bool) {
	s, ok := symbologyNames[strings.ToLower(name)]
	return s, ok
}

func (s Symbology) String() string {
	for name, sym := range symbologyNames {
		if sym == s {
			return strings.ToUpper(name)
		}
	}
	return "UNKNOWN"
}

// Command builds GS k m for this symbology.
func (s Symbology) Command() []byte {
	return []byte{0x1d, 0x6b, byte(s)}
}

// TextPosition maps HRI text placement names to GS H n.
var TextPosition = map[string][]byte{
	"off":   {0x1d, 0x48, 0x00},
	"above": {0x1d, 0x48, 0x01},
	"below": {0x1d, 0x48, 0x02},
	"both":  {0x1d, 0x48, 0x03},
}

// Barcode HRI fonts, GS f n.
var (
	BarcodeFontA = []byte{0x1d, 0x66, 0x00}
	BarcodeFontB = []byte{0x1d, 0x66, 0x01}
)

// BarcodeHeight builds GS h n with the bar height in dots.
func BarcodeHeight(dots byte) []byte {
	return []byte{0x1d, 0x68, dots}
}

// BarcodeWidth builds GS w n with the module width.
func BarcodeWidth(n byte) []byte {
	return []byte{0x1d, 0x77, n}
}

// MaxQRBoxSize caps the dots-per-module of a generated QR symbol so a
// version-4 code with its quiet zone still fits a 512 dot line.
const MaxQRBoxSize = 12
