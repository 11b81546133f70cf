// Package command holds the ESC/POS byte vocabulary: fixed control
// sequences and the lookup tables that map external-facing names to the
// bytes the firmware expects. Everything here must match the printer
// manuals bit-for-bit.
package command

// Single control characters.
const (
	NUL byte = 0x00
	HT  byte = 0x09
	LF  byte = 0x0a
	VT  byte = 0x0b
	FF  byte = 0x0c
	CR  byte = 0x0d
)

var (
	// Reset is ESC @, initialize printer.
	Reset = []byte{0x1b, 0x40}

	// RasterMarker is GS v 0 with normal density, the prelude of a
	// raster image block.
	RasterMarker = []byte{0x1d, 0x76, 0x30, 0x00}

	// Paper cuts, GS V m.
	FullCut    = []byte{0x1d, 0x56, 0x00}
	PartialCut = []byte{0x1d, 0x56, 0x01}

	// CutPostfix feeds the gap between the last printed line and the
	// blade so the cut does not eat the tail of the receipt.
	CutPostfix = []byte{LF, LF, LF, LF, LF}

	// Cash drawer kicks, ESC p m.
	CashKick2 = []byte{0x1b, 0x70, 0x00}
	CashKick5 = []byte{0x1b, 0x70, 0x01}

	// Hardware operations.
	HWInit   = []byte{0x1b, 0x40}
	HWSelect = []byte{0x1b, 0x3d, 0x01}
	HWReset  = []byte{0x1b, 0x3f, 0x0a, 0x00}

	// StatusOnline is DLE EOT 1, a real-time status request.
	StatusOnline = []byte{0x10, 0x04, 0x01}
)

// Control maps feed-control names to their sequences.
var Control = map[string][]byte{
	"lf": {LF},
	"ff": {FF},
	"cr": {CR},
	"ht": {HT},
	"vt": {VT},
}

// TextStyle is the style vocabulary: key -> allowed value -> command.
// Values are the lower-cased forms expected at the session boundary.
var TextStyle = map[string]map[string][]byte{
	"bold": {
		"off": {0x1b, 0x45, 0x00},
		"on":  {0x1b, 0x45, 0x01},
	},
	"underline": {
		"none": {0x1b, 0x2d, 0x00},
		"1":    {0x1b, 0x2d, 0x01},
		"2":    {0x1b, 0x2d, 0x02},
	},
	"size": {
		"normal": {0x1d, 0x21, 0x00},
		"2w":     {0x1d, 0x21, 0x20},
		"2h":     {0x1d, 0x21, 0x10},
		"2x":     {0x1d, 0x21, 0x30},
	},
	"font": {
		"a": {0x1b, 0x4d, 0x00},
		"b": {0x1b, 0x4d, 0x01},
		"c": {0x1b, 0x4d, 0x02},
	},
	"align": {
		"left":   {0x1b, 0x61, 0x00},
		"center": {0x1b, 0x61, 0x01},
		"right":  {0x1b, 0x61, 0x02},
	},
	"inverted": {
		"off": {0x1d, 0x42, 0x00},
		"on":  {0x1d, 0x42, 0x01},
	},
	"color": {
		"1": {0x1b, 0x72, 0x00},
		"2": {0x1b, 0x72, 0x01},
	},
}

// StyleKeys fixes the order style commands are emitted in. Map
// iteration is randomized in Go and the device sees a byte stream, so
// the order has to be pinned somewhere.
var StyleKeys = []string{"bold", "underline", "size", "font", "align", "inverted", "color"}

// Codepage maps code-table names to the ESC t argument.
var Codepage = map[string]byte{
	"cp437":    0,
	"katakana": 1,
	"cp850":    2,
	"cp860":    3,
	"cp863":    4,
	"cp865":    5,
	"cp1252":   16,
	"cp866":    17,
	"cp852":    18,
	"cp858":    19,
}

// SelectCodepage builds ESC t n.
func SelectCodepage(n byte) []byte {
	return []byte{0x1b, 0x74, n}
}
