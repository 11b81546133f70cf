package command

import (
	"bytes"
	"testing"
)

func TestSymbologyCommands(t *testing.T) {
	order := []Symbology{UPCA, UPCE, EAN13, EAN8, Code39, ITF, NW7}
	for i, sym := range order {
		want := []byte{0x1d, 0x6b, byte(i)}
		if !bytes.Equal(sym.Command(), want) {
			t.Errorf("%s command = % x, want % x", sym, sym.Command(), want)
		}
	}
}

func TestParseSymbology(t *testing.T) {
	for _, name := range []string{"EAN13", "ean13", "Ean13"} {
		sym, ok := ParseSymbology(name)
		if !ok || sym != EAN13 {
			t.Errorf("ParseSymbology(%q) = %v, %v", name, sym, ok)
		}
	}
	if _, ok := ParseSymbology("qr"); ok {
		t.Error("qr is not a GS k symbology")
	}
}

func TestStyleKeysMatchTable(t *testing.T) {
	if len(StyleKeys) != len(TextStyle) {
		t.Fatalf("%d ordered keys for %d table entries", len(StyleKeys), len(TextStyle))
	}
	for _, key := range StyleKeys {
		if _, ok := TextStyle[key]; !ok {
			t.Errorf("ordered key %q missing from the style table", key)
		}
	}
}

func TestSelectCodepageReturnsFreshSlice(t *testing.T) {
	a := SelectCodepage(2)
	a[2] = 0xff
	b := SelectCodepage(2)
	if b[2] != 2 {
		t.Fatal("SelectCodepage shares its backing array")
	}
}

func TestBarcodeParameterCommands(t *testing.T) {
	if !bytes.Equal(BarcodeHeight(100), []byte{0x1d, 0x68, 100}) {
		t.Errorf("height command = % x", BarcodeHeight(100))
	}
	if !bytes.Equal(BarcodeWidth(3), []byte{0x1d, 0x77, 3}) {
		t.Errorf("width command = % x", BarcodeWidth(3))
	}
}
