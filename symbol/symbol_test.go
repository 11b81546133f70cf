package symbol

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/anonymouzz/escpos-go/command"
)

func TestQRBoxSizeScales(t *testing.T) {
	small, err := QR("hello", QROptions{BoxSize: 1})
	if err != nil {
		t.Fatal(err)
	}
	big, err := QR("hello", QROptions{BoxSize: 3})
	if err != nil {
		t.Fatal(err)
	}

	if small.Bounds().Dx() != small.Bounds().Dy() {
		t.Fatalf("QR not square: %v", small.Bounds())
	}
	if big.Bounds().Dx() != 3*small.Bounds().Dx() {
		t.Fatalf("box size 3 gave %d, want %d", big.Bounds().Dx(), 3*small.Bounds().Dx())
	}
}

func TestQRBoxSizeClamped(t *testing.T) {
	clamped, err := QR("hello", QROptions{BoxSize: 999})
	if err != nil {
		t.Fatal(err)
	}
	max, err := QR("hello", QROptions{BoxSize: command.MaxQRBoxSize})
	if err != nil {
		t.Fatal(err)
	}
	if clamped.Bounds() != max.Bounds() {
		t.Fatalf("oversized box %v, want clamp to %v", clamped.Bounds(), max.Bounds())
	}
}

func TestQRBorderAddsQuietZone(t *testing.T) {
	plain, err := QR("hello", QROptions{BoxSize: 2})
	if err != nil {
		t.Fatal(err)
	}
	bordered, err := QR("hello", QROptions{BoxSize: 2, Border: 1})
	if err != nil {
		t.Fatal(err)
	}
	if bordered.Bounds().Dx() != plain.Bounds().Dx()+4 {
		t.Fatalf("border 1 box 2 gave %d, want %d", bordered.Bounds().Dx(), plain.Bounds().Dx()+4)
	}
}

func TestBarcodeDPIScalesWidth(t *testing.T) {
	low, err := Barcode("4006381333931", command.EAN13, 75)
	if err != nil {
		t.Fatal(err)
	}
	high, err := Barcode("4006381333931", command.EAN13, 300)
	if err != nil {
		t.Fatal(err)
	}
	if high.Bounds().Dx() != 4*low.Bounds().Dx() {
		t.Fatalf("300 dpi width %d, want 4x the 75 dpi width %d", high.Bounds().Dx(), low.Bounds().Dx())
	}
}

func TestBarcodeUPCA(t *testing.T) {
	img, err := Barcode("036000291452", command.UPCA, 203)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() == 0 || img.Bounds().Dy() == 0 {
		t.Fatalf("empty UPC-A render: %v", img.Bounds())
	}
}

func TestBarcodeSymbologies(t *testing.T) {
	cases := []struct {
		sym  command.Symbology
		code string
	}{
		{command.EAN8, "96385074"},
		{command.Code39, "PRINT-1"},
		{command.ITF, "1234567895"},
		{command.NW7, "A40156B"},
	}
	for _, c := range cases {
		if _, err := Barcode(c.code, c.sym, 203); err != nil {
			t.Errorf("%s: %v", c.sym, err)
		}
	}
}

func TestBarcodeUPCEHasNoRenderer(t *testing.T) {
	_, err := Barcode("0123456", command.UPCE, 203)
	if !errors.Is(err, ErrNoRenderer) {
		t.Fatalf("got %v, want ErrNoRenderer", err)
	}
}

func TestBarcodeBadData(t *testing.T) {
	if _, err := Barcode("not-a-number", command.EAN13, 203); err == nil {
		t.Fatal("want an encode error for non-numeric EAN data")
	}
}
