package image

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/pkg/errors"
)

// recorder keeps every Write as its own slice, so tests can check both
// the bytes and the write grouping.
type recorder struct {
	writes [][]byte
}

func (r *recorder) Write(p []byte) (int, error) {
	b := make([]byte, len(p))
	copy(b, p)
	r.writes = append(r.writes, b)
	return len(p), nil
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, errors.New("transport gone") }

func mustConvert(t *testing.T, w, h int, c color.Color) *Bitstream {
	t.Helper()
	var conv Converter
	bs, err := conv.Convert(solid(w, h, c))
	if err != nil {
		t.Fatal(err)
	}
	return bs
}

func TestEncodeAllWhite32x1(t *testing.T) {
	bs := mustConvert(t, 32, 1, color.White)

	var rec recorder
	var enc Encoder
	if err := enc.Encode(bs, &rec); err != nil {
		t.Fatal(err)
	}

	if len(rec.writes) != 3 {
		t.Fatalf("got %d writes, want marker+header+body", len(rec.writes))
	}
	if !bytes.Equal(rec.writes[0], []byte{0x1d, 0x76, 0x30, 0x00}) {
		t.Errorf("marker = % x", rec.writes[0])
	}
	if !bytes.Equal(rec.writes[1], []byte{4, 0, 1, 0}) {
		t.Errorf("header = % x, want widthBytes=4 height=1", rec.writes[1])
	}
	if !bytes.Equal(rec.writes[2], []byte{0, 0, 0, 0}) {
		t.Errorf("body = % x, want 4 zero bytes", rec.writes[2])
	}
}

func TestEncodeAllBlack32x1(t *testing.T) {
	bs := mustConvert(t, 32, 1, color.Black)

	var rec recorder
	var enc Encoder
	if err := enc.Encode(bs, &rec); err != nil {
		t.Fatal(err)
	}
	body := rec.writes[len(rec.writes)-1]
	if !bytes.Equal(body, []byte{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("body = % x, want 4 x ff", body)
	}
}

func TestEncodeBitOrder(t *testing.T) {
	// 1010 0001 packs to 0xa1 with the leftmost pixel in the high bit
	bs := &Bitstream{
		Bits:   []byte{1, 0, 1, 0, 0, 0, 0, 1},
		Width:  8,
		Height: 1,
	}

	var rec recorder
	var enc Encoder
	if err := enc.Encode(bs, &rec); err != nil {
		t.Fatal(err)
	}
	body := rec.writes[len(rec.writes)-1]
	if !bytes.Equal(body, []byte{0xa1}) {
		t.Errorf("body = % x, want a1", body)
	}
}

func TestEncodeBodyGrouping(t *testing.T) {
	bs := mustConvert(t, 64, 3, color.Black) // 8 bytes per row, 24 total

	var rec recorder
	var enc Encoder
	if err := enc.Encode(bs, &rec); err != nil {
		t.Fatal(err)
	}

	body := rec.writes[2:]
	if len(body) != 6 {
		t.Fatalf("got %d body writes, want 6 groups of %d", len(body), GroupSize)
	}
	for i, w := range body {
		if len(w) != GroupSize {
			t.Errorf("group %d has %d bytes, want %d", i, len(w), GroupSize)
		}
	}
}

func TestEncodeTrailingPartialGroup(t *testing.T) {
	bs := mustConvert(t, 32, 3, color.Black) // 12 packed bytes

	var rec recorder
	enc := Encoder{Group: 5}
	if err := enc.Encode(bs, &rec); err != nil {
		t.Fatal(err)
	}

	body := rec.writes[2:]
	sizes := make([]int, len(body))
	for i, w := range body {
		sizes[i] = len(w)
	}
	want := []int{5, 5, 2}
	if len(sizes) != len(want) {
		t.Fatalf("body write sizes %v, want %v", sizes, want)
	}
	for i := range want {
		if sizes[i] != want[i] {
			t.Fatalf("body write sizes %v, want %v", sizes, want)
		}
	}
}

func TestEncodeHeaderDeclaresPaddedWidth(t *testing.T) {
	bs := mustConvert(t, 100, 2, color.White) // pads to 128

	var rec recorder
	var enc Encoder
	if err := enc.Encode(bs, &rec); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(rec.writes[1], []byte{16, 0, 2, 0}) {
		t.Errorf("header = % x, want widthBytes=16 height=2", rec.writes[1])
	}
}

func TestEncodePropagatesWriteError(t *testing.T) {
	bs := mustConvert(t, 32, 1, color.White)
	var enc Encoder
	if err := enc.Encode(bs, failWriter{}); err == nil {
		t.Fatal("want a propagated write error")
	}
}
