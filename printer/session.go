// Package printer drives ESC/POS thermal printers over an exclusively
// owned command channel: text styling, raster images, QR codes,
// barcodes, cuts and drawer kicks. All I/O is synchronous and blocking;
// callers needing timeouts wrap the channel.
package printer

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"
	"time"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/anonymouzz/escpos-go/command"
	raster "github.com/anonymouzz/escpos-go/image"
	"github.com/anonymouzz/escpos-go/symbol"
)

// Capabilities describe what the attached printer can do on its own.
type Capabilities struct {
	// NativeBarcode reports GS k firmware support; without it barcodes
	// are rendered as raster images.
	NativeBarcode bool

	// DPI of the print head, used when rasterizing barcodes.
	DPI int

	// MaxWidth in dots. Wider images are downscaled before conversion.
	MaxWidth int
}

// Session drives one printer. It owns the channel exclusively and is
// not safe for concurrent use.
type Session struct {
	ch   Channel
	caps Capabilities

	style  Style
	conv   raster.Converter
	enc    raster.Encoder
	logger *zap.Logger

	autocut        bool
	autoclose      bool
	postCloseDelay time.Duration

	closed bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger routes advisories (oversized images, teardown trouble) to l.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithCapabilities overrides the default device profile.
func WithCapabilities(c Capabilities) Option {
	return func(s *Session) { s.caps = c }
}

// WithDither selects the monochrome reduction used for images.
func WithDither(m raster.Dither) Option {
	return func(s *Session) { s.conv.Mode = m }
}

// WithoutAutoCut suppresses the cut normally issued by Close.
func WithoutAutoCut() Option {
	return func(s *Session) { s.autocut = false }
}

// WithoutAutoClose leaves the channel open after Close; the caller owns
// its release.
func WithoutAutoClose() Option {
	return func(s *Session) { s.autoclose = false }
}

// WithPostCloseDelay pauses after the channel closes. USB kernel
// drivers can need a moment to re-claim the interface before the next
// open; the delay makes that wait explicit instead of hiding it in a
// finalizer.
func WithPostCloseDelay(d time.Duration) Option {
	return func(s *Session) { s.postCloseDelay = d }
}

// NewSession wraps ch. The zero configuration matches a common 203 dpi
// 80mm head with no native barcode firmware, auto-cut and auto-close on.
func NewSession(ch Channel, opts ...Option) *Session {
	s := &Session{
		ch:        ch,
		caps:      Capabilities{DPI: 203, MaxWidth: 512},
		style:     Style{Align: "left"},
		logger:    zap.NewNop(),
		autocut:   true,
		autoclose: true,
	}
	for _, o := range opts {
		o(s)
	}
	s.conv.Logger = s.logger
	return s
}

func (s *Session) raw(b []byte) error {
	_, err := s.ch.Write(b)
	return errors.Wrap(err, "device write")
}

// Raw writes bytes to the device unmodified.
func (s *Session) Raw(b []byte) error { return s.raw(b) }

// Reset reinitializes the printer and the session's style record.
func (s *Session) Reset() error {
	s.style = Style{Align: "left"}
	return s.raw(command.Reset)
}

// Set validates and applies text style attributes. Keys and values are
// case-insensitive at this boundary; the vocabulary is
// command.TextStyle plus the special "codepage" key, which selects the
// device code table used by Text. The style record is replaced wholly,
// with align defaulting to "left" when absent. Commands are emitted in
// command.StyleKeys order; a bad value aborts before its own command is
// written (earlier keys' commands are already out).
func (s *Session) Set(attrs map[string]string) error {
	norm := make(map[string]string, len(attrs))
	for k, v := range attrs {
		k = strings.ToLower(k)
		if k != "codepage" {
			if _, ok := command.TextStyle[k]; !ok {
				return errors.Wrap(ErrUnknownStyleKey, k)
			}
		}
		norm[k] = strings.ToLower(v)
	}

	next := Style{Align: "left"}
	for _, key := range command.StyleKeys {
		val, ok := norm[key]
		if !ok {
			continue
		}
		cmd, ok := command.TextStyle[key][val]
		if !ok {
			return errors.Wrapf(ErrInvalidStyleValue, "%s=%q", key, val)
		}
		if err := s.raw(cmd); err != nil {
			return err
		}
		next.set(key, val)
	}

	if cp, ok := norm["codepage"]; ok {
		code, known := command.Codepage[cp]
		if !known {
			return errors.Wrapf(ErrInvalidStyleValue, "codepage=%q", cp)
		}
		if err := s.raw(command.SelectCodepage(code)); err != nil {
			return err
		}
		next.Codepage = cp
	}

	s.style = next
	return nil
}

// Image loads the file at path and prints it as a raster bitmap,
// downscaling anything wider than the device profile first.
func (s *Session) Image(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	img, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		return errors.Wrapf(err, "decode %s", path)
	}

	if s.caps.MaxWidth > 0 && img.Bounds().Dx() > s.caps.MaxWidth {
		img = resize.Resize(uint(s.caps.MaxWidth), 0, img, resize.Lanczos3)
	}
	return s.printImage(img)
}

// QR renders text as a QR symbol and prints it.
func (s *Session) QR(text string, opts symbol.QROptions) error {
	img, err := symbol.QR(text, opts)
	if err != nil {
		return err
	}
	return s.printImage(img)
}

// printImage runs the convert/encode pipeline. Raster output is
// centered on the paper and the session's alignment restored after.
// Conversion happens first so a too-tall image writes nothing at all.
func (s *Session) printImage(img image.Image) error {
	bs, err := s.conv.Convert(img)
	if err != nil {
		return err
	}
	if err := s.raw(command.TextStyle["align"]["center"]); err != nil {
		return err
	}
	if err := s.enc.Encode(bs, s.ch); err != nil {
		return err
	}
	return s.raw(command.TextStyle["align"][s.style.Align])
}

// Barcode prints code either through the printer's barcode firmware or
// as a rasterized image, depending on capabilities. pos places the
// human-readable text (off/above/below/both, default below); font picks
// the HRI font (a/b). width and height only gate the native path.
func (s *Session) Barcode(code, symbology string, width, height int, pos, font string) error {
	sym, ok := command.ParseSymbology(symbology)
	if !ok {
		return errors.Wrap(ErrUnsupportedBarcodeType, symbology)
	}
	if code == "" {
		return ErrEmptyBarcodeData
	}
	if s.caps.NativeBarcode {
		return s.nativeBarcode(code, sym, width, height, pos, font)
	}
	return s.graphicBarcode(code, sym, width)
}

func (s *Session) nativeBarcode(code string, sym command.Symbology, width, height int, pos, font string) error {
	if height < 2 || height > 6 {
		return errors.Wrapf(ErrBarcodeDimension, "height %d not in [2,6]", height)
	}
	if width < 1 || width > 255 {
		return errors.Wrapf(ErrBarcodeDimension, "width %d not in [1,255]", width)
	}

	if err := s.raw(command.TextStyle["align"]["center"]); err != nil {
		return err
	}

	posCmd, ok := command.TextPosition[strings.ToLower(pos)]
	if !ok {
		posCmd = command.TextPosition["below"]
	}
	if err := s.raw(posCmd); err != nil {
		return err
	}

	// height units map to 40 dots per step, keeping [2,6] inside the
	// usual 80..240 dot band
	if err := s.raw(command.BarcodeHeight(byte(height * 40))); err != nil {
		return err
	}
	if err := s.raw(command.BarcodeWidth(byte(width))); err != nil {
		return err
	}

	fontCmd := command.BarcodeFontA
	if strings.EqualFold(font, "b") {
		fontCmd = command.BarcodeFontB
	}
	if err := s.raw(fontCmd); err != nil {
		return err
	}

	if err := s.raw(sym.Command()); err != nil {
		return err
	}
	if err := s.raw(append([]byte(code), command.NUL)); err != nil {
		return err
	}
	if err := s.raw(command.Control["lf"]); err != nil {
		return err
	}
	return s.raw(command.TextStyle["align"][s.style.Align])
}

func (s *Session) graphicBarcode(code string, sym command.Symbology, width int) error {
	dpi := s.caps.DPI
	switch {
	case width > 180:
		dpi = 300
	case width > 90:
		dpi = 180
	}

	img, err := symbol.Barcode(code, sym, dpi)
	if err != nil {
		if errors.Is(err, symbol.ErrNoRenderer) {
			return errors.Wrap(ErrUnsupportedBarcodeType, sym.String())
		}
		return err
	}
	return s.printImage(img)
}

// Cut feeds past the last printed line and cuts the paper. mode "part"
// does a partial cut, anything else a full one. A nil postfix uses the
// default pre-cut spacing.
func (s *Session) Cut(mode string, postfix []byte) error {
	if postfix == nil {
		postfix = command.CutPostfix
	}
	if err := s.raw(postfix); err != nil {
		return err
	}
	cut := command.FullCut
	if strings.EqualFold(mode, "part") {
		cut = command.PartialCut
	}
	if err := s.raw(cut); err != nil {
		return err
	}
	return s.raw(command.Control["ff"])
}

// Cashdraw pulses the drawer kick on pin 2 or 5.
func (s *Session) Cashdraw(pin int) error {
	switch pin {
	case 2:
		return s.raw(command.CashKick2)
	case 5:
		return s.raw(command.CashKick5)
	}
	return errors.Wrapf(ErrInvalidCashDrawerPin, "pin %d", pin)
}

// Hardware runs init/select/reset. Unknown operations do nothing, and
// every call forgets the selected codepage, since the device does too.
func (s *Session) Hardware(op string) error {
	var err error
	switch strings.ToLower(op) {
	case "init":
		err = s.raw(command.HWInit)
	case "select":
		err = s.raw(command.HWSelect)
	case "reset":
		err = s.raw(command.HWReset)
	}
	s.style.Codepage = ""
	return err
}

// Control sends a feed control sequence: lf, ff, cr, ht or vt.
func (s *Session) Control(ctl string) error {
	if cmd, ok := command.Control[strings.ToLower(ctl)]; ok {
		return s.raw(cmd)
	}
	return nil
}

// Online polls printer status (DLE EOT 1). False when the device does
// not answer or reports offline.
func (s *Session) Online() bool {
	if _, err := s.ch.Write(command.StatusOnline); err != nil {
		return false
	}
	buf := make([]byte, 1)
	n, err := s.ch.Read(buf)
	if err != nil || n == 0 {
		return false
	}
	return buf[0]&0x08 == 0
}

// Close is CloseWith(nil): cut, then release the device.
func (s *Session) Close() error { return s.CloseWith(nil) }

// CloseWith finishes the session. A non-nil cause skips the automatic
// cut — a failed print should not cut mid-page — but the channel close
// still runs, and runs exactly once no matter how often Close is
// called. A cut failure never suppresses the close; both errors come
// back combined.
func (s *Session) CloseWith(cause error) error {
	if s.closed {
		return nil
	}
	s.closed = true

	var err error
	if s.autocut && cause == nil {
		err = s.Cut("full", nil)
	}
	if s.autoclose {
		if cerr := s.ch.Close(); cerr != nil {
			// transport may already be gone; report, don't panic
			s.logger.Warn("device close failed", zap.Error(cerr))
			err = multierr.Append(err, cerr)
		}
		if s.postCloseDelay > 0 {
			time.Sleep(s.postCloseDelay)
		}
	}
	return err
}
