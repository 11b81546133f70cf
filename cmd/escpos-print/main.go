// escpos-print sends text, images, QR codes and barcodes to an ESC/POS
// printer over USB, serial or TCP. With no device flag it writes the
// command stream to stdout, which is handy for piping into files or
// netcat.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/gousb"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/anonymouzz/escpos-go/log"
	"github.com/anonymouzz/escpos-go/printer"
	"github.com/anonymouzz/escpos-go/symbol"
)

func main() {
	var (
		serialPort = flag.String("serial", "", "serial port of the printer")
		baud       = flag.Int("baud", 9600, "serial baud rate")
		usbID      = flag.String("usb", "", "usb vendor:product in hex, e.g. 04b8:0202")
		netAddr    = flag.String("net", "", "tcp address of the printer, host:9100")

		text        = flag.String("text", "", "text to print")
		imagePath   = flag.String("image", "", "image file to print")
		qrText      = flag.String("qr", "", "text to print as a QR code")
		barcodeData = flag.String("barcode", "", "barcode data to print")
		symbology   = flag.String("symbology", "EAN13", "barcode symbology")
		bcWidth     = flag.Int("barcode-width", 64, "barcode width")
		bcHeight    = flag.Int("barcode-height", 4, "barcode height (native units)")

		align    = flag.String("align", "left", "text alignment")
		bold     = flag.Bool("bold", false, "bold text")
		codepage = flag.String("codepage", "", "device codepage for text")

		cashdraw   = flag.Int("cashdraw", 0, "kick the cash drawer on this pin")
		noCut      = flag.Bool("no-cut", false, "skip the automatic cut")
		nativeBC   = flag.Bool("native-barcode", false, "use the printer's barcode firmware")
		closeDelay = flag.Duration("close-delay", 0, "pause after releasing the device")
		debug      = flag.Bool("debug", false, "verbose logging")
	)
	flag.Parse()

	logger, err := log.New(*debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	ch, err := openChannel(*serialPort, *baud, *usbID, *netAddr)
	if err != nil {
		logger.Fatal("open printer", zap.Error(err))
	}

	opts := []printer.Option{
		printer.WithLogger(logger),
		printer.WithCapabilities(printer.Capabilities{
			NativeBarcode: *nativeBC,
			DPI:           203,
			MaxWidth:      512,
		}),
		printer.WithPostCloseDelay(*closeDelay),
	}
	if *noCut {
		opts = append(opts, printer.WithoutAutoCut())
	}
	sess := printer.NewSession(ch, opts...)

	err = run(sess, jobConfig{
		text:      *text,
		imagePath: *imagePath,
		qrText:    *qrText,
		barcode:   *barcodeData,
		symbology: *symbology,
		bcWidth:   *bcWidth,
		bcHeight:  *bcHeight,
		align:     *align,
		bold:      *bold,
		codepage:  *codepage,
		cashdraw:  *cashdraw,
	})
	if cerr := sess.CloseWith(err); cerr != nil {
		logger.Warn("teardown", zap.Error(cerr))
	}
	if err != nil {
		logger.Fatal("print failed", zap.Error(err))
	}
}

type jobConfig struct {
	text      string
	imagePath string
	qrText    string
	barcode   string
	symbology string
	bcWidth   int
	bcHeight  int
	align     string
	bold      bool
	codepage  string
	cashdraw  int
}

func run(sess *printer.Session, job jobConfig) error {
	attrs := map[string]string{"align": job.align}
	if job.bold {
		attrs["bold"] = "on"
	}
	if job.codepage != "" {
		attrs["codepage"] = job.codepage
	}
	if err := sess.Set(attrs); err != nil {
		return err
	}

	if job.text != "" {
		if err := sess.Text(job.text); err != nil {
			return err
		}
	}
	if job.imagePath != "" {
		if err := sess.Image(job.imagePath); err != nil {
			return err
		}
	}
	if job.qrText != "" {
		if err := sess.QR(job.qrText, symbol.QROptions{BoxSize: 4, Border: 1}); err != nil {
			return err
		}
	}
	if job.barcode != "" {
		if err := sess.Barcode(job.barcode, job.symbology, job.bcWidth, job.bcHeight, "below", "a"); err != nil {
			return err
		}
	}
	if job.cashdraw != 0 {
		if err := sess.Cashdraw(job.cashdraw); err != nil {
			return err
		}
	}
	return nil
}

func openChannel(serialPort string, baud int, usbID, netAddr string) (printer.Channel, error) {
	switch {
	case serialPort != "":
		return printer.OpenSerial(serialPort, baud)
	case usbID != "":
		vid, pid, err := parseUSBID(usbID)
		if err != nil {
			return nil, err
		}
		return printer.OpenUSB(vid, pid)
	case netAddr != "":
		return printer.OpenNetwork(netAddr)
	default:
		return printer.NewRawChannel(os.Stdout), nil
	}
}

func parseUSBID(id string) (gousb.ID, gousb.ID, error) {
	parts := strings.SplitN(id, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("usb id %q: want vendor:product", id)
	}
	vid, err := strconv.ParseUint(parts[0], 16, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("usb vendor id %q: %w", parts[0], err)
	}
	pid, err := strconv.ParseUint(parts[1], 16, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("usb product id %q: %w", parts[1], err)
	}
	return gousb.ID(vid), gousb.ID(pid), nil
}
