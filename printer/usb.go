package printer

import (
	"github.com/google/gousb"
	"github.com/pkg/errors"
)

// usbChannel owns the whole gousb handle chain and releases it in
// reverse acquisition order.
type usbChannel struct {
	ctx  *gousb.Context
	dev  *gousb.Device
	cfg  *gousb.Config
	intf *gousb.Interface
	out  *gousb.OutEndpoint
	in   *gousb.InEndpoint
}

// OpenUSB claims the printer at vendorID:productID and returns it as a
// command channel. The kernel driver is detached while the interface is
// held.
func OpenUSB(vendorID, productID gousb.ID) (Channel, error) {
	ctx := gousb.NewContext()

	dev, err := ctx.OpenDeviceWithVIDPID(vendorID, productID)
	if err != nil {
		ctx.Close()
		return nil, errors.Wrap(err, "open usb device")
	}
	if dev == nil {
		ctx.Close()
		return nil, errors.Errorf("usb device %s:%s not found", vendorID, productID)
	}

	dev.SetAutoDetach(true)

	cfg, err := dev.Config(1)
	if err != nil {
		dev.Close()
		ctx.Close()
		return nil, errors.Wrap(err, "usb config")
	}

	intf, err := cfg.Interface(0, 0)
	if err != nil {
		cfg.Close()
		dev.Close()
		ctx.Close()
		return nil, errors.Wrap(err, "usb interface")
	}

	out, err := intf.OutEndpoint(0x01)
	if err != nil {
		intf.Close()
		cfg.Close()
		dev.Close()
		ctx.Close()
		return nil, errors.Wrap(err, "usb out endpoint")
	}

	// status reads are optional, many cheap printers have no IN endpoint
	in, err := intf.InEndpoint(0x01)
	if err != nil {
		in = nil
	}

	return &usbChannel{ctx: ctx, dev: dev, cfg: cfg, intf: intf, out: out, in: in}, nil
}

func (u *usbChannel) Write(p []byte) (int, error) {
	return u.out.Write(p)
}

func (u *usbChannel) Read(p []byte) (int, error) {
	if u.in == nil {
		return 0, errors.New("usb read not supported")
	}
	return u.in.Read(p)
}

func (u *usbChannel) Close() error {
	if u.intf != nil {
		u.intf.Close()
		u.intf = nil
	}
	if u.cfg != nil {
		u.cfg.Close()
		u.cfg = nil
	}
	if u.dev != nil {
		u.dev.Close()
		u.dev = nil
	}
	if u.ctx != nil {
		u.ctx.Close()
		u.ctx = nil
	}
	return nil
}
