package printer

import (
	"time"

	"github.com/pkg/errors"
	"go.bug.st/serial"
)

// OpenSerial opens a serial port as a command channel, 8N1 at the given
// baud rate. The port must appear in the system's port list.
func OpenSerial(portName string, baudRate int) (Channel, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, errors.Wrap(err, "list serial ports")
	}
	if !contains(ports, portName) {
		return nil, errors.Errorf("serial port %s not found", portName)
	}

	mode := &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(portName, mode)
	if err != nil {
		return nil, errors.Wrapf(err, "open serial port %s", portName)
	}

	// short timeout so status polls do not hang on mute printers
	if err := port.SetReadTimeout(100 * time.Millisecond); err != nil {
		port.Close()
		return nil, errors.Wrap(err, "set read timeout")
	}

	return &RawChannel{conn: port}, nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
