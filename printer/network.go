package printer

import (
	"net"

	"github.com/pkg/errors"
)

// OpenNetwork dials a raw-socket printer, the JetDirect convention of
// host:9100. The connection is used as-is: no spooling, no job framing.
func OpenNetwork(addr string) (Channel, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "dial printer %s", addr)
	}
	return &RawChannel{conn: conn}, nil
}
