package printer

import "io"

// Channel is the byte sink a session drives. Writes block until the
// transport accepts the bytes; there is no retry and no internal
// buffering. Close must tolerate a transport that is already gone.
type Channel interface {
	io.ReadWriteCloser
}

// RawChannel passes bytes straight through to an underlying connection.
type RawChannel struct {
	conn io.ReadWriteCloser
}

// NewRawChannel wraps any io.ReadWriter as a channel. Writers without a
// Close method get a no-op one, which keeps bytes.Buffer and os.Stdout
// usable as fake printers.
func NewRawChannel(conn io.ReadWriter) *RawChannel {
	if rc, ok := conn.(io.ReadWriteCloser); ok {
		return &RawChannel{conn: rc}
	}
	return &RawChannel{conn: nopCloser{conn}}
}

func (r *RawChannel) Write(b []byte) (int, error) { return r.conn.Write(b) }
func (r *RawChannel) Read(b []byte) (int, error)  { return r.conn.Read(b) }
func (r *RawChannel) Close() error                { return r.conn.Close() }

type nopCloser struct {
	io.ReadWriter
}

func (nopCloser) Close() error { return nil }
