package log

import (
	"bytes"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// memPacketConn serves queued datagrams and records writes.
type memPacketConn struct {
	readQueue [][]byte
	written   [][]byte
	closed    bool
}

func (c *memPacketConn) ReadFrom(b []byte) (int, net.Addr, error) {
	if len(c.readQueue) == 0 {
		return 0, nil, net.ErrClosed
	}
	data := c.readQueue[0]
	c.readQueue = c.readQueue[1:]
	n := copy(b, data)
	return n, &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 1234}, nil
}

func (c *memPacketConn) WriteTo(b []byte, addr net.Addr) (int, error) {
	c.written = append(c.written, append([]byte(nil), b...))
	return len(b), nil
}

func (c *memPacketConn) Close() error {
	c.closed = true
	return nil
}

func (c *memPacketConn) LocalAddr() net.Addr {
	return &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 4433}
}

func (c *memPacketConn) SetDeadline(t time.Time) error      { return nil }
func (c *memPacketConn) SetReadDeadline(t time.Time) error  { return nil }
func (c *memPacketConn) SetWriteDeadline(t time.Time) error { return nil }

func TestLoggedPacketConn(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "capture.bin")
	inner := &memPacketConn{readQueue: [][]byte{{0x03, 0x04, 0x05}}}

	pc, err := NewLoggedPacketConn(inner, path)
	if err != nil {
		t.Fatalf("NewLoggedPacketConn() error = %v", err)
	}

	if _, err := pc.WriteTo([]byte{0x01, 0x02}, inner.LocalAddr()); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}

	buf := make([]byte, 16)
	n, _, err := pc.ReadFrom(buf)
	if err != nil {
		t.Fatalf("ReadFrom() error = %v", err)
	}
	if !bytes.Equal(buf[:n], []byte{0x03, 0x04, 0x05}) {
		t.Errorf("ReadFrom() = %x; want 030405", buf[:n])
	}

	if err := pc.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !inner.closed {
		t.Error("Close() did not close the wrapped connection")
	}

	captured, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !bytes.Equal(captured, []byte{0x01, 0x02, 0x03, 0x04, 0x05}) {
		t.Errorf("capture = %x; want payloads in order written then read", captured)
	}
}

func TestLoggedPacketConn_Passthrough(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "capture.bin")
	inner := &memPacketConn{}

	pc, err := NewLoggedPacketConn(inner, path)
	if err != nil {
		t.Fatalf("NewLoggedPacketConn() error = %v", err)
	}
	defer pc.Close()

	if pc.LocalAddr().String() != inner.LocalAddr().String() {
		t.Error("LocalAddr() not passed through")
	}
}

func TestNewLoggedPacketConn_BadPath(t *testing.T) {
	t.Parallel()

	// a directory is not a writable log file
	if _, err := NewLoggedPacketConn(&memPacketConn{}, t.TempDir()); err == nil {
		t.Error("NewLoggedPacketConn() error = nil; want error")
	}
}
