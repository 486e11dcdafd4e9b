package log

import (
	"fmt"
	"net"
	"os"
	"time"
)

// loggedPacketConn wraps a net.PacketConn and appends every datagram payload
// read or written to a capture file.
type loggedPacketConn struct {
	conn    net.PacketConn
	logFile *os.File
}

func (lc *loggedPacketConn) ReadFrom(b []byte) (int, net.Addr, error) {
	n, addr, err := lc.conn.ReadFrom(b)
	if n > 0 {
		if _, werr := lc.logFile.Write(b[:n]); werr != nil {
			return 0, nil, fmt.Errorf("reading: %s", werr)
		}
	}
	return n, addr, err
}

func (lc *loggedPacketConn) WriteTo(b []byte, addr net.Addr) (int, error) {
	n, err := lc.conn.WriteTo(b, addr)
	if n > 0 {
		if _, werr := lc.logFile.Write(b[:n]); werr != nil {
			return 0, fmt.Errorf("writing: %s", werr)
		}
	}
	return n, err
}

func (lc *loggedPacketConn) Close() error {
	lc.logFile.Close() // best effort
	return lc.conn.Close()
}

func (lc *loggedPacketConn) LocalAddr() net.Addr {
	return lc.conn.LocalAddr()
}

func (lc *loggedPacketConn) SetDeadline(t time.Time) error {
	return lc.conn.SetDeadline(t)
}

func (lc *loggedPacketConn) SetReadDeadline(t time.Time) error {
	return lc.conn.SetReadDeadline(t)
}

func (lc *loggedPacketConn) SetWriteDeadline(t time.Time) error {
	return lc.conn.SetWriteDeadline(t)
}

// NewLoggedPacketConn wraps a packet connection to log all datagram payloads
// read from and written to it. The log file is created or appended to at the
// specified path.
func NewLoggedPacketConn(conn net.PacketConn, logFilePath string) (net.PacketConn, error) {
	logFile, err := os.OpenFile(logFilePath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	return &loggedPacketConn{conn: conn, logFile: logFile}, nil
}
