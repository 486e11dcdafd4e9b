package server

import (
	"context"
	"net"
	"syscall"
)

// listenPacket binds a UDP socket with SO_REUSEADDR set, so a restarted
// server can rebind while sockets from a previous run still linger.
func listenPacket(network, address string) (net.PacketConn, error) {
	lc := net.ListenConfig{
		Control: func(network, address string, c syscall.RawConn) error {
			var sockErr error
			if err := c.Control(func(fd uintptr) {
				sockErr = setSockoptReuseAddr(fd)
			}); err != nil {
				return err
			}
			return sockErr
		},
	}

	return lc.ListenPacket(context.Background(), network, address)
}
