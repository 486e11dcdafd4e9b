// Package session declares the interface between the dispatcher and the
// application protocol layer. The dispatcher creates one session per
// connection when the engine reports protocol negotiation and then forwards
// the connection's entire event stream to it; what the session does with the
// events is its own business.
package session

import (
	"net"

	"dominicbreuker/quicmux/pkg/config"
	"dominicbreuker/quicmux/pkg/engine"
)

// FlushFunc sends every datagram the engine has queued for the session's
// connection. Sessions call it after feeding data into the engine so
// responses leave immediately.
type FlushFunc func() error

// Session consumes the engine event stream of one connection.
type Session interface {
	HandleEvent(ev engine.Event) error
}

// Factory builds the session for a connection once its application protocol
// has been negotiated. client is the address the negotiating datagram
// arrived from (nil when negotiation completed during a timer batch); server
// is the local listening address. flush is bound to the connection and stays
// valid for the session's lifetime.
type Factory func(cfg *config.Config, client, server net.Addr, conn engine.Conn, flush FlushFunc) (Session, error)
