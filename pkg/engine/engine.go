// Package engine declares the interfaces of the QUIC protocol engine, the
// external collaborator that implements the wire-level state machine,
// cryptographic handshake and frame encoding. The dispatcher only routes
// datagrams to engine connections and reacts to the events they emit; it
// never looks inside connection state.
package engine

import (
	"crypto/tls"
	"net"
	"time"
)

// DefaultALPN is the single application protocol negotiated by default.
const DefaultALPN = "h3"

// Datagram is an outbound payload the engine has queued for transmission,
// together with its destination address.
type Datagram struct {
	Data []byte
	Addr net.Addr
}

// Conn is the per-connection protocol state machine. Implementations own all
// handshake and stream state; callers hold a Conn only as a routing and
// dispatch key. Conn is not safe for concurrent use: the dispatcher
// serializes all calls for one connection.
type Conn interface {
	// ReceiveDatagram feeds a raw datagram into the state machine. The
	// engine is responsible for decryption, reassembly and queueing the
	// resulting events.
	ReceiveDatagram(data []byte, addr net.Addr, now time.Time)

	// NextEvent pops the next pending event in emission order, or nil if
	// the queue is drained.
	NextEvent() Event

	// DatagramsToSend drains every datagram queued for transmission, in
	// emission order.
	DatagramsToSend(now time.Time) []Datagram

	// Timer returns the next wake deadline, if any. The connection must be
	// given a chance to run time-based logic at that instant even absent
	// new input.
	Timer() (time.Time, bool)

	// TimerArmed reports whether the connection still has an active idle or
	// closing deadline. A wake-up firing after the deadline was disarmed
	// must be ignored.
	TimerArmed() bool

	// HandleTimer runs the engine's timer-expiry logic.
	HandleTimer(now time.Time)

	// HostConnectionID returns the connection ID this host chose for the
	// connection. Always HostCIDLength bytes.
	HostConnectionID() []byte
}

// Factory creates server-role connections and exposes the version set the
// engine implementation speaks.
type Factory interface {
	// NewConn creates the engine state for a fresh inbound connection, with
	// no preset original connection ID.
	NewConn() (Conn, error)

	// SupportedVersions returns the protocol versions the engine accepts.
	// Datagrams carrying any other explicit version trigger version
	// negotiation instead of connection processing.
	SupportedVersions() []uint32
}

// Config is the configuration bundle handed to engine implementations.
type Config struct {
	ALPNProtocols []string
	Certificate   tls.Certificate
	IsClient      bool
}

// NewConfig returns a server-role engine configuration carrying the given
// TLS material and the fixed ALPN value.
func NewConfig(cert tls.Certificate) *Config {
	return &Config{
		ALPNProtocols: []string{DefaultALPN},
		Certificate:   cert,
		IsClient:      false,
	}
}

// Constructor builds a configured engine factory. The serving layer loads the
// TLS material, assembles the Config and invokes the constructor once at
// startup.
type Constructor func(cfg *Config) (Factory, error)
