// Package events defines the transport-facing event types exchanged between
// the serving loop and the dispatcher. Inbound and outbound datagrams use the
// same RawData type; the direction is implied by who produces the event.
package events

import "net"

// Event is the interface that all transport event types must implement.
// EventType returns a string identifier for the event type, used for
// debugging and logging purposes.
type Event interface {
	EventType() string
}

// RawData is a datagram together with its remote address. Received from the
// socket it is the input to the dispatcher; produced by the dispatcher it is
// a datagram to be written to the socket.
type RawData struct {
	Data []byte
	Addr net.Addr
}

// EventType ...
func (e RawData) EventType() string {
	return "RawData"
}

// Closed signals that the transport socket has been closed. The dispatcher
// takes no action on it.
type Closed struct{}

// EventType ...
func (e Closed) EventType() string {
	return "Closed"
}
