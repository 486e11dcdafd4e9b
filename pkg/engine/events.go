package engine

// Event is the interface that all engine event types must implement. The
// dispatcher reacts to the connection-lifecycle kinds below and forwards
// every event, reacted to or not, to the connection's session once one
// exists. EventType returns a string identifier used for debugging and
// logging purposes.
type Event interface {
	EventType() string
}

// ConnectionTerminated reports that the connection ended, either cleanly or
// with a transport error.
type ConnectionTerminated struct {
	ErrorCode    uint64
	FrameType    uint64
	ReasonPhrase string
}

// EventType ...
func (e ConnectionTerminated) EventType() string {
	return "ConnectionTerminated"
}

// ProtocolNegotiated reports that the handshake agreed on an application
// protocol. It is emitted at most once per connection and triggers session
// creation.
type ProtocolNegotiated struct {
	ALPNProtocol string
}

// EventType ...
func (e ProtocolNegotiated) EventType() string {
	return "ProtocolNegotiated"
}

// ConnectionIDIssued reports a new routing identifier for the connection.
type ConnectionIDIssued struct {
	ConnectionID []byte
}

// EventType ...
func (e ConnectionIDIssued) EventType() string {
	return "ConnectionIDIssued"
}

// ConnectionIDRetired reports that a previously issued routing identifier is
// no longer valid and must stop routing to the connection.
type ConnectionIDRetired struct {
	ConnectionID []byte
}

// EventType ...
func (e ConnectionIDRetired) EventType() string {
	return "ConnectionIDRetired"
}

// HandshakeCompleted reports that the cryptographic handshake finished. The
// dispatcher has no reaction; sessions may care.
type HandshakeCompleted struct{}

// EventType ...
func (e HandshakeCompleted) EventType() string {
	return "HandshakeCompleted"
}

// StreamDataReceived carries application data for a stream. Consumed
// opaquely by the session layer.
type StreamDataReceived struct {
	StreamID  uint64
	Data      []byte
	EndStream bool
}

// EventType ...
func (e StreamDataReceived) EventType() string {
	return "StreamDataReceived"
}

// DatagramReceived carries an unreliable application datagram. Consumed
// opaquely by the session layer.
type DatagramReceived struct {
	Data []byte
}

// EventType ...
func (e DatagramReceived) EventType() string {
	return "DatagramReceived"
}
