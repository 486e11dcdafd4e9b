// Package dispatch implements the QUIC connection demultiplexer: it routes
// inbound datagrams to engine connections by routing identifier, answers
// unsupported versions with negotiation datagrams, drains and reacts to
// engine events, creates one application session per connection at protocol
// negotiation, flushes outbound datagrams and schedules engine wake-ups.
//
// A Dispatcher is not safe for concurrent use. All entry points, including
// the callbacks handed to CallAtFunc, must run on the single goroutine that
// owns it, so batches for one connection never interleave.
package dispatch

import (
	"fmt"
	"net"
	"time"

	"dominicbreuker/quicmux/pkg/config"
	"dominicbreuker/quicmux/pkg/engine"
	"dominicbreuker/quicmux/pkg/events"
	"dominicbreuker/quicmux/pkg/format"
	"dominicbreuker/quicmux/pkg/log"
	"dominicbreuker/quicmux/pkg/session"
	"dominicbreuker/quicmux/pkg/wire"
)

// SendFunc delivers an outbound datagram to the transport.
type SendFunc func(data []byte, addr net.Addr) error

// CallAtFunc registers fn to run at or after deadline. Implementations must
// run fn on the goroutine owning the dispatcher and must surface fn's error
// the same way as an error from Handle. Scheduled callbacks are never
// cancelled; the dispatcher makes stale ones no-ops itself.
type CallAtFunc func(deadline time.Time, fn func() error)

// NowFunc returns the current time. The dispatcher uses it for every engine
// timing call so that engine and scheduler agree on one clock.
type NowFunc func() time.Time

// Dispatcher routes datagrams to connections and drives their engines.
type Dispatcher struct {
	cfg     *config.Config
	server  net.Addr
	engines engine.Factory
	spawn   session.Factory
	send    SendFunc
	callAt  CallAtFunc
	now     NowFunc

	registry *Registry
	sessions map[engine.Conn]session.Session
	timerGen map[engine.Conn]uint64
}

// New ...
func New(cfg *config.Config, server net.Addr, engines engine.Factory, spawn session.Factory,
	send SendFunc, callAt CallAtFunc, now NowFunc) *Dispatcher {
	return &Dispatcher{
		cfg:      cfg,
		server:   server,
		engines:  engines,
		spawn:    spawn,
		send:     send,
		callAt:   callAt,
		now:      now,
		registry: NewRegistry(),
		sessions: make(map[engine.Conn]session.Session),
		timerGen: make(map[engine.Conn]uint64),
	}
}

// Handle processes one transport event. Problems caused by network input are
// absorbed by dropping the datagram. A non-nil error means a violated
// internal invariant or a failing collaborator and must stop the server.
func (d *Dispatcher) Handle(ev events.Event) error {
	switch ev := ev.(type) {
	case events.RawData:
		return d.handleDatagram(ev)
	case events.Closed:
		return nil // transport gone, nothing to tear down here
	}

	return nil
}

func (d *Dispatcher) handleDatagram(ev events.RawData) error {
	hdr, err := wire.ParseHeader(ev.Data, wire.HostCIDLength)
	if err != nil {
		return nil // unparseable datagram, drop
	}

	if hdr.HasVersion && !d.versionSupported(hdr.Version) {
		return d.negotiateVersion(hdr, ev.Addr)
	}

	conn, ok := d.registry.Lookup(hdr.DestinationCID)
	if !ok {
		if hdr.PacketType != wire.PacketTypeInitial {
			return nil // no connection to deliver to, drop
		}

		conn, err = d.engines.NewConn()
		if err != nil {
			return fmt.Errorf("engines.NewConn(): %w", err)
		}
		d.registry.Insert(hdr.DestinationCID, conn)
		d.registry.Insert(conn.HostConnectionID(), conn)

		if d.cfg.Verbose {
			log.VerboseMsg("new connection %s from %s\n", format.CID(conn.HostConnectionID()), ev.Addr)
		}
	}

	conn.ReceiveDatagram(ev.Data, ev.Addr, d.now())
	return d.dispatchEvents(conn, ev.Addr)
}

// negotiateVersion answers a datagram with an unsupported version. The
// header's IDs are swapped into the response and no connection state is
// created or consulted.
func (d *Dispatcher) negotiateVersion(hdr wire.Header, addr net.Addr) error {
	data, err := wire.EncodeVersionNegotiation(hdr.DestinationCID, hdr.SourceCID, d.engines.SupportedVersions())
	if err != nil {
		return fmt.Errorf("wire.EncodeVersionNegotiation(): %w", err)
	}

	return d.send(data, addr)
}

func (d *Dispatcher) versionSupported(version uint32) bool {
	for _, v := range d.engines.SupportedVersions() {
		if v == version {
			return true
		}
	}

	return false
}

// dispatchEvents runs one processing batch for conn: drain the engine's
// event queue in emission order, apply the per-kind lifecycle reaction,
// forward each event to the connection's session, flush outbound datagrams
// and finally either evict a terminated connection or schedule its next
// wake-up.
func (d *Dispatcher) dispatchEvents(conn engine.Conn, client net.Addr) error {
	terminated := false

	for ev := conn.NextEvent(); ev != nil; ev = conn.NextEvent() {
		switch ev := ev.(type) {
		case engine.ConnectionTerminated:
			// eviction waits until the batch ends so the session still
			// sees this event and queued close packets still go out
			terminated = true
		case engine.ProtocolNegotiated:
			if err := d.spawnSession(conn, client); err != nil {
				return err
			}
		case engine.ConnectionIDIssued:
			d.registry.Insert(ev.ConnectionID, conn)
		case engine.ConnectionIDRetired:
			if err := d.registry.Remove(ev.ConnectionID); err != nil {
				return fmt.Errorf("retiring connection ID: %w", err)
			}
		}

		if sess, ok := d.sessions[conn]; ok {
			if err := sess.HandleEvent(ev); err != nil {
				return fmt.Errorf("session.HandleEvent(%s): %w", ev.EventType(), err)
			}
		}
	}

	if err := d.sendAll(conn); err != nil {
		return err
	}

	if terminated {
		d.evict(conn)
		return nil
	}

	d.scheduleTimer(conn)
	return nil
}

// spawnSession creates the connection's session exactly once. The engine
// emits ProtocolNegotiated once per connection; seeing a session already in
// place means the event stream is corrupt, which must surface instead of
// overwriting a live session.
func (d *Dispatcher) spawnSession(conn engine.Conn, client net.Addr) error {
	if _, ok := d.sessions[conn]; ok {
		return fmt.Errorf("duplicate ProtocolNegotiated for connection %x", conn.HostConnectionID())
	}

	sess, err := d.spawn(d.cfg, client, d.server, conn, func() error {
		return d.sendAll(conn)
	})
	if err != nil {
		return fmt.Errorf("spawning session: %w", err)
	}

	d.sessions[conn] = sess
	return nil
}

// sendAll drains every datagram the engine has queued for conn and delivers
// them in emission order.
func (d *Dispatcher) sendAll(conn engine.Conn) error {
	for _, dgram := range conn.DatagramsToSend(d.now()) {
		if err := d.send(dgram.Data, dgram.Addr); err != nil {
			return fmt.Errorf("sending %d bytes to %s: %w", len(dgram.Data), dgram.Addr, err)
		}
	}

	return nil
}

// scheduleTimer arranges a wake-up at the engine's next deadline. Previously
// scheduled wake-ups are not cancelled; bumping the generation counter turns
// them into no-ops when they fire.
func (d *Dispatcher) scheduleTimer(conn engine.Conn) {
	deadline, ok := conn.Timer()
	if !ok {
		return
	}

	d.timerGen[conn]++
	gen := d.timerGen[conn]
	d.callAt(deadline, func() error {
		return d.fireTimer(conn, gen)
	})
}

// fireTimer runs the engine's timer handling unless the wake-up has gone
// stale: a newer one was scheduled since, the connection was evicted, or the
// engine no longer has an armed deadline.
func (d *Dispatcher) fireTimer(conn engine.Conn, gen uint64) error {
	if d.timerGen[conn] != gen || !conn.TimerArmed() {
		return nil
	}

	conn.HandleTimer(d.now())
	return d.dispatchEvents(conn, nil)
}

// evict drops all state held for a terminated connection: every registry
// identifier, the session and the timer generation, so late datagrams and
// wake-ups for the dead connection are ignored.
func (d *Dispatcher) evict(conn engine.Conn) {
	d.registry.RemoveConn(conn)
	delete(d.sessions, conn)
	delete(d.timerGen, conn)

	if d.cfg.Verbose {
		log.VerboseMsg("connection %s terminated\n", format.CID(conn.HostConnectionID()))
	}
}
