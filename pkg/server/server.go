// Package server runs the UDP serving loop that feeds the dispatcher. A
// single loop goroutine owns all dispatcher state; datagram arrivals and
// timer fires are posted into its mailbox, so processing batches for one
// connection never interleave.
package server

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"time"

	"dominicbreuker/quicmux/pkg/config"
	"dominicbreuker/quicmux/pkg/credentials"
	"dominicbreuker/quicmux/pkg/crypto"
	"dominicbreuker/quicmux/pkg/dispatch"
	"dominicbreuker/quicmux/pkg/engine"
	"dominicbreuker/quicmux/pkg/events"
	"dominicbreuker/quicmux/pkg/format"
	"dominicbreuker/quicmux/pkg/log"
	"dominicbreuker/quicmux/pkg/session"

	"github.com/benbjohnson/clock"
)

// maxDatagramSize is the largest UDP payload a single read must hold.
const maxDatagramSize = 65527

// loopBacklog bounds the datagrams and timer fires queued for the loop.
const loopBacklog = 1024

// Server owns the socket and the goroutine driving the dispatcher.
type Server struct {
	ctx  context.Context
	cfg  *config.Config
	clk  clock.Clock
	pc   net.PacketConn
	disp *dispatch.Dispatcher
	loop chan func() error
}

// New binds the UDP socket, loads the TLS material, constructs the protocol
// engine factory and wires the dispatcher. newEngine supplies the engine
// implementation, spawn the application sessions. The deps parameter is
// optional and can be nil to use default implementations.
func New(ctx context.Context, cfg *config.Config, newEngine engine.Constructor,
	spawn session.Factory, deps *config.Dependencies) (*Server, error) {
	cert, err := serverCertificate(cfg)
	if err != nil {
		return nil, err // no credentials, no server
	}

	engines, err := newEngine(engine.NewConfig(cert))
	if err != nil {
		return nil, fmt.Errorf("newEngine(): %w", err)
	}

	addr := format.Addr(cfg.Host, cfg.Port)
	packetConnFn := config.PacketListenerFunc(listenPacket)
	if deps != nil && deps.PacketListener != nil {
		packetConnFn = deps.PacketListener
	}
	pc, err := packetConnFn("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen(udp, %s): %w", addr, err)
	}

	if cfg.LogFile != "" {
		logged, err := log.NewLoggedPacketConn(pc, cfg.LogFile)
		if err != nil {
			pc.Close()
			return nil, fmt.Errorf("enabling datagram logging to %s: %w", cfg.LogFile, err)
		}
		pc = logged
	}

	s := &Server{
		ctx:  ctx,
		cfg:  cfg,
		clk:  config.GetClock(deps),
		pc:   pc,
		loop: make(chan func() error, loopBacklog),
	}
	s.disp = dispatch.New(cfg, pc.LocalAddr(), engines, spawn, s.send, s.callAt, s.clk.Now)

	return s, nil
}

// serverCertificate loads the configured credentials, falling back to an
// ephemeral self-signed certificate when none are configured.
func serverCertificate(cfg *config.Config) (tls.Certificate, error) {
	if cfg.CertFile != "" {
		return credentials.Load(cfg.CertFile, cfg.KeyFile)
	}

	return crypto.GenerateCertificate("")
}

// Serve reads datagrams and drives the dispatch loop until the context is
// cancelled, the socket fails, or the dispatcher reports a violated
// invariant.
func (s *Server) Serve() error {
	log.InfoMsg("Listening on %s\n", s.pc.LocalAddr())

	readErr := make(chan error, 1)
	go s.readLoop(readErr)

	for {
		select {
		case fn := <-s.loop:
			if err := fn(); err != nil {
				return fmt.Errorf("dispatching: %w", err)
			}
		case err := <-readErr:
			if err != nil {
				return fmt.Errorf("reading datagrams: %w", err)
			}
			return s.disp.Handle(events.Closed{})
		case <-s.ctx.Done():
			return nil
		}
	}
}

// readLoop posts every received datagram into the dispatch loop. A closed
// socket is reported as nil, anything else as the read error.
func (s *Server) readLoop(out chan<- error) {
	buf := make([]byte, maxDatagramSize)
	for {
		n, addr, err := s.pc.ReadFrom(buf)
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				out <- nil
			} else {
				out <- err
			}
			return
		}

		data := make([]byte, n)
		copy(data, buf[:n])
		ev := events.RawData{Data: data, Addr: addr}

		if s.cfg.Verbose {
			log.VerboseMsg("%d bytes from %s\n", n, addr)
		}

		select {
		case s.loop <- func() error { return s.disp.Handle(ev) }:
		case <-s.ctx.Done():
			return
		}
	}
}

// send writes one outbound datagram. Only the loop goroutine calls it.
func (s *Server) send(data []byte, addr net.Addr) error {
	if _, err := s.pc.WriteTo(data, addr); err != nil {
		return fmt.Errorf("WriteTo(%s): %w", addr, err)
	}

	return nil
}

// callAt posts a wake-up into the dispatch loop once the deadline passes, so
// timer handling runs serialized with datagram handling. Stale wake-ups are
// filtered by the dispatcher itself.
func (s *Server) callAt(deadline time.Time, fn func() error) {
	s.clk.AfterFunc(deadline.Sub(s.clk.Now()), func() {
		select {
		case s.loop <- fn:
		case <-s.ctx.Done():
		}
	})
}

// Close stops the server by closing its socket.
func (s *Server) Close() error {
	return s.pc.Close()
}
