package dispatch

import (
	"fmt"

	"dominicbreuker/quicmux/pkg/engine"
)

// Registry maps routing identifiers to the engine connection that owns them.
// A connection may be registered under many identifiers at once; each
// identifier routes to exactly one connection. Registry is not safe for
// concurrent use; the dispatch loop owns it.
type Registry struct {
	conns map[string]engine.Conn
}

// NewRegistry ...
func NewRegistry() *Registry {
	return &Registry{
		conns: make(map[string]engine.Conn),
	}
}

// Lookup returns the connection registered under id, if any.
func (r *Registry) Lookup(id []byte) (engine.Conn, bool) {
	conn, ok := r.conns[string(id)]
	return conn, ok
}

// Insert registers id for conn. An existing entry is overwritten silently;
// callers must never register the same id for two different live connections.
func (r *Registry) Insert(id []byte, conn engine.Conn) {
	r.conns[string(id)] = conn
}

// Remove drops the entry for id. The engine only retires identifiers it
// previously issued, so an absent id means registry and engine have
// diverged; that is returned as an error instead of being ignored.
func (r *Registry) Remove(id []byte) error {
	if _, ok := r.conns[string(id)]; !ok {
		return fmt.Errorf("connection ID %x is not registered", id)
	}

	delete(r.conns, string(id))
	return nil
}

// RemoveConn drops every identifier registered for conn and returns the
// number of entries removed.
func (r *Registry) RemoveConn(conn engine.Conn) int {
	removed := 0
	for id, c := range r.conns {
		if c == conn {
			delete(r.conns, id)
			removed++
		}
	}

	return removed
}

// Len returns the number of registered identifiers.
func (r *Registry) Len() int {
	return len(r.conns)
}
