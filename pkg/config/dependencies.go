package config

import (
	"net"

	"github.com/benbjohnson/clock"
)

// Dependencies contains injectable dependencies for testing and customization.
// All fields are optional and will use default implementations if nil.
type Dependencies struct {
	PacketListener PacketListenerFunc
	Clock          clock.Clock
}

// PacketListenerFunc is a function that creates a packet listener.
// It returns a net.PacketConn to allow for mock implementations.
type PacketListenerFunc func(network, address string) (net.PacketConn, error)

// GetClock returns the clock from dependencies, or the system clock.
// Tests inject a mock clock to drive wake-up deadlines deterministically.
func GetClock(deps *Dependencies) clock.Clock {
	if deps != nil && deps.Clock != nil {
		return deps.Clock
	}
	return clock.New()
}
