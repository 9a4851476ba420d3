// Package transport opens the M913 receiver over USB and moves 17-byte
// configuration packets across it. The packet builders in package
// protocol never touch USB themselves; a Session feeds their output
// through a Transport one packet at a time, reading the device's ACK
// between packets.
package transport

import (
	"time"

	"github.com/m913tools/m913ctl/protocol"
)

// Transport is the wire capability the configuration flow runs on.
// Implementations must be safe for use from a single goroutine; the
// session layer never sends concurrently.
type Transport interface {
	// Send writes one configuration packet to the device.
	Send(p protocol.Packet) error

	// TryReceive reads from the given interrupt IN endpoint. It returns
	// (nil, nil) when nothing arrives within the timeout; errors are
	// reserved for transfer failures.
	TryReceive(endpoint byte, timeout time.Duration) ([]byte, error)

	Close() error
}
