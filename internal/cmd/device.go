package cmd

import (
	"log/slog"
	"time"

	"github.com/m913tools/m913ctl/internal/log"
	"github.com/m913tools/m913ctl/transport"
)

// initDrainTimeout bounds the wait for the receiver's spontaneous hello
// packet after open.
const initDrainTimeout = 800 * time.Millisecond

// withSession opens the receiver, runs fn with a session, and closes the
// device afterwards. All configuring subcommands funnel through here so
// open/close handling stays in one place.
func withSession(logger *slog.Logger, raw log.RawLogger, fn func(*transport.Session) error) error {
	dev, err := transport.Open(logger, raw)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := dev.Close(); cerr != nil {
			logger.Warn("closing device", "error", cerr)
		}
	}()

	// Drain any spontaneous hello packet the wireless receiver emits
	// right after the interfaces are claimed.
	if buf, err := dev.TryReceive(transport.EndpointConfig, initDrainTimeout); err == nil && buf != nil {
		logger.Debug("drained init packet", "bytes", len(buf))
	}

	return fn(transport.NewSession(dev, logger))
}

// withDevice is withSession without the packet-session wrapper, for the
// diagnostic commands that talk to endpoints directly.
func withDevice(logger *slog.Logger, raw log.RawLogger, fn func(*transport.Device) error) error {
	dev, err := transport.Open(logger, raw)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := dev.Close(); cerr != nil {
			logger.Warn("closing device", "error", cerr)
		}
	}()
	return fn(dev)
}
