package transport

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/m913tools/m913ctl/protocol"
)

// ACK polling parameters. The mouse answers each config write with a
// 17-byte packet on the config endpoint within ~20 ms on native USB, but
// forwarded stacks (USB/IP, WSL2) only deliver interrupt data into an
// already-queued read, so the session polls with several short reads
// instead of one long wait.
const (
	ackAttempts = 15
	ackInterval = 100 * time.Millisecond
)

// Session drives a configuration exchange: it feeds builder output to
// the Transport one packet at a time and waits for the device ACK
// between packets. A missing ACK is logged and tolerated (wireless
// latency can exceed the window); a transfer failure aborts.
type Session struct {
	tr     Transport
	logger *slog.Logger
}

func NewSession(tr Transport, logger *slog.Logger) *Session {
	return &Session{tr: tr, logger: logger}
}

// SendSequence transmits an ordered packet list.
func (s *Session) SendSequence(name string, packets []protocol.Packet) error {
	if len(packets) == 0 {
		return nil
	}
	s.logger.Info("sending packet sequence", "name", name, "packets", len(packets))

	for i, p := range packets {
		s.logger.Debug("send", "seq", fmt.Sprintf("%d/%d", i+1, len(packets)), "packet", p.Hex())
		if err := s.tr.Send(p); err != nil {
			return fmt.Errorf("%s packet %d/%d: %w", name, i+1, len(packets), err)
		}

		ack, err := s.waitAck()
		if err != nil {
			return fmt.Errorf("%s packet %d/%d ack: %w", name, i+1, len(packets), err)
		}
		if ack == nil {
			s.logger.Warn("no ack from device", "name", name, "packet", i+1)
		}
	}
	return nil
}

// Commit sends the finalize packet twice, mirroring the vendor software's
// end-of-session behavior.
func (s *Session) Commit() error {
	c := protocol.BuildCommit()
	return s.SendSequence("commit", []protocol.Packet{c, c})
}

func (s *Session) waitAck() ([]byte, error) {
	for attempt := 0; attempt < ackAttempts; attempt++ {
		buf, err := s.tr.TryReceive(EndpointConfig, ackInterval)
		if err != nil {
			return nil, err
		}
		if buf != nil {
			return buf, nil
		}
	}
	return nil, nil
}
