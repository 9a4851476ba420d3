package cmd

import (
	"log/slog"

	"github.com/m913tools/m913ctl/internal/log"
	"github.com/m913tools/m913ctl/protocol"
	"github.com/m913tools/m913ctl/transport"
)

// PollingRate sets the USB report rate.
type PollingRate struct {
	Hz int `arg:"" help:"Polling rate in Hz: 125, 250, 500, or 1000"`
}

func (p *PollingRate) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	if err := protocol.ValidatePollingRate(p.Hz); err != nil {
		return err
	}

	return withSession(logger, rawLogger, func(s *transport.Session) error {
		pkt := protocol.BuildPollingRate(p.Hz)
		if err := s.SendSequence("polling rate", []protocol.Packet{pkt}); err != nil {
			return err
		}
		return s.Commit()
	})
}
