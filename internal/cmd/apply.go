package cmd

import (
	"log/slog"

	"github.com/m913tools/m913ctl/internal/log"
	"github.com/m913tools/m913ctl/internal/profile"
	"github.com/m913tools/m913ctl/protocol"
	"github.com/m913tools/m913ctl/transport"
)

// Apply loads a profile file and sends every configured section to the
// mouse, ending with the commit packets.
type Apply struct {
	Path string `arg:"" name:"profile" help:"Profile file (.toml, .yaml, or .json)" type:"existingfile"`
}

func (a *Apply) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	p, err := profile.Load(a.Path)
	if err != nil {
		return err
	}
	compiled, err := p.Compile()
	if err != nil {
		return err
	}

	logger.Info("applying profile", "path", a.Path)

	return withSession(logger, rawLogger, func(s *transport.Session) error {
		sent := false

		if len(compiled.Assignments) > 0 {
			pkts, degraded, err := protocol.BuildButtonMapping(compiled.Assignments, compiled.Chords)
			if err != nil {
				return err
			}
			for _, b := range degraded {
				logger.Warn("chord context missing, binding degraded to its first key", "button", b.String())
			}
			if err := s.SendSequence("button mapping", pkts); err != nil {
				return err
			}
			sent = true
		}

		if compiled.DpiSlots != nil {
			if err := s.SendSequence("dpi profile", protocol.BuildDpiProfile(*compiled.DpiSlots)); err != nil {
				return err
			}
			sent = true
		}

		if compiled.Led != nil {
			if err := s.SendSequence("led program", protocol.BuildLedProgram(*compiled.Led)); err != nil {
				return err
			}
			sent = true
		}

		if compiled.PollingRate != 0 {
			pkt := protocol.BuildPollingRate(compiled.PollingRate)
			if err := s.SendSequence("polling rate", []protocol.Packet{pkt}); err != nil {
				return err
			}
			sent = true
		}

		if !sent {
			logger.Warn("profile has no settings to apply")
			return nil
		}
		return s.Commit()
	})
}
