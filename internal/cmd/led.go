package cmd

import (
	"fmt"
	"log/slog"

	"github.com/m913tools/m913ctl/internal/log"
	"github.com/m913tools/m913ctl/internal/profile"
	"github.com/m913tools/m913ctl/protocol"
	"github.com/m913tools/m913ctl/transport"
)

// Led sets the logo LED program.
type Led struct {
	Mode       string `arg:"" help:"LED mode: off, steady, respiration, rainbow (aliases: static, breathing)"`
	Color      string `help:"24-bit color as RRGGBB or #RRGGBB (steady, respiration)" default:"#00ff00"`
	Brightness int    `help:"Brightness 0-255 (steady)" default:"255"`
	Speed      int    `help:"Effect speed 1 (slowest) to 5 (fastest) (respiration)" default:"3"`
}

func (l *Led) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	mode, err := protocol.ParseLedMode(l.Mode)
	if err != nil {
		return err
	}
	color, err := profile.ParseColor(l.Color)
	if err != nil {
		return err
	}
	if l.Brightness < 0 || l.Brightness > 255 {
		return fmt.Errorf("brightness %d out of range (0-255)", l.Brightness)
	}
	if l.Speed < 1 || l.Speed > 5 {
		return fmt.Errorf("speed %d out of range (1-5)", l.Speed)
	}

	prog := protocol.LedProgram{
		Mode:       mode,
		Color:      color,
		Brightness: uint8(l.Brightness),
		Speed:      uint8(l.Speed),
	}

	return withSession(logger, rawLogger, func(s *transport.Session) error {
		if err := s.SendSequence("led program", protocol.BuildLedProgram(prog)); err != nil {
			return err
		}
		return s.Commit()
	})
}
