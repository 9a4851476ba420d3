package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/m913tools/m913ctl/internal/log"
	"github.com/m913tools/m913ctl/protocol"
	"github.com/m913tools/m913ctl/transport"
)

// Dpi writes the five-slot DPI configuration.
type Dpi struct {
	Slots   []string `arg:"" name:"slot=value" help:"DPI assignments, e.g. 1=800 2=1600"`
	Disable []int    `help:"Slots (1-5) to disable" sep:","`
}

func (d *Dpi) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	var slots [5]protocol.DpiSlot
	for i := range slots {
		slots[i].Enabled = true
	}

	for _, arg := range d.Slots {
		slotStr, valStr, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("expected SLOT=VALUE, got %q", arg)
		}
		slot, err := strconv.Atoi(slotStr)
		if err != nil || slot < 1 || slot > 5 {
			return fmt.Errorf("DPI slot must be 1-5, got %q", slotStr)
		}
		val, err := strconv.Atoi(valStr)
		if err != nil || val < 100 || val > 16000 || val%100 != 0 {
			return fmt.Errorf("DPI value must be 100-16000 in steps of 100, got %q", valStr)
		}
		slots[slot-1].Value = uint16(val)
	}

	for _, slot := range d.Disable {
		if slot < 1 || slot > 5 {
			return fmt.Errorf("cannot disable slot %d, slots are 1-5", slot)
		}
		slots[slot-1].Enabled = false
	}

	return withSession(logger, rawLogger, func(s *transport.Session) error {
		if err := s.SendSequence("dpi profile", protocol.BuildDpiProfile(slots)); err != nil {
			return err
		}
		return s.Commit()
	})
}
