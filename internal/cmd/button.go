package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/m913tools/m913ctl/action"
	"github.com/m913tools/m913ctl/internal/log"
	"github.com/m913tools/m913ctl/protocol"
	"github.com/m913tools/m913ctl/transport"
)

// Button remaps one or more buttons in a single mapping sequence.
type Button struct {
	Bindings []string `arg:"" name:"name=action" help:"Button bindings, e.g. side1=f1 fire=fire:50:2 side5=ctrl_l+c"`
}

func (b *Button) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	assignments := make(map[protocol.Button]action.Code)
	chords := make(map[protocol.Button]*action.ChordContext)

	for _, arg := range b.Bindings {
		name, actionName, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("expected NAME=ACTION, got %q", arg)
		}
		btn, err := protocol.ParseButtonName(name)
		if err != nil {
			return err
		}
		binding, err := action.ResolveBinding(actionName)
		if err != nil {
			return fmt.Errorf("button %s: %w", name, err)
		}
		assignments[btn] = binding.Code
		if binding.Chord != nil {
			chords[btn] = binding.Chord
		}
	}

	pkts, degraded, err := protocol.BuildButtonMapping(assignments, chords)
	if err != nil {
		return err
	}
	for _, btn := range degraded {
		logger.Warn("chord context missing, binding degraded to its first key", "button", btn.String())
	}

	return withSession(logger, rawLogger, func(s *transport.Session) error {
		if err := s.SendSequence("button mapping", pkts); err != nil {
			return err
		}
		return s.Commit()
	})
}
