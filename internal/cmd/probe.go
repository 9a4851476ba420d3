package cmd

import (
	"fmt"
	"log/slog"

	"github.com/m913tools/m913ctl/internal/log"
	"github.com/m913tools/m913ctl/transport"
)

// Probe prints the receiver's USB interfaces and endpoints.
type Probe struct{}

func (p *Probe) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	return withDevice(logger, rawLogger, func(dev *transport.Device) error {
		fmt.Print(dev.Describe())
		return nil
	})
}
