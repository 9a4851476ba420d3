package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/m913tools/m913ctl/internal/log"
	"github.com/m913tools/m913ctl/protocol"
	"github.com/m913tools/m913ctl/transport"
)

// Raw sends a hand-written packet. Bytes are zero-padded to 16 and the
// outbound checksum is appended automatically; afterwards the command
// stays in listen mode so the effect can be verified without a second
// terminal.
type Raw struct {
	Bytes []string `arg:"" name:"hex" help:"Packet bytes in hex, e.g. 08 07 00 00 60 08"`
}

func (r *Raw) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	data := make([]byte, 0, len(r.Bytes))
	for _, tok := range r.Bytes {
		b, err := strconv.ParseUint(strings.TrimPrefix(tok, "0x"), 16, 8)
		if err != nil {
			return fmt.Errorf("invalid hex byte %q", tok)
		}
		data = append(data, byte(b))
	}

	pkt, err := protocol.BuildRaw(data)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return withDevice(logger, rawLogger, func(dev *transport.Device) error {
		logger.Info("sending raw packet", "packet", pkt.Hex())
		if err := dev.Send(pkt); err != nil {
			return err
		}

		for _, ep := range []byte{transport.EndpointConfig, transport.EndpointMouse} {
			buf, err := dev.TryReceive(ep, 500*time.Millisecond)
			if err != nil {
				return err
			}
			if buf != nil {
				fmt.Printf("response EP 0x%02x (%dB): % x\n", ep, len(buf), buf)
			}
		}

		if term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Println("Packet sent. Press buttons to verify the effect. Ctrl+C to stop.")
		}
		drainUntil(ctx, dev, []byte{transport.EndpointMouse, transport.EndpointConfig})
		return nil
	})
}
