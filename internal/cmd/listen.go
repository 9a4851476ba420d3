package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/m913tools/m913ctl/internal/log"
	"github.com/m913tools/m913ctl/transport"
)

// Listen passively dumps packets arriving from the mouse. EP 0x81
// carries the 7-byte HID mouse reports, EP 0x82 the 17-byte config
// channel; without an explicit endpoint every interrupt IN endpoint
// found on the receiver is polled.
type Listen struct {
	Endpoint string `help:"Endpoint to listen on (hex, e.g. 0x81); default polls all interrupt IN endpoints"`
}

func (l *Listen) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	var endpoints []byte
	if l.Endpoint != "" {
		ep, err := strconv.ParseUint(l.Endpoint, 0, 8)
		if err != nil {
			return fmt.Errorf("invalid endpoint %q (expect hex, e.g. 0x81)", l.Endpoint)
		}
		endpoints = []byte{byte(ep)}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return withDevice(logger, rawLogger, func(dev *transport.Device) error {
		if endpoints == nil {
			endpoints = dev.Endpoints()
		}
		logger.Info("listening for packets", "endpoints", fmt.Sprintf("%#02x", endpoints))
		if term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Println("Press mouse buttons to see raw packets. Ctrl+C to stop.")
		}

		count := 0
		for {
			for _, ep := range endpoints {
				select {
				case <-ctx.Done():
					logger.Info("stopped", "packets", count)
					return nil
				default:
				}

				buf, err := dev.TryReceive(ep, 200*time.Millisecond)
				if err != nil {
					return err
				}
				if buf == nil {
					continue
				}
				count++
				fmt.Printf("[pkt %d | EP 0x%02x | %dB]  % x\n", count, ep, len(buf), buf)
			}
		}
	})
}

// drainUntil polls an endpoint until the context is cancelled, printing
// every packet. Shared by the raw command's verify phase.
func drainUntil(ctx context.Context, dev *transport.Device, endpoints []byte) {
	count := 0
	for {
		for _, ep := range endpoints {
			select {
			case <-ctx.Done():
				return
			default:
			}
			buf, err := dev.TryReceive(ep, 200*time.Millisecond)
			if err != nil || buf == nil {
				continue
			}
			count++
			fmt.Printf("[pkt %d | EP 0x%02x | %dB]  % x\n", count, ep, len(buf), buf)
		}
	}
}
