package transport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/gousb"

	"github.com/m913tools/m913ctl/internal/log"
	"github.com/m913tools/m913ctl/protocol"
)

// Redragon M913 identifiers. The PID is the 2.4G wireless receiver.
const (
	VendorID  = 0x25a7
	ProductID = 0xfa07
)

// HID SET_REPORT control transfer parameters for config packets.
const (
	ctrlRequestType = 0x21   // host-to-device, class, interface
	ctrlRequest     = 0x09   // SET_REPORT
	ctrlValue       = 0x0308 // feature report 8
	ctrlIndex       = 0x0001 // interface 1
)

// Interrupt IN endpoints exposed by the receiver.
const (
	EndpointMouse  = 0x81 // 7-byte HID mouse reports
	EndpointConfig = 0x82 // 17-byte config ACKs and responses
)

// Device is the gousb-backed Transport for a real receiver.
type Device struct {
	ctx    *gousb.Context
	dev    *gousb.Device
	cfg    *gousb.Config
	intfs  []*gousb.Interface
	eps    map[byte]*gousb.InEndpoint
	logger *slog.Logger
	raw    log.RawLogger
}

// Open claims the receiver by VID/PID. The kernel HID driver is detached
// automatically while the interfaces are claimed and reattached on Close.
func Open(logger *slog.Logger, raw log.RawLogger) (*Device, error) {
	ctx := gousb.NewContext()

	dev, err := ctx.OpenDeviceWithVIDPID(VendorID, ProductID)
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("open %04x:%04x: %w", VendorID, ProductID, err)
	}
	if dev == nil {
		ctx.Close()
		return nil, fmt.Errorf("device %04x:%04x not found (is the receiver plugged in?)", VendorID, ProductID)
	}

	d := &Device{
		ctx:    ctx,
		dev:    dev,
		eps:    make(map[byte]*gousb.InEndpoint),
		logger: logger,
		raw:    raw,
	}

	if err := dev.SetAutoDetach(true); err != nil {
		d.Close()
		return nil, fmt.Errorf("detach kernel driver: %w", err)
	}

	cfg, err := dev.Config(1)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("claim configuration: %w", err)
	}
	d.cfg = cfg

	// Claim every interface and open each interrupt IN endpoint. The
	// receiver exposes the mouse reports on one interface and the config
	// channel on another.
	for _, idesc := range cfg.Desc.Interfaces {
		intf, err := cfg.Interface(idesc.Number, 0)
		if err != nil {
			d.Close()
			return nil, fmt.Errorf("claim interface %d: %w", idesc.Number, err)
		}
		d.intfs = append(d.intfs, intf)

		for _, edesc := range intf.Setting.Endpoints {
			if edesc.Direction != gousb.EndpointDirectionIn {
				continue
			}
			ep, err := intf.InEndpoint(edesc.Number)
			if err != nil {
				d.Close()
				return nil, fmt.Errorf("open endpoint 0x%02x: %w", byte(edesc.Address), err)
			}
			d.eps[byte(edesc.Address)] = ep
		}
	}

	logger.Debug("device opened",
		"vid", fmt.Sprintf("%04x", VendorID),
		"pid", fmt.Sprintf("%04x", ProductID),
		"endpoints", len(d.eps))
	return d, nil
}

// Send writes one packet via an HID SET_REPORT control transfer.
func (d *Device) Send(p protocol.Packet) error {
	d.raw.Log(false, p[:])
	n, err := d.dev.Control(ctrlRequestType, ctrlRequest, ctrlValue, ctrlIndex, p[:])
	if err != nil {
		return fmt.Errorf("control transfer: %w", err)
	}
	if n != protocol.PacketSize {
		return fmt.Errorf("short control transfer: wrote %d of %d bytes", n, protocol.PacketSize)
	}
	return nil
}

// TryReceive polls an interrupt IN endpoint once. A timeout is not an
// error; it returns (nil, nil) so callers can keep polling.
func (d *Device) TryReceive(endpoint byte, timeout time.Duration) ([]byte, error) {
	ep, ok := d.eps[endpoint]
	if !ok {
		return nil, fmt.Errorf("no interrupt IN endpoint 0x%02x", endpoint)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	buf := make([]byte, ep.Desc.MaxPacketSize)
	n, err := ep.ReadContext(ctx, buf)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, gousb.ErrorTimeout) {
			return nil, nil
		}
		return nil, fmt.Errorf("interrupt read 0x%02x: %w", endpoint, err)
	}
	if n == 0 {
		return nil, nil
	}
	d.raw.Log(true, buf[:n])
	return buf[:n], nil
}

// Endpoints returns the interrupt IN endpoint addresses found on the
// device, sorted.
func (d *Device) Endpoints() []byte {
	out := make([]byte, 0, len(d.eps))
	for addr := range d.eps {
		out = append(out, addr)
	}
	slices.Sort(out)
	return out
}

// Describe writes a human-readable summary of the device's interfaces
// and endpoints.
func (d *Device) Describe() string {
	s := fmt.Sprintf("device %s\n", d.dev.String())
	for _, idesc := range d.cfg.Desc.Interfaces {
		for _, alt := range idesc.AltSettings {
			s += fmt.Sprintf("  interface %d alt %d class %s\n", alt.Number, alt.Alternate, alt.Class)
			for _, edesc := range alt.Endpoints {
				s += fmt.Sprintf("    endpoint 0x%02x %s %s maxpkt %d\n",
					byte(edesc.Address), edesc.Direction, edesc.TransferType, edesc.MaxPacketSize)
			}
		}
	}
	return s
}

// Close releases interfaces and reattaches the kernel driver.
func (d *Device) Close() error {
	for _, intf := range d.intfs {
		intf.Close()
	}
	var firstErr error
	if d.cfg != nil {
		if err := d.cfg.Close(); err != nil {
			firstErr = err
		}
	}
	if d.dev != nil {
		if err := d.dev.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if d.ctx != nil {
		if err := d.ctx.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
