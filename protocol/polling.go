package protocol

import "fmt"

// PollingRates lists the rates the device supports, in Hz.
var PollingRates = []int{125, 250, 500, 1000}

// ValidatePollingRate rejects rates the device cannot report at. Callers
// should validate before building; BuildPollingRate itself floors to the
// nearest lower tier rather than failing.
func ValidatePollingRate(hz int) error {
	for _, r := range PollingRates {
		if hz == r {
			return nil
		}
	}
	return fmt.Errorf("polling rate must be 125, 250, 500, or 1000 Hz (got %d)", hz)
}

// BuildPollingRate produces the single packet that sets the USB polling
// rate. The register lives at address 0x0000 with length 2; byte 7 is
// always 0x55 minus the code, which makes the outer checksum 0xEF for
// every rate.
//
//	>= 1000 Hz -> 0x01    >= 250 Hz -> 0x04
//	>=  500 Hz -> 0x02    otherwise -> 0x08 (125 Hz)
func BuildPollingRate(hz int) Packet {
	var code byte
	switch {
	case hz >= 1000:
		code = 0x01
	case hz >= 500:
		code = 0x02
	case hz >= 250:
		code = 0x04
	default:
		code = 0x08
	}

	p := writePacket(0x00, 0x00, 0x02)
	p[6] = code
	p[7] = 0x55 - code
	p.seal()
	return p
}
