package protocol

import (
	"fmt"
	"strings"
)

// LedMode selects the logo LED effect.
type LedMode uint8

const (
	LedOff LedMode = iota
	LedSteady
	LedRespiration
	LedRainbow
)

func (m LedMode) String() string {
	switch m {
	case LedOff:
		return "off"
	case LedSteady:
		return "steady"
	case LedRespiration:
		return "respiration"
	case LedRainbow:
		return "rainbow"
	}
	return fmt.Sprintf("ledmode(%d)", uint8(m))
}

// ParseLedMode resolves a mode name, accepting the common aliases
// "static" for steady and "breathing" for respiration.
func ParseLedMode(s string) (LedMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off":
		return LedOff, nil
	case "steady", "static":
		return LedSteady, nil
	case "respiration", "breathing":
		return LedRespiration, nil
	case "rainbow":
		return LedRainbow, nil
	}
	return 0, fmt.Errorf("unknown LED mode %q (valid: off, steady, respiration, rainbow)", s)
}

// LedProgram describes the LED configuration. Color is 24-bit 0xRRGGBB
// and together with Brightness only applies to Steady; Respiration uses
// Color plus Speed (1 slowest to 5 fastest). Off and Rainbow ignore all
// parameters.
type LedProgram struct {
	Mode       LedMode
	Color      uint32
	Brightness uint8
	Speed      uint8
}

// Mode discriminator bytes inside the 0x54 packet.
const (
	ledModeSteady      = 0x01
	ledModeRespiration = 0x02
)

// BuildLedProgram produces the 1-2 packet LED sequence.
//
// Parametrized modes pair every field group with an inline checksum byte
// (0x55 - sum of the group) directly after it: R G B cksum, mode cksum,
// brightness cksum, speed cksum. These are separate from the packet-level
// checksum at byte 16, which is recomputed last.
func BuildLedProgram(prog LedProgram) []Packet {
	r := byte(prog.Color >> 16)
	g := byte(prog.Color >> 8)
	b := byte(prog.Color)

	switch prog.Mode {
	case LedOff:
		return []Packet{ledOff[0]}

	case LedRainbow:
		return []Packet{ledRainbow[0], ledRainbow[1]}

	case LedRespiration:
		p1 := ledRespiration[0]
		p1[6] = r
		p1[7] = g
		p1[8] = b
		p1[9] = byte(0x55 - int(r) - int(g) - int(b))
		p1[10] = ledModeRespiration
		p1[11] = 0x55 - ledModeRespiration
		p1[12] = prog.Brightness
		p1[13] = 0x55 - prog.Brightness
		p1.seal()

		p2 := ledRespiration[1]
		p2[6] = prog.Speed
		p2[7] = 0x55 - prog.Speed
		p2.seal()
		return []Packet{p1, p2}

	default: // Steady
		p := ledSteady[0]
		p[6] = r
		p[7] = g
		p[8] = b
		p[9] = byte(0x55 - int(r) - int(g) - int(b))
		p[10] = ledModeSteady
		p[11] = 0x55 - ledModeSteady
		p[12] = prog.Brightness
		p[13] = 0x55 - prog.Brightness
		p.seal()
		return []Packet{p}
	}
}
