// Package protocol builds the 17-byte configuration packets understood by
// the Redragon M913 wireless receiver.
//
// Packet layout (confirmed against mouse_m908 templates and USB captures):
//
//	Byte  0     Command marker, always 0x08
//	Byte  1     Sub-command (0x07 = write data, 0x04 = finalize/commit)
//	Bytes 2-3   0x00 (byte 3 carries the high address byte in keyboard-key
//	            sub-packets)
//	Byte  4     Memory address byte
//	Byte  5     Payload length
//	Bytes 6-13  Payload
//	Bytes 14-15 Padding
//	Byte  16    Checksum over bytes 0-15
//
// Every builder in this package is a pure function: the same input always
// produces the same packet sequence, and nothing is shared between calls.
package protocol

import (
	"bytes"
	"fmt"
)

// PacketSize is the fixed length of every M913 configuration packet.
const PacketSize = 17

const (
	cmdConfig    = 0x08 // byte 0 of every config packet
	subWrite     = 0x07 // byte 1: write data block
	subFinalize  = 0x04 // byte 1: commit settings to flash
	checksumBase = 0x55 // outbound checksum constant
	inboundBase  = 0x4C // inbound (device->host) checksum constant
)

// Packet is a single 17-byte configuration packet.
type Packet [PacketSize]byte

// ChecksumOutbound computes the host->device checksum over bytes 0..15.
// Formula: (0x55 - sum(bytes[0..16))) & 0xFF, verified against every
// precomputed template byte 16 in the mouse_m908 M913 data tables.
func ChecksumOutbound(p Packet) byte {
	var s int
	for _, b := range p[:PacketSize-1] {
		s += int(b)
	}
	return byte(checksumBase - s)
}

// ChecksumInbound computes the device->host checksum over bytes 1..16.
// Byte 0 (the report id, 0x09) is excluded from the sum.
// Formula: (0x4C - sum(bytes[1..17))) & 0xFF. Only needed when
// interpreting responses; outgoing packets never use it.
func ChecksumInbound(p Packet) byte {
	var s int
	for _, b := range p[1 : PacketSize-1] {
		s += int(b)
	}
	return byte(inboundBase - s)
}

// seal recomputes and writes the outbound checksum. Every mutation of a
// packet must be followed by seal before the packet leaves this package.
func (p *Packet) seal() {
	p[PacketSize-1] = ChecksumOutbound(*p)
}

// Sealed reports whether byte 16 matches the outbound checksum of bytes
// 0..15. All packets returned by the builders satisfy this.
func (p Packet) Sealed() bool {
	return p[PacketSize-1] == ChecksumOutbound(p)
}

// Hex renders the packet as space-separated lowercase hex bytes.
func (p Packet) Hex() string {
	var buf bytes.Buffer
	for i, b := range p {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(&buf, "%02x", b)
	}
	return buf.String()
}

// writePacket returns an empty write-data packet addressed at addrHi/addrLo
// with the given payload length byte.
func writePacket(addrHi, addrLo, length byte) Packet {
	var p Packet
	p[0] = cmdConfig
	p[1] = subWrite
	p[3] = addrHi
	p[4] = addrLo
	p[5] = length
	return p
}

// BuildCommit returns the finalize packet ("08 04 00 ... 49") that commits
// the current configuration to flash. The vendor software always ends a
// session by sending it twice.
func BuildCommit() Packet {
	var p Packet
	p[0] = cmdConfig
	p[1] = subFinalize
	p.seal()
	return p
}

// BuildRaw zero-pads data to 16 bytes and appends the outbound checksum.
// Used by the raw-send diagnostic path; data longer than 16 bytes is an
// error rather than a silent truncation.
func BuildRaw(data []byte) (Packet, error) {
	if len(data) > PacketSize-1 {
		return Packet{}, fmt.Errorf("raw packet data is %d bytes, max %d", len(data), PacketSize-1)
	}
	var p Packet
	copy(p[:], data)
	p.seal()
	return p, nil
}
