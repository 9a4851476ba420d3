package protocol

// Factory-default templates, taken byte for byte from the mouse_m908 M913
// data tables and verified against live captures. Builders copy a template
// and patch specific offsets; they never build these packets from scratch,
// so any byte the builder does not touch keeps its factory value.

// defaultButtonMapping holds the 8 button-mapping packets. Two buttons per
// packet (offsets 6 and 10); addresses step by 0x08 from 0x60.
var defaultButtonMapping = [8]Packet{
	{0x08, 0x07, 0x00, 0x00, 0x60, 0x08, 0x00, 0x00, 0x00, 0x55, 0x05, 0x00, 0x00, 0x50, 0x00, 0x00, 0x34},
	{0x08, 0x07, 0x00, 0x00, 0x68, 0x08, 0x05, 0x00, 0x00, 0x50, 0x01, 0x08, 0x00, 0x4c, 0x00, 0x00, 0x2c},
	{0x08, 0x07, 0x00, 0x00, 0x70, 0x08, 0x05, 0x00, 0x00, 0x50, 0x05, 0x00, 0x00, 0x50, 0x00, 0x00, 0x24},
	{0x08, 0x07, 0x00, 0x00, 0x78, 0x08, 0x01, 0x02, 0x00, 0x52, 0x01, 0x01, 0x00, 0x53, 0x00, 0x00, 0x1c},
	{0x08, 0x07, 0x00, 0x00, 0x80, 0x08, 0x05, 0x00, 0x00, 0x50, 0x05, 0x00, 0x00, 0x50, 0x00, 0x00, 0x14},
	{0x08, 0x07, 0x00, 0x00, 0x88, 0x08, 0x01, 0x04, 0x00, 0x50, 0x04, 0x3a, 0x03, 0x14, 0x00, 0x00, 0x0c},
	{0x08, 0x07, 0x00, 0x00, 0x90, 0x08, 0x05, 0x00, 0x00, 0x50, 0x05, 0x00, 0x00, 0x50, 0x00, 0x00, 0x04},
	{0x08, 0x07, 0x00, 0x00, 0x98, 0x08, 0x05, 0x00, 0x00, 0x50, 0x05, 0x00, 0x00, 0x50, 0x00, 0x00, 0xfc},
}

// keyboardSlotMarker is written into the mapping-packet slot of any button
// bound to a keyboard or multimedia key. The slot never stores raw key
// data; the real events live in sub-packets at the button's key address.
var keyboardSlotMarker = [4]byte{0x05, 0x00, 0x00, 0x50}

// keyboardKeyAddr holds the per-button address bytes (packet bytes 3 and 4)
// of the device's internal keyboard-event table.
var keyboardKeyAddr = [16][2]byte{
	{0x01, 0x00}, // Side1
	{0x01, 0x20}, // Side2
	{0x01, 0x40}, // Side3
	{0x01, 0x60}, // Side4
	{0x01, 0x80}, // Side5
	{0x01, 0xa0}, // Side6
	{0x01, 0xc0}, // Right
	{0x01, 0xe0}, // Left
	{0x02, 0x00}, // Side7
	{0x02, 0x20}, // Side8
	{0x02, 0x40}, // Middle
	{0x02, 0x60}, // Fire
	{0x02, 0x80}, // Side9
	{0x02, 0xa0}, // Side10
	{0x02, 0xc0}, // Side11
	{0x02, 0xe0}, // Side12
}

// singleKeyTemplate is the sub-packet for a plain key without modifiers.
// Bytes 3/4 take the button address, bytes 8 and 11 the scancode, byte 13
// the inner checksum (0x91 - 2*scancode).
var singleKeyTemplate = Packet{
	0x08, 0x07, 0x00, 0x01, 0x60, 0x08,
	0x02, 0x81, 0x21, 0x00, 0x41, 0x21, 0x00, 0x4f,
	0x00, 0x00, 0x88,
}

// dpiTemplate holds the 4 DPI data packets: slots 1+2, slots 3+4, slot 5,
// and the enabled-levels control packet.
var dpiTemplate = [4]Packet{
	{0x08, 0x07, 0x00, 0x00, 0x0c, 0x08, 0x00, 0x00, 0x00, 0x55, 0x02, 0x02, 0x00, 0x51, 0x00, 0x00, 0x88},
	{0x08, 0x07, 0x00, 0x00, 0x14, 0x08, 0x03, 0x03, 0x00, 0x4f, 0x04, 0x04, 0x00, 0x4d, 0x00, 0x00, 0x80},
	{0x08, 0x07, 0x00, 0x00, 0x1c, 0x04, 0x05, 0x05, 0x00, 0x4b, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xd1},
	{0x08, 0x07, 0x00, 0x00, 0x02, 0x02, 0x05, 0x50, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xed},
}

// dpiTrailer holds the 3 fixed packets that must always follow a DPI
// write. Their purpose is not fully understood; the vendor software sends
// them unconditionally and the device misbehaves without them.
var dpiTrailer = [3]Packet{
	{0x08, 0x07, 0x00, 0x00, 0x2c, 0x08, 0xff, 0x00, 0x00, 0x56, 0x00, 0x00, 0xff, 0x56, 0x00, 0x00, 0x68},
	{0x08, 0x07, 0x00, 0x00, 0x34, 0x08, 0x00, 0xff, 0x00, 0x56, 0xff, 0xff, 0x00, 0x57, 0x00, 0x00, 0x60},
	{0x08, 0x07, 0x00, 0x00, 0x3c, 0x04, 0xff, 0x55, 0x7d, 0x84, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xb1},
}

// LED templates. The color/brightness/speed bytes inside are placeholders
// patched by BuildLedProgram; Off and Rainbow are sent verbatim.
var ledOff = [1]Packet{
	{0x08, 0x07, 0x00, 0x00, 0x58, 0x02, 0x00, 0x55, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x97},
}

var ledRespiration = [2]Packet{
	{0x08, 0x07, 0x00, 0x00, 0x54, 0x08, 0xff, 0x00, 0x00, 0x57, 0x01, 0x54, 0xff, 0x56, 0x00, 0x00, 0xeb},
	{0x08, 0x07, 0x00, 0x00, 0x5c, 0x02, 0x03, 0x52, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x93},
}

var ledRainbow = [2]Packet{
	{0x08, 0x07, 0x00, 0x00, 0x54, 0x08, 0xff, 0x00, 0xff, 0x57, 0x03, 0x52, 0x80, 0xd5, 0x00, 0x00, 0xeb},
	{0x08, 0x07, 0x00, 0x00, 0x5c, 0x02, 0x03, 0x52, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x93},
}

var ledSteady = [1]Packet{
	{0x08, 0x07, 0x00, 0x00, 0x54, 0x08, 0xff, 0x00, 0x00, 0x57, 0x01, 0x54, 0xff, 0x56, 0x00, 0x00, 0xeb},
}
