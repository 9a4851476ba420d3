package protocol

// DpiSlot configures one of the five hardware DPI levels. Value 0 keeps
// the factory default for that slot.
type DpiSlot struct {
	Value   uint16
	Enabled bool
}

// dpiCodes maps a DPI value to its 3-byte wire encoding. The table is
// sparse and non-linear (taken verbatim from the mouse_m908 data tables);
// values between entries have no known encoding, so the builder leaves
// the template default for anything not listed here instead of
// interpolating.
var dpiCodes = map[uint16][3]byte{
	100:   {0x00, 0x00, 0x55},
	200:   {0x02, 0x02, 0x51},
	300:   {0x03, 0x03, 0x4f},
	400:   {0x04, 0x04, 0x4d},
	500:   {0x05, 0x05, 0x4b},
	600:   {0x06, 0x06, 0x49},
	700:   {0x07, 0x07, 0x47},
	800:   {0x09, 0x09, 0x43},
	900:   {0x0a, 0x0a, 0x41},
	1000:  {0x0b, 0x0b, 0x3f},
	1100:  {0x0c, 0x0c, 0x3d},
	1200:  {0x0d, 0x0d, 0x3b},
	1300:  {0x0e, 0x0e, 0x39},
	1400:  {0x10, 0x10, 0x35},
	1500:  {0x11, 0x11, 0x33},
	1600:  {0x12, 0x12, 0x31},
	1700:  {0x13, 0x13, 0x2f},
	1800:  {0x14, 0x14, 0x2d},
	1900:  {0x16, 0x16, 0x29},
	2000:  {0x17, 0x17, 0x27},
	2100:  {0x18, 0x18, 0x25},
	2200:  {0x19, 0x19, 0x23},
	2300:  {0x1a, 0x1a, 0x21},
	2400:  {0x1b, 0x1b, 0x1f},
	2500:  {0x1d, 0x1d, 0x1b},
	2600:  {0x1e, 0x1e, 0x19},
	2700:  {0x1f, 0x1f, 0x17},
	2800:  {0x20, 0x20, 0x15},
	2900:  {0x21, 0x21, 0x13},
	3000:  {0x23, 0x23, 0x0f},
	3200:  {0x26, 0x26, 0x09},
	3600:  {0x2a, 0x2a, 0x01},
	4000:  {0x2f, 0x2f, 0xf7},
	4800:  {0x39, 0x39, 0xe3},
	5000:  {0x3b, 0x3b, 0xdf},
	5500:  {0x41, 0x41, 0xd3},
	6000:  {0x47, 0x47, 0xc7},
	6400:  {0x4c, 0x4c, 0xbd},
	6600:  {0x4f, 0x4f, 0xb7},
	7000:  {0x53, 0x53, 0xaf},
	7200:  {0x56, 0x56, 0xa9},
	7300:  {0x57, 0x57, 0xa7},
	7400:  {0x58, 0x58, 0xa5},
	7500:  {0x59, 0x59, 0xa3},
	8000:  {0x5f, 0x5f, 0x97},
	8500:  {0x65, 0x65, 0x8b},
	9000:  {0x6b, 0x6b, 0x7f},
	9600:  {0x73, 0x73, 0x6f},
	10000: {0x77, 0x77, 0x67},
	11000: {0x83, 0x83, 0x4f},
	12000: {0x8f, 0x8f, 0x37},
	13000: {0x9b, 0x9b, 0x1f},
	14000: {0xa7, 0xa7, 0x07},
	15000: {0xb3, 0xb3, 0xef},
	16000: {0xbd, 0xbd, 0xdb},
}

// BuildDpiProfile produces the 7-packet DPI sequence: the 4 data packets
// patched from their template, followed by the 3 fixed trailer packets.
//
// Slots 1+2 live in packet 0 (offsets 6 and 10), slots 3+4 in packet 1,
// slot 5 in packet 2. A slot's 3 code bytes are written with a one-byte
// gap: bytes 0 and 1 are adjacent, byte 2 sits one position further.
//
// The enabled-levels byte pair in packet 3 is derived from the highest
// disabled slot. At least one slot must stay enabled; a request to
// disable all five leaves the pair at its template default rather than
// emitting a state the device rejects.
func BuildDpiProfile(slots [5]DpiSlot) []Packet {
	buf := dpiTemplate

	set := func(pkt, off int, value uint16) {
		code, ok := dpiCodes[value]
		if !ok {
			return // unknown DPI, keep template value
		}
		buf[pkt][off] = code[0]
		buf[pkt][off+1] = code[1]
		buf[pkt][off+3] = code[2] // off+2 stays 0x00
	}

	if slots[0].Value != 0 {
		set(0, 6, slots[0].Value)
	}
	if slots[1].Value != 0 {
		set(0, 10, slots[1].Value)
	}
	if slots[2].Value != 0 {
		set(1, 6, slots[2].Value)
	}
	if slots[3].Value != 0 {
		set(1, 10, slots[3].Value)
	}
	if slots[4].Value != 0 {
		set(2, 6, slots[4].Value)
	}

	anyEnabled := false
	for _, s := range slots {
		if s.Enabled {
			anyEnabled = true
			break
		}
	}
	if anyEnabled {
		e1, e2 := byte(0x05), byte(0x50)
		if !slots[4].Enabled {
			e1, e2 = 0x04, 0x51
		}
		if !slots[3].Enabled {
			e1, e2 = 0x03, 0x52
		}
		if !slots[2].Enabled {
			e1, e2 = 0x02, 0x53
		}
		if !slots[1].Enabled {
			e1, e2 = 0x01, 0x54
		}
		buf[3][6] = e1
		buf[3][7] = e2
	}

	for i := range buf {
		buf[i].seal()
	}

	packets := append([]Packet{}, buf[:]...)
	return append(packets, dpiTrailer[:]...)
}
