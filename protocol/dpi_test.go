package protocol_test

import (
	"testing"

	"github.com/m913tools/m913ctl/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allEnabled() [5]protocol.DpiSlot {
	var slots [5]protocol.DpiSlot
	for i := range slots {
		slots[i].Enabled = true
	}
	return slots
}

func TestBuildDpiProfileDefaults(t *testing.T) {
	packets := protocol.BuildDpiProfile(allEnabled())
	require.Len(t, packets, 7)

	for i, p := range packets {
		assert.True(t, p.Sealed(), "packet %d checksum", i)
	}

	// Zero values keep every factory slot code.
	assert.Equal(t, protocol.Packet{
		0x08, 0x07, 0x00, 0x00, 0x0c, 0x08,
		0x00, 0x00, 0x00, 0x55, 0x02, 0x02, 0x00, 0x51,
		0x00, 0x00, 0x88,
	}, packets[0])

	// All levels enabled keeps the factory enable pair.
	assert.Equal(t, byte(0x05), packets[3][6])
	assert.Equal(t, byte(0x50), packets[3][7])
}

func TestBuildDpiProfileSlotCodes(t *testing.T) {
	slots := allEnabled()
	slots[0].Value = 800
	slots[1].Value = 1600
	slots[2].Value = 3200
	slots[4].Value = 16000

	packets := protocol.BuildDpiProfile(slots)
	require.Len(t, packets, 7)

	// Slot codes land at offsets 6 and 10 with byte 2 one position
	// further, leaving the template 0x00 in between.
	p0 := packets[0]
	assert.Equal(t, []byte{0x09, 0x09, 0x00, 0x43}, []byte(p0[6:10]), "slot 1 = 800")
	assert.Equal(t, []byte{0x12, 0x12, 0x00, 0x31}, []byte(p0[10:14]), "slot 2 = 1600")

	p1 := packets[1]
	assert.Equal(t, []byte{0x26, 0x26, 0x00, 0x09}, []byte(p1[6:10]), "slot 3 = 3200")
	assert.Equal(t, []byte{0x04, 0x04, 0x00, 0x4d}, []byte(p1[10:14]), "slot 4 keeps factory 400")

	p2 := packets[2]
	assert.Equal(t, []byte{0xbd, 0xbd, 0x00, 0xdb}, []byte(p2[6:10]), "slot 5 = 16000")

	for i, p := range packets {
		assert.True(t, p.Sealed(), "packet %d checksum", i)
	}
}

func TestBuildDpiProfileUnknownValueKeepsTemplate(t *testing.T) {
	slots := allEnabled()
	slots[0].Value = 850 // no wire encoding between table entries

	packets := protocol.BuildDpiProfile(slots)
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x55}, []byte(packets[0][6:10]))
}

func TestBuildDpiProfileEnablePair(t *testing.T) {
	cases := []struct {
		name     string
		disabled []int
		e1, e2   byte
	}{
		{name: "all enabled", disabled: nil, e1: 0x05, e2: 0x50},
		{name: "slot 5 off", disabled: []int{4}, e1: 0x04, e2: 0x51},
		{name: "slots 4 and 5 off", disabled: []int{3, 4}, e1: 0x03, e2: 0x52},
		{name: "slots 3 to 5 off", disabled: []int{2, 3, 4}, e1: 0x02, e2: 0x53},
		{name: "only slot 1 on", disabled: []int{1, 2, 3, 4}, e1: 0x01, e2: 0x54},
		// The device rejects zero enabled levels; keep the factory pair.
		{name: "all disabled", disabled: []int{0, 1, 2, 3, 4}, e1: 0x05, e2: 0x50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			slots := allEnabled()
			for _, i := range tc.disabled {
				slots[i].Enabled = false
			}
			packets := protocol.BuildDpiProfile(slots)
			assert.Equal(t, tc.e1, packets[3][6])
			assert.Equal(t, tc.e2, packets[3][7])
			assert.True(t, packets[3].Sealed())
		})
	}
}

func TestBuildDpiProfileTrailer(t *testing.T) {
	packets := protocol.BuildDpiProfile(allEnabled())
	require.Len(t, packets, 7)

	// The three trailer packets are fixed regardless of the slot values.
	want := []protocol.Packet{
		{0x08, 0x07, 0x00, 0x00, 0x2c, 0x08, 0xff, 0x00, 0x00, 0x56, 0x00, 0x00, 0xff, 0x56, 0x00, 0x00, 0x68},
		{0x08, 0x07, 0x00, 0x00, 0x34, 0x08, 0x00, 0xff, 0x00, 0x56, 0xff, 0xff, 0x00, 0x57, 0x00, 0x00, 0x60},
		{0x08, 0x07, 0x00, 0x00, 0x3c, 0x04, 0xff, 0x55, 0x7d, 0x84, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xb1},
	}
	assert.Equal(t, want, packets[4:])

	slots := allEnabled()
	slots[0].Value = 3200
	assert.Equal(t, want, protocol.BuildDpiProfile(slots)[4:])
}
