package protocol_test

import (
	"testing"

	"github.com/m913tools/m913ctl/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLedMode(t *testing.T) {
	cases := []struct {
		in   string
		want protocol.LedMode
	}{
		{"off", protocol.LedOff},
		{"steady", protocol.LedSteady},
		{"static", protocol.LedSteady},
		{"respiration", protocol.LedRespiration},
		{"breathing", protocol.LedRespiration},
		{"rainbow", protocol.LedRainbow},
		{"RAINBOW", protocol.LedRainbow},
		{" off ", protocol.LedOff},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := protocol.ParseLedMode(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := protocol.ParseLedMode("disco")
	assert.Error(t, err)
}

func TestBuildLedProgramOff(t *testing.T) {
	packets := protocol.BuildLedProgram(protocol.LedProgram{Mode: protocol.LedOff})
	require.Len(t, packets, 1)
	assert.Equal(t, protocol.Packet{
		0x08, 0x07, 0x00, 0x00, 0x58, 0x02,
		0x00, 0x55, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x97,
	}, packets[0])
}

func TestBuildLedProgramSteady(t *testing.T) {
	packets := protocol.BuildLedProgram(protocol.LedProgram{
		Mode:       protocol.LedSteady,
		Color:      0xff0000,
		Brightness: 0x80,
	})
	require.Len(t, packets, 1)
	p := packets[0]

	assert.Equal(t, byte(0x54), p[4])
	assert.Equal(t, []byte{0xff, 0x00, 0x00}, []byte(p[6:9]), "RGB")
	assert.Equal(t, byte(0x56), p[9], "color checksum 0x55-0xff-0-0")
	assert.Equal(t, byte(0x01), p[10], "steady mode byte")
	assert.Equal(t, byte(0x54), p[11])
	assert.Equal(t, byte(0x80), p[12], "brightness")
	assert.Equal(t, byte(0xd5), p[13], "brightness checksum wraps")
	assert.True(t, p.Sealed())
}

func TestBuildLedProgramRespiration(t *testing.T) {
	packets := protocol.BuildLedProgram(protocol.LedProgram{
		Mode:       protocol.LedRespiration,
		Color:      0x00ff00,
		Brightness: 0xff,
		Speed:      5,
	})
	require.Len(t, packets, 2)
	p1, p2 := packets[0], packets[1]

	assert.Equal(t, []byte{0x00, 0xff, 0x00}, []byte(p1[6:9]))
	assert.Equal(t, byte(0x56), p1[9])
	assert.Equal(t, byte(0x02), p1[10], "respiration mode byte")
	assert.Equal(t, byte(0x53), p1[11])
	assert.Equal(t, byte(0xff), p1[12])
	assert.Equal(t, byte(0x56), p1[13])

	assert.Equal(t, byte(0x5c), p2[4])
	assert.Equal(t, byte(0x05), p2[6], "speed")
	assert.Equal(t, byte(0x50), p2[7])

	assert.True(t, p1.Sealed())
	assert.True(t, p2.Sealed())
}

func TestBuildLedProgramRainbow(t *testing.T) {
	// Rainbow ignores color/brightness/speed entirely.
	a := protocol.BuildLedProgram(protocol.LedProgram{Mode: protocol.LedRainbow})
	b := protocol.BuildLedProgram(protocol.LedProgram{
		Mode: protocol.LedRainbow, Color: 0x123456, Brightness: 7, Speed: 1,
	})
	require.Len(t, a, 2)
	assert.Equal(t, a, b)
	assert.True(t, a[0].Sealed())
	assert.True(t, a[1].Sealed())
}
