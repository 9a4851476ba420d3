package profile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m913tools/m913ctl/action"
	"github.com/m913tools/m913ctl/internal/profile"
	"github.com/m913tools/m913ctl/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadToml(t *testing.T) {
	path := writeProfile(t, "profile.toml", `
pollingRate = 500

[buttons]
side1 = "ctrl+c"
fire = "fire:10:2"

[led]
mode = "steady"
color = "#ff0000"

[[dpi]]
value = 800

[[dpi]]
value = 1600
enabled = false
`)
	p, err := profile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ctrl+c", p.Buttons["side1"])
	assert.Equal(t, 500, p.PollingRate)
	require.Len(t, p.Dpi, 2)
	assert.Equal(t, 800, p.Dpi[0].Value)
	require.NotNil(t, p.Dpi[1].Enabled)
	assert.False(t, *p.Dpi[1].Enabled)
	require.NotNil(t, p.Led)
	assert.Equal(t, "steady", p.Led.Mode)
}

func TestLoadYaml(t *testing.T) {
	path := writeProfile(t, "profile.yaml", `
buttons:
  left: right
  side2: media_play
led:
  mode: respiration
  speed: 4
`)
	p, err := profile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "right", p.Buttons["left"])
	require.NotNil(t, p.Led)
	require.NotNil(t, p.Led.Speed)
	assert.Equal(t, 4, *p.Led.Speed)
}

func TestLoadJson(t *testing.T) {
	path := writeProfile(t, "profile.json", `{
  "buttons": {"middle": "dpi-cycle"},
  "pollingRate": 1000
}`)
	p, err := profile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dpi-cycle", p.Buttons["middle"])
	assert.Equal(t, 1000, p.PollingRate)
}

func TestLoadUnknownExtension(t *testing.T) {
	path := writeProfile(t, "profile.ini", "[buttons]\n")
	_, err := profile.Load(path)
	assert.Error(t, err)
}

func TestCompile(t *testing.T) {
	enabled := false
	p := &profile.Profile{
		Buttons: map[string]string{
			"side1": "a+b",
			"left":  "left",
			"fire":  "media_mute",
		},
		Dpi: []profile.DpiSlot{
			{Value: 800},
			{Value: 1600},
			{Enabled: &enabled},
		},
		Led:         &profile.Led{Mode: "rainbow"},
		PollingRate: 1000,
	}

	c, err := p.Compile()
	require.NoError(t, err)

	assert.Equal(t, action.Code{0x90, 0x00, 0x04, 0x02}, c.Assignments[protocol.Side1])
	require.Contains(t, c.Chords, protocol.Side1)
	assert.Equal(t, []byte{0x04, 0x05}, c.Chords[protocol.Side1].Keys)
	assert.Equal(t, action.Code{0x01, 0x01, 0x00, 0x53}, c.Assignments[protocol.Left])
	assert.NotContains(t, c.Chords, protocol.Left)
	assert.Equal(t, action.Code{0x92, 0x00, 0xe2, 0x00}, c.Assignments[protocol.Fire])

	require.NotNil(t, c.DpiSlots)
	assert.Equal(t, protocol.DpiSlot{Value: 800, Enabled: true}, c.DpiSlots[0])
	assert.Equal(t, protocol.DpiSlot{Value: 1600, Enabled: true}, c.DpiSlots[1])
	assert.Equal(t, protocol.DpiSlot{Value: 0, Enabled: false}, c.DpiSlots[2])
	assert.Equal(t, protocol.DpiSlot{Value: 0, Enabled: true}, c.DpiSlots[3], "omitted slots stay enabled")

	require.NotNil(t, c.Led)
	assert.Equal(t, protocol.LedRainbow, c.Led.Mode)
	assert.Equal(t, 1000, c.PollingRate)
}

func TestCompileErrors(t *testing.T) {
	cases := []struct {
		name string
		p    profile.Profile
	}{
		{"unknown button", profile.Profile{Buttons: map[string]string{"side13": "left"}}},
		{"unknown action", profile.Profile{Buttons: map[string]string{"side1": "notakey"}}},
		{"too many dpi slots", profile.Profile{Dpi: make([]profile.DpiSlot, 6)}},
		{"dpi below range", profile.Profile{Dpi: []profile.DpiSlot{{Value: 50}}}},
		{"dpi above range", profile.Profile{Dpi: []profile.DpiSlot{{Value: 16100}}}},
		{"dpi off step", profile.Profile{Dpi: []profile.DpiSlot{{Value: 850}}}},
		{"bad led mode", profile.Profile{Led: &profile.Led{Mode: "disco"}}},
		{"bad led color", profile.Profile{Led: &profile.Led{Mode: "steady", Color: "red"}}},
		{"bad polling rate", profile.Profile{PollingRate: 300}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.p.Compile()
			assert.Error(t, err)
		})
	}
}

func TestCompileLedDefaults(t *testing.T) {
	p := &profile.Profile{Led: &profile.Led{Mode: "steady"}}
	c, err := p.Compile()
	require.NoError(t, err)
	require.NotNil(t, c.Led)
	assert.Equal(t, uint32(0x00ff00), c.Led.Color)
	assert.Equal(t, uint8(0xff), c.Led.Brightness)
	assert.Equal(t, uint8(3), c.Led.Speed)
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{in: "#ff0000", want: 0xff0000},
		{in: "00FF7f", want: 0x00ff7f},
		{in: " #123456 ", want: 0x123456},
		{in: "#fff", wantErr: true},
		{in: "#gggggg", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := profile.ParseColor(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
