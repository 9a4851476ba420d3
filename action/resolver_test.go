package action_test

import (
	"testing"

	"github.com/m913tools/m913ctl/action"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSpecialActions(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want action.Code
	}{
		{"mouse left", "left", action.Code{0x01, 0x01, 0x00, 0x53}},
		{"mouse right", "right", action.Code{0x01, 0x02, 0x00, 0x52}},
		{"mouse middle", "middle", action.Code{0x01, 0x04, 0x00, 0x50}},
		{"dpi up", "dpi+", action.Code{0x02, 0x02, 0x00, 0x51}},
		{"dpi cycle alias", "dpi-loop", action.Code{0x02, 0x01, 0x00, 0x52}},
		{"disable alias", "disable", action.Code{0x00, 0x00, 0x00, 0x55}},
		{"default fire", "fire", action.Code{0x04, 0x3a, 0x03, 0x14}},
		{"media play", "media_play", action.Code{0x92, 0x00, 0xcd, 0x00}},
		{"media player", "media_player", action.Code{0x92, 0x01, 0x83, 0x01}},
		{"www back", "www_back", action.Code{0x92, 0x02, 0x24, 0x02}},
		{"case insensitive", "LEFT", action.Code{0x01, 0x01, 0x00, 0x53}},
		{"surrounding whitespace", "  forward  ", action.Code{0x01, 0x10, 0x00, 0x44}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := action.Resolve(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// Mouse button names shadow the arrow-key tokens of the same spelling; the
// direct table lookup must win.
func TestResolveTableBeatsArrowKeys(t *testing.T) {
	got, err := action.Resolve("left")
	require.NoError(t, err)
	assert.Equal(t, byte(0x01), got[0], "expected a mouse code, not a keyboard code")
}

func TestResolveFire(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    action.Code
		wantErr bool
	}{
		{name: "minimum speed", in: "fire:3:0", want: action.Code{0x04, 0x03, 0x00, 0x4e}},
		{name: "default equivalent", in: "fire:58:3", want: action.Code{0x04, 0x3a, 0x03, 0x14}},
		{name: "maximum speed", in: "fire:255:3", want: action.Code{0x04, 0xff, 0x03, 0x4f}},
		{name: "speed too low", in: "fire:2:0", wantErr: true},
		{name: "speed too high", in: "fire:256:0", wantErr: true},
		{name: "times too high", in: "fire:10:4", wantErr: true},
		{name: "negative times", in: "fire:10:-1", wantErr: true},
		{name: "non-numeric speed", in: "fire:fast:1", wantErr: true},
		{name: "missing times", in: "fire:10", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := action.Resolve(tc.in)
			if tc.wantErr {
				var perr *action.InvalidParameterError
				require.ErrorAs(t, err, &perr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			// Fire codes carry their own checksum: all four bytes sum to 0x55.
			sum := int(got[0]) + int(got[1]) + int(got[2]) + int(got[3])
			assert.Equal(t, 0x55, sum&0xff)
		})
	}
}

func TestResolveKeyboard(t *testing.T) {
	cases := []struct {
		name      string
		in        string
		want      action.Code
		wantChord *action.ChordContext
	}{
		{name: "plain key", in: "a", want: action.Code{0x90, 0x00, 0x04, 0x00}},
		{name: "function key", in: "f12", want: action.Code{0x90, 0x00, 0x45, 0x00}},
		{name: "modifier plus key", in: "ctrl+c", want: action.Code{0x90, 0x01, 0x06, 0x00}},
		{name: "left suffix", in: "ctrl_l+shift_l+z", want: action.Code{0x90, 0x03, 0x1d, 0x00}},
		{name: "right modifier", in: "alt_r+tab", want: action.Code{0x90, 0x40, 0x2b, 0x00}},
		{name: "modifier only", in: "shift", want: action.Code{0x90, 0x02, 0x00, 0x00}},
		{name: "uppercase tokens", in: "CTRL+C", want: action.Code{0x90, 0x01, 0x06, 0x00}},
		{
			name:      "two key chord",
			in:        "a+b",
			want:      action.Code{0x90, 0x00, 0x04, 0x02},
			wantChord: &action.ChordContext{Keys: []byte{0x04, 0x05}},
		},
		{
			name:      "chord with modifier",
			in:        "ctrl+a+b+c",
			want:      action.Code{0x90, 0x01, 0x04, 0x03},
			wantChord: &action.ChordContext{Modifiers: 0x01, Keys: []byte{0x04, 0x05, 0x06}},
		},
		{
			name:      "empty tokens skipped",
			in:        "a++b",
			want:      action.Code{0x90, 0x00, 0x04, 0x02},
			wantChord: &action.ChordContext{Keys: []byte{0x04, 0x05}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := action.ResolveBinding(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Code)
			assert.Equal(t, tc.wantChord, got.Chord)
		})
	}
}

func TestResolveUnknownToken(t *testing.T) {
	for _, in := range []string{"notakey", "ctrl+notakey", "", "+"} {
		t.Run(in, func(t *testing.T) {
			_, err := action.ResolveBinding(in)
			var uerr *action.UnknownTokenError
			require.ErrorAs(t, err, &uerr)
		})
	}
}

// Resolving one chord must not leak state into the next resolution.
func TestResolveChordsAreIndependent(t *testing.T) {
	first, err := action.ResolveBinding("ctrl+a+b")
	require.NoError(t, err)
	second, err := action.ResolveBinding("x+y")
	require.NoError(t, err)

	assert.Equal(t, []byte{0x04, 0x05}, first.Chord.Keys)
	assert.Equal(t, byte(0x01), first.Chord.Modifiers)
	assert.Equal(t, []byte{0x1b, 0x1c}, second.Chord.Keys)
	assert.Equal(t, byte(0x00), second.Chord.Modifiers)

	again, err := action.ResolveBinding("ctrl+a+b")
	require.NoError(t, err)
	assert.Equal(t, first, again)
}
