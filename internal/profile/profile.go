// Package profile loads and validates declarative M913 profiles.
//
// A profile file describes the desired device state (button bindings, DPI
// slots, LED program, polling rate) in TOML, YAML, or JSON. Loading only
// deserializes; Compile turns the strings into the typed inputs of the
// packet builders and is where all vocabulary and range errors surface.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/m913tools/m913ctl/action"
	"github.com/m913tools/m913ctl/protocol"
)

// Profile is the file-level representation. Zero values mean "leave the
// device setting alone": empty maps, zero DPI values, nil LED, zero
// polling rate.
type Profile struct {
	// Buttons maps button names (side1..side12, left, right, middle,
	// fire) to action names.
	Buttons map[string]string `json:"buttons" yaml:"buttons" toml:"buttons"`

	// Dpi configures up to five slots, in slot order.
	Dpi []DpiSlot `json:"dpi" yaml:"dpi" toml:"dpi"`

	Led *Led `json:"led" yaml:"led" toml:"led"`

	// PollingRate in Hz: 125, 250, 500, or 1000.
	PollingRate int `json:"pollingRate" yaml:"pollingRate" toml:"pollingRate"`
}

// DpiSlot configures one DPI level. Value 0 keeps the factory default.
// Enabled defaults to true when omitted.
type DpiSlot struct {
	Value   int   `json:"value" yaml:"value" toml:"value"`
	Enabled *bool `json:"enabled" yaml:"enabled" toml:"enabled"`
}

// Led configures the logo LED.
type Led struct {
	Mode       string `json:"mode" yaml:"mode" toml:"mode"`
	Color      string `json:"color" yaml:"color" toml:"color"`
	Brightness *int   `json:"brightness" yaml:"brightness" toml:"brightness"`
	Speed      *int   `json:"speed" yaml:"speed" toml:"speed"`
}

// Compiled holds the builder-ready form of a profile. Nil/zero fields
// mean the corresponding sequence should not be sent.
type Compiled struct {
	Assignments map[protocol.Button]action.Code
	Chords      map[protocol.Button]*action.ChordContext
	DpiSlots    *[5]protocol.DpiSlot
	Led         *protocol.LedProgram
	PollingRate int
}

// Load reads a profile file, picking the decoder from the extension
// (.toml, .yaml/.yml, .json).
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p Profile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &p)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &p)
	case ".json":
		err = json.Unmarshal(data, &p)
	default:
		return nil, fmt.Errorf("unsupported profile format %q (use .toml, .yaml, or .json)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &p, nil
}

// Compile validates the profile and resolves it into builder inputs.
func (p *Profile) Compile() (*Compiled, error) {
	out := &Compiled{
		Assignments: make(map[protocol.Button]action.Code),
		Chords:      make(map[protocol.Button]*action.ChordContext),
	}

	for name, actionName := range p.Buttons {
		btn, err := protocol.ParseButtonName(name)
		if err != nil {
			return nil, err
		}
		binding, err := action.ResolveBinding(actionName)
		if err != nil {
			return nil, fmt.Errorf("button %s: %w", name, err)
		}
		out.Assignments[btn] = binding.Code
		if binding.Chord != nil {
			out.Chords[btn] = binding.Chord
		}
	}

	if len(p.Dpi) > 0 {
		if len(p.Dpi) > 5 {
			return nil, fmt.Errorf("profile has %d DPI slots, the device has 5", len(p.Dpi))
		}
		var slots [5]protocol.DpiSlot
		for i := range slots {
			slots[i].Enabled = true
		}
		for i, s := range p.Dpi {
			if s.Value != 0 {
				if s.Value < 100 || s.Value > 16000 || s.Value%100 != 0 {
					return nil, fmt.Errorf("dpi slot %d: value %d out of range (100-16000 in steps of 100)", i+1, s.Value)
				}
				slots[i].Value = uint16(s.Value)
			}
			if s.Enabled != nil {
				slots[i].Enabled = *s.Enabled
			}
		}
		out.DpiSlots = &slots
	}

	if p.Led != nil {
		led, err := compileLed(p.Led)
		if err != nil {
			return nil, err
		}
		out.Led = led
	}

	if p.PollingRate != 0 {
		if err := protocol.ValidatePollingRate(p.PollingRate); err != nil {
			return nil, err
		}
		out.PollingRate = p.PollingRate
	}

	return out, nil
}

func compileLed(l *Led) (*protocol.LedProgram, error) {
	mode, err := protocol.ParseLedMode(l.Mode)
	if err != nil {
		return nil, err
	}

	prog := protocol.LedProgram{
		Mode:       mode,
		Color:      0x00ff00,
		Brightness: 0xff,
		Speed:      0x03,
	}
	if l.Color != "" {
		c, err := ParseColor(l.Color)
		if err != nil {
			return nil, err
		}
		prog.Color = c
	}
	if l.Brightness != nil {
		b := *l.Brightness
		if b < 0 || b > 255 {
			return nil, fmt.Errorf("led brightness %d out of range (0-255)", b)
		}
		prog.Brightness = uint8(b)
	}
	if l.Speed != nil {
		s := *l.Speed
		if s < 1 || s > 5 {
			return nil, fmt.Errorf("led speed %d out of range (1 slowest - 5 fastest)", s)
		}
		prog.Speed = uint8(s)
	}
	return &prog, nil
}

// ParseColor parses a 24-bit RGB color written as "RRGGBB" with an
// optional leading '#'.
func ParseColor(s string) (uint32, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return 0, fmt.Errorf("invalid color %q (expect RRGGBB or #RRGGBB)", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %v", s, err)
	}
	return uint32(v), nil
}
