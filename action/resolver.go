package action

import (
	"strconv"
	"strings"
)

// Resolve parses an action name into its 4-byte code. See ResolveBinding
// for the chord context of multi-key keyboard expressions; callers that
// only map mouse/special actions can ignore it.
func Resolve(name string) (Code, error) {
	b, err := ResolveBinding(name)
	return b.Code, err
}

// ResolveBinding parses an action name into a Binding.
//
// Resolution order, first match wins:
//
//  1. "fire:<speed>:<times>" — parametric hardware rapid-fire, speed in
//     [3,255], times in [0,3].
//  2. Direct lookup in the mouse/special/multimedia table.
//  3. A "+"-joined keyboard expression: zero or more modifier tokens
//     followed by one or more key tokens, e.g. "ctrl_l+shift_l+z" or
//     "a+b". Expressions with two or more keys also carry a ChordContext
//     with the full ordered key list.
//
// Matching is case-insensitive. The parse is pure; repeated calls with
// the same input yield identical results.
func ResolveBinding(name string) (Binding, error) {
	s := strings.ToLower(strings.TrimSpace(name))

	if strings.HasPrefix(s, "fire:") {
		c, err := resolveFire(s)
		return Binding{Code: c}, err
	}

	if c, ok := specialActions[s]; ok {
		return Binding{Code: c}, nil
	}

	return resolveKeyboard(s)
}

// resolveFire parses "fire:<speed>:<times>". The embedded checksum makes
// the code self-validating on the device side:
// byte 3 = (0x55 - (0x04 + speed + times)) & 0xFF.
func resolveFire(s string) (Code, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return Code{}, &InvalidParameterError{Name: "fire action", Value: s}
	}
	speed, err := strconv.Atoi(parts[1])
	if err != nil || speed < 3 || speed > 255 {
		return Code{}, &InvalidParameterError{Name: "fire speed", Value: parts[1]}
	}
	times, err := strconv.Atoi(parts[2])
	if err != nil || times < 0 || times > 3 {
		return Code{}, &InvalidParameterError{Name: "fire repeat count", Value: parts[2]}
	}
	sum := byte(0x55 - (kindFire + speed + times))
	return Code{kindFire, byte(speed), byte(times), sum}, nil
}

func resolveKeyboard(s string) (Binding, error) {
	var (
		mods byte
		keys []byte
	)
	tokens := strings.Split(s, "+")
	seen := 0
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		seen++
		if bit, ok := modifierBits[tok]; ok {
			mods |= bit
			continue
		}
		if sc, ok := keyCodes[tok]; ok {
			keys = append(keys, sc)
			continue
		}
		return Binding{}, &UnknownTokenError{Token: tok}
	}
	if seen == 0 {
		return Binding{}, &UnknownTokenError{Token: s}
	}

	switch len(keys) {
	case 0:
		// Modifier-only binding.
		return Binding{Code: Code{KindKeyboard, mods, 0x00, 0x00}}, nil
	case 1:
		return Binding{Code: Code{KindKeyboard, mods, keys[0], 0x00}}, nil
	default:
		// The code keeps only the first scancode and a count; the full
		// chord travels in the context.
		return Binding{
			Code:  Code{KindKeyboard, mods, keys[0], byte(len(keys))},
			Chord: &ChordContext{Modifiers: mods, Keys: keys},
		}, nil
	}
}
