package action

import "sort"

// Modifier key bitmasks (byte 1 of a keyboard action code). Standard USB
// HID modifier byte: bits 0-3 left ctrl/shift/alt/GUI, bits 4-7 the right
// variants.
const (
	ModLeftCtrl   = 0x01
	ModLeftShift  = 0x02
	ModLeftAlt    = 0x04
	ModLeftSuper  = 0x08
	ModRightCtrl  = 0x10
	ModRightShift = 0x20
	ModRightAlt   = 0x40
	ModRightSuper = 0x80
)

// modifierBits maps modifier tokens to their HID bitmask. Unsuffixed
// tokens default to the left variant.
var modifierBits = map[string]byte{
	"ctrl_l":  ModLeftCtrl,
	"shift_l": ModLeftShift,
	"alt_l":   ModLeftAlt,
	"super_l": ModLeftSuper,
	"meta_l":  ModLeftSuper,
	"ctrl_r":  ModRightCtrl,
	"shift_r": ModRightShift,
	"alt_r":   ModRightAlt,
	"super_r": ModRightSuper,
	"meta_r":  ModRightSuper,
	"ctrl":    ModLeftCtrl,
	"shift":   ModLeftShift,
	"alt":     ModLeftAlt,
	"super":   ModLeftSuper,
	"meta":    ModLeftSuper,
}

// keyCodes maps key tokens to USB HID keyboard usage codes (HID Usage
// Tables, Keyboard/Keypad page).
var keyCodes = map[string]byte{
	// Letters
	"a": 0x04, "b": 0x05, "c": 0x06, "d": 0x07,
	"e": 0x08, "f": 0x09, "g": 0x0a, "h": 0x0b,
	"i": 0x0c, "j": 0x0d, "k": 0x0e, "l": 0x0f,
	"m": 0x10, "n": 0x11, "o": 0x12, "p": 0x13,
	"q": 0x14, "r": 0x15, "s": 0x16, "t": 0x17,
	"u": 0x18, "v": 0x19, "w": 0x1a, "x": 0x1b,
	"y": 0x1c, "z": 0x1d,

	// Number row
	"1": 0x1e, "2": 0x1f, "3": 0x20, "4": 0x21,
	"5": 0x22, "6": 0x23, "7": 0x24, "8": 0x25,
	"9": 0x26, "0": 0x27,

	// Common non-alpha keys
	"enter": 0x28, "return": 0x28,
	"escape": 0x29, "esc": 0x29,
	"backspace": 0x2a,
	"tab":       0x2b,
	"space":     0x2c,
	"minus":     0x2d, "-": 0x2d,
	"equal": 0x2e, "=": 0x2e,
	"lbracket": 0x2f, "[": 0x2f,
	"rbracket": 0x30, "]": 0x30,
	"backslash": 0x31, "\\": 0x31,
	"semicolon": 0x33, ";": 0x33,
	"quote": 0x34, "'": 0x34,
	"grave": 0x35, "`": 0x35,
	"comma": 0x36, ",": 0x36,
	"dot": 0x37, ".": 0x37,
	"slash": 0x38, "/": 0x38,
	"capslock": 0x39,

	// Function keys
	"f1": 0x3a, "f2": 0x3b, "f3": 0x3c, "f4": 0x3d,
	"f5": 0x3e, "f6": 0x3f, "f7": 0x40, "f8": 0x41,
	"f9": 0x42, "f10": 0x43, "f11": 0x44, "f12": 0x45,
	"f13": 0x68, "f14": 0x69, "f15": 0x6a, "f16": 0x6b,
	"f17": 0x6c, "f18": 0x6d, "f19": 0x6e, "f20": 0x6f,
	"f21": 0x70, "f22": 0x71, "f23": 0x72, "f24": 0x73,

	// Navigation
	"printscreen": 0x46,
	"scrolllock":  0x47,
	"pause":       0x48,
	"insert":      0x49,
	"home":        0x4a,
	"pageup":      0x4b,
	"delete":      0x4c,
	"end":         0x4d,
	"pagedown":    0x4e,
	"right":       0x4f,
	"left":        0x50,
	"down":        0x51,
	"up":          0x52,

	// Numpad
	"num0": 0x62, "num1": 0x59, "num2": 0x5a, "num3": 0x5b,
	"num4": 0x5c, "num5": 0x5d, "num6": 0x5e, "num7": 0x5f,
	"num8": 0x60, "num9": 0x61,
	"numenter": 0x58, "numdot": 0x63,
	"numplus": 0x57, "numminus": 0x56,
	"nummul": 0x55, "numdiv": 0x54,
	"numlock": 0x53,
}

// KeyNames returns the sorted vocabulary of key tokens, for help output.
func KeyNames() []string {
	return sortedKeys(keyCodes)
}

// ModifierNames returns the sorted vocabulary of modifier tokens.
func ModifierNames() []string {
	return sortedKeys(modifierBits)
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
