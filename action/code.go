// Package action resolves human-readable action names ("left", "dpi+",
// "fire:50:2", "ctrl_l+shift_l+z") into the 4-byte action codes used in
// the M913 button-mapping packets.
package action

// Code is the normalized 4-byte encoding of a button's behavior.
//
//	[0] kind: discriminates the interpretation of the remaining bytes.
//	    Mouse/special actions use fixed literal codes; 0x90 marks a
//	    keyboard key, 0x92 a multimedia/consumer key.
//	[1] keyboard: modifier bitmask. multimedia: vendor extra byte.
//	[2] keyboard: primary HID scancode. multimedia: consumer code.
//	[3] keyboard: key count for multi-key chords. multimedia: vendor
//	    extra byte. Mouse/special: embedded checksum byte.
type Code [4]byte

// Kind values that select the keyboard-event sub-packet mechanism.
const (
	KindKeyboard   = 0x90
	KindMultimedia = 0x92
	kindFire       = 0x04
)

// Kind returns the discriminator byte.
func (c Code) Kind() byte { return c[0] }

// NeedsSubPacket reports whether this code is programmed through the
// device's internal keyboard-event table rather than stored directly in
// the mapping packet slot.
func (c Code) NeedsSubPacket() bool {
	return c[0] == KindKeyboard || c[0] == KindMultimedia
}

// KeyCount returns the number of keys a keyboard code declares. Single-key
// and modifier-only bindings store 0 here.
func (c Code) KeyCount() int {
	if c[0] != KindKeyboard {
		return 0
	}
	return int(c[3])
}

// ChordContext carries the full key list of a multi-key binding. The
// 4-byte Code only holds the first scancode and a count, so building the
// event sub-packets for a chord needs this alongside the Code. It is
// always passed explicitly with the assignment; resolving two chords in a
// row never makes one observe the other's keys.
type ChordContext struct {
	Modifiers byte   // HID modifier bitmask, same encoding as Code[1]
	Keys      []byte // HID scancodes in declaration order
}

// Binding couples a resolved Code with its chord context. Chord is nil
// except for keyboard codes declaring two or more keys.
type Binding struct {
	Code  Code
	Chord *ChordContext
}
