package protocol

import (
	"fmt"
	"math/bits"

	"github.com/m913tools/m913ctl/action"
)

// Keyboard event type bytes used inside key sub-packets.
const (
	evModDown = 0x80
	evKeyDown = 0x81
	evModUp   = 0x40
	evKeyUp   = 0x41
)

// eventSplit is the number of event bytes carried by the first of the two
// chord sub-packets; the remainder goes into the second packet at the
// button address + 0x0A. A protocol constant, not tunable.
const eventSplit = 9

// maxEvents is the largest down/up event count the two-packet window can
// hold: 9 event bytes after the count in packet 1, 9 more plus the inline
// checksum in packet 2, at 3 bytes per event.
const maxEvents = 6

// EventOverflowError reports a keyboard binding whose down/up event list
// does not fit the two sub-packet window (each modifier bit and each key
// costs one down-event and one up-event).
type EventOverflowError struct {
	Button Button
	Events int
}

func (e *EventOverflowError) Error() string {
	return fmt.Sprintf("binding for button %s needs %d key events, the device stores at most %d",
		e.Button, e.Events, maxEvents)
}

// BuildButtonMapping produces the packet sequence that remaps the given
// buttons. Buttons absent from assignments keep their factory defaults.
//
// Mouse/special codes are written directly into the mapping-packet slot.
// Keyboard (0x90) and multimedia (0x92) codes instead program the
// device's keyboard-event table through sub-packets at the button's key
// address, and the mapping slot receives the fixed keyboard marker.
//
// chords supplies the full key list for multi-key bindings; entries are
// only consulted for codes declaring two or more keys. A chord code
// without a usable context degrades to single-key encoding using the
// scancode embedded in the code — the affected buttons are returned in
// degraded so callers can warn instead of silently applying a different
// binding.
//
// The returned sequence holds all sub-packets first (in button index
// order), then the 8 mapping packets in fixed order. Every packet is
// sealed with the outbound checksum.
func BuildButtonMapping(
	assignments map[Button]action.Code,
	chords map[Button]*action.ChordContext,
) (packets []Packet, degraded []Button, err error) {

	for b := range assignments {
		if b >= ButtonCount {
			return nil, nil, &InvalidButtonError{Index: int(b)}
		}
	}

	mapping := defaultButtonMapping

	var subs []Packet
	// Iterate in button index order so the output is deterministic
	// regardless of map iteration order.
	for b := Button(0); b < ButtonCount; b++ {
		code, ok := assignments[b]
		if !ok {
			continue
		}

		slot := mapping[b/2][slotOffset(b):]
		if !code.NeedsSubPacket() {
			copy(slot[:4], code[:])
			continue
		}

		addr := keyboardKeyAddr[b]
		if code.Kind() == action.KindMultimedia {
			subs = append(subs, buildMultimediaSub(addr, code))
		} else {
			keys, wasDegraded := chordKeys(code, chords[b])
			if wasDegraded {
				degraded = append(degraded, b)
			}
			mods := code[1]
			if !wasDegraded && code.KeyCount() > 1 {
				mods = chords[b].Modifiers
			}
			if n := eventCount(mods, keys); n > maxEvents {
				return nil, nil, &EventOverflowError{Button: b, Events: n}
			}
			subs = append(subs, buildKeyboardSubs(addr, mods, keys)...)
		}
		copy(slot[:4], keyboardSlotMarker[:])
	}

	for i := range mapping {
		mapping[i].seal()
	}

	packets = append(subs, mapping[:]...)
	return packets, degraded, nil
}

// eventCount is the number of down/up events a binding produces. The
// plain single-key form uses a fixed template and never overflows.
func eventCount(mods byte, keys []byte) int {
	if mods == 0x00 && len(keys) == 1 {
		return 2
	}
	return 2*bits.OnesCount8(mods) + 2*len(keys)
}

func slotOffset(b Button) int {
	if b%2 == 0 {
		return 6
	}
	return 10
}

// chordKeys returns the scancode list for a keyboard code. For multi-key
// codes it needs the chord context; a missing or undersized context falls
// back to the single embedded scancode and reports the degradation.
func chordKeys(code action.Code, chord *action.ChordContext) (keys []byte, degraded bool) {
	if code.KeyCount() > 1 {
		if chord != nil && len(chord.Keys) >= 2 {
			return chord.Keys, false
		}
		return []byte{code[2]}, true
	}
	if code[2] != 0x00 {
		return []byte{code[2]}, false
	}
	return nil, false
}

// buildMultimediaSub encodes a consumer-control down/up pair in a single
// sub-packet. Payload: 02 82 CODE EXTRA 42 CODE EXTRA2 CKSUM, with the
// inline checksum (0x55 - sum of the event bytes).
func buildMultimediaSub(addr [2]byte, code action.Code) Packet {
	extra, consumer, extra2 := code[1], code[2], code[3]
	p := writePacket(addr[0], addr[1], 0x08)
	p[6] = 0x02
	p[7] = 0x82
	p[8] = consumer
	p[9] = extra
	p[10] = 0x42
	p[11] = consumer
	p[12] = extra2
	sum := 0x02 + 0x82 + int(consumer) + int(extra) + 0x42 + int(consumer) + int(extra2)
	p[13] = byte(0x55 - sum)
	p.seal()
	return p
}

// buildKeyboardSubs encodes a keyboard binding. A plain single key uses
// the one-packet template; anything involving modifiers or multiple keys
// uses the two-packet event-list form.
func buildKeyboardSubs(addr [2]byte, mods byte, keys []byte) []Packet {
	if mods == 0x00 && len(keys) == 1 {
		p := singleKeyTemplate
		p[3] = addr[0]
		p[4] = addr[1]
		p[8] = keys[0]
		p[11] = keys[0]
		p[13] = byte(0x91 - 2*int(keys[0]))
		p.seal()
		return []Packet{p}
	}
	return buildEventSubs(addr, mods, keys)
}

// buildEventSubs builds the explicit down/up event list and splits it
// across two sub-packets.
//
// Event order (fixed by the protocol, confirmed by USB captures):
//
//  1. every held modifier bit as a down-event, LSB first
//  2. every key as a down-event, in declaration order
//  3. every modifier bit as an up-event, same order as the down-events
//  4. every key as an up-event, in REVERSE declaration order
//
// Each event is 3 bytes (type, code, 0x00). Packet 1 carries the event
// count plus the first 9 event bytes; packet 2, addressed 0x0A further,
// carries the rest plus the inline checksum
// (0x55 - count - sum of all event bytes).
func buildEventSubs(addr [2]byte, mods byte, keys []byte) []Packet {
	var evts []byte
	for bit := 0; bit < 8; bit++ {
		if mods&(1<<bit) != 0 {
			evts = append(evts, evModDown, 1<<bit, 0x00)
		}
	}
	for _, k := range keys {
		evts = append(evts, evKeyDown, k, 0x00)
	}
	for bit := 0; bit < 8; bit++ {
		if mods&(1<<bit) != 0 {
			evts = append(evts, evModUp, 1<<bit, 0x00)
		}
	}
	for i := len(keys) - 1; i >= 0; i-- {
		evts = append(evts, evKeyUp, keys[i], 0x00)
	}

	count := byte(len(evts) / 3)
	sum := int(count)
	for _, b := range evts {
		sum += int(b)
	}
	inner := byte(0x55 - sum)

	first := evts
	if len(first) > eventSplit {
		first = first[:eventSplit]
	}
	rest := evts[len(first):]

	p1 := writePacket(addr[0], addr[1], 0x0a)
	p1[6] = count
	copy(p1[7:], first)
	p1.seal()

	p2 := writePacket(addr[0], addr[1]+0x0a, byte(len(rest)+1))
	copy(p2[6:], rest)
	p2[6+len(rest)] = inner
	p2.seal()

	return []Packet{p1, p2}
}
