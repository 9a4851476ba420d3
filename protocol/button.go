package protocol

import (
	"fmt"
	"strings"
)

// Button identifies one of the 16 physical buttons. The values follow the
// mouse_m908 index order used by the 8-packet mapping sequence: two
// buttons per packet, button b at packet b/2, payload offset 6 (even b)
// or 10 (odd b).
type Button uint8

const (
	Side1 Button = iota
	Side2
	Side3
	Side4
	Side5
	Side6
	Right
	Left
	Side7
	Side8
	Middle
	Fire
	Side9
	Side10
	Side11
	Side12

	ButtonCount = 16
)

var buttonNames = map[string]Button{
	"button_1":      Side1,
	"button_2":      Side2,
	"button_3":      Side3,
	"button_4":      Side4,
	"button_5":      Side5,
	"button_6":      Side6,
	"button_right":  Right,
	"button_left":   Left,
	"button_7":      Side7,
	"button_8":      Side8,
	"button_middle": Middle,
	"button_fire":   Fire,
	"button_9":      Side9,
	"button_10":     Side10,
	"button_11":     Side11,
	"button_12":     Side12,
	// Friendly aliases
	"side1":  Side1,
	"side2":  Side2,
	"side3":  Side3,
	"side4":  Side4,
	"side5":  Side5,
	"side6":  Side6,
	"side7":  Side7,
	"side8":  Side8,
	"side9":  Side9,
	"side10": Side10,
	"side11": Side11,
	"side12": Side12,
	"right":  Right,
	"left":   Left,
	"middle": Middle,
	"fire":   Fire,
}

// ParseButtonName resolves a button name ("side1".."side12", "left",
// "right", "middle", "fire", or the canonical "button_*" forms) to its
// index. Matching is case-insensitive.
func ParseButtonName(name string) (Button, error) {
	b, ok := buttonNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, &InvalidButtonError{Name: name}
	}
	return b, nil
}

func (b Button) String() string {
	switch b {
	case Right:
		return "right"
	case Left:
		return "left"
	case Middle:
		return "middle"
	case Fire:
		return "fire"
	}
	// Side buttons: recover the 1-12 numbering from the index layout.
	switch {
	case b <= Side6:
		return fmt.Sprintf("side%d", b+1)
	case b == Side7 || b == Side8:
		return fmt.Sprintf("side%d", b-1)
	case b >= Side9 && b <= Side12:
		return fmt.Sprintf("side%d", b-3)
	}
	return fmt.Sprintf("button(%d)", uint8(b))
}

// InvalidButtonError reports a button name or index outside the 16
// physical buttons.
type InvalidButtonError struct {
	Name  string
	Index int
}

func (e *InvalidButtonError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("unknown button %q", e.Name)
	}
	return fmt.Sprintf("button index %d out of range (0-15)", e.Index)
}
