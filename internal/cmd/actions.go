package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/m913tools/m913ctl/action"
	"github.com/m913tools/m913ctl/internal/log"
)

// Actions prints the action vocabulary understood by the resolver.
type Actions struct{}

func (a *Actions) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	fmt.Println("Mouse/special actions:")
	for _, name := range action.SpecialActionNames() {
		fmt.Println("  " + name)
	}

	fmt.Println()
	fmt.Println("Parametric: fire:<speed>:<times>  (speed 3-255, times 0-3)")

	fmt.Println()
	fmt.Println("Modifier keys (combine with + before a key):")
	fmt.Println("  " + strings.Join(action.ModifierNames(), ", "))

	fmt.Println()
	fmt.Println("Keyboard keys:")
	keys := action.KeyNames()
	for i := 0; i < len(keys); i += 10 {
		end := min(i+10, len(keys))
		fmt.Println("  " + strings.Join(keys[i:end], " "))
	}

	fmt.Println()
	fmt.Println("Example combos:")
	fmt.Println("  ctrl_l+c          (copy)")
	fmt.Println("  ctrl_l+shift_l+z  (redo)")
	fmt.Println("  alt_l+f4          (close window)")
	fmt.Println("  a+b               (two-key chord)")
	return nil
}
