// Package terminal provides terminal detection utilities.
package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/termapps/publisher/internal/messages"
)

// Color modes accepted by --color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// isTerminal is swapped in tests.
var isTerminal = term.IsTerminal

// IsInteractive reports whether stdin and stdout are both interactive terminals.
func IsInteractive() bool {
	return isTerminal(int(os.Stdin.Fd())) && isTerminal(int(os.Stdout.Fd()))
}

// UseColor resolves a --color mode. Auto enables color when stdout is a
// terminal and NO_COLOR is unset.
func UseColor(mode string) (bool, error) {
	switch mode {
	case ColorAlways:
		return true, nil
	case ColorNever:
		return false, nil
	case ColorAuto, "":
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false, nil
		}
		return isTerminal(int(os.Stdout.Fd())), nil
	default:
		return false, fmt.Errorf(messages.ColorInvalidFmt, mode)
	}
}
