// Package terminal reports whether output streams are attached to a TTY.
package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTerminal returns true if w is an *os.File backed by a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
