// Package detector provides environment detection for output styling.
package detector

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Style represents how log output is rendered.
type Style int

const (
	// StyleColor renders colored output with icons.
	StyleColor Style = iota
	// StylePlain renders uncolored output.
	StylePlain
)

// IsCI reports whether the process runs under a CI system.
func IsCI() bool {
	ci := os.Getenv("CI")
	return ci == "true" || ci == "1"
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int
}

// DetectStyle returns the recommended style for output written to w.
// It checks NO_COLOR, CI environment variables and whether w is a TTY.
func DetectStyle(w io.Writer) Style {
	if os.Getenv("NO_COLOR") != "" || IsCI() || !IsTerminal(w) {
		return StylePlain
	}
	return StyleColor
}
