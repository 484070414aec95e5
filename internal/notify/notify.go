// Package notify prints user-facing status lines to a writer with a color
// and a leading symbol per severity.
package notify

import (
	"io"
	"os"

	fcolor "github.com/fatih/color"
)

const (
	// Leading symbols for message lines
	errorSymbol   = "✗ "
	warningSymbol = "⚠ "
	successSymbol = "✔ "
)

// Errorf writes the message in red with a ✗ symbol.
func Errorf(w io.Writer, format string, a ...any) {
	c := fcolor.New(fcolor.FgRed)
	c.Fprintf(w, errorSymbol+format+"\n", a...)
}

// Warnf writes the message in yellow with a ⚠ symbol.
func Warnf(w io.Writer, format string, a ...any) {
	c := fcolor.New(fcolor.FgYellow)
	c.Fprintf(w, warningSymbol+format+"\n", a...)
}

// Successf writes the message in green with a ✔ symbol.
func Successf(w io.Writer, format string, a ...any) {
	c := fcolor.New(fcolor.FgGreen)
	c.Fprintf(w, successSymbol+format+"\n", a...)
}

// PrintError prints the given message to stderr in red with a ✗ symbol.
func PrintError(format string, a ...any) {
	Errorf(os.Stderr, format, a...)
}

// PrintWarning prints the given message to stderr in yellow with a ⚠ symbol.
func PrintWarning(format string, a ...any) {
	Warnf(os.Stderr, format, a...)
}
