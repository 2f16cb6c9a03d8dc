package internal

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	fatalColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow)
)

// FatalError logs an error and exits the program.
func FatalError(msg string, err error) {
	_, _ = fatalColor.Fprintf(os.Stderr, "❌ %s: %v\n", msg, err)
	os.Exit(1)
}

// Warning logs a warning.
func Warning(msg string) {
	_, _ = warningColor.Fprintf(os.Stderr, "⚠️  %s\n", msg)
}

// Warningf logs a formatted warning.
func Warningf(format string, args ...any) {
	Warning(fmt.Sprintf(format, args...))
}
