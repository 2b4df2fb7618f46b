package ui

import (
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	// Colors for different message types
	Info    = color.New(color.FgCyan)
	Success = color.New(color.FgGreen, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
)

// separatorWidth frames the streamed explanation on the terminal.
const separatorWidth = 60

// Infof prints a cyan status line on stderr.
func Infof(format string, args ...any) {
	Info.Fprintf(color.Error, format+"\n", args...)
}

// Warnf prints a yellow warning line on stderr.
func Warnf(format string, args ...any) {
	Warning.Fprintf(color.Error, format+"\n", args...)
}

// Errorf prints a red error line on stderr.
func Errorf(format string, args ...any) {
	Error.Fprintf(color.Error, format+"\n", args...)
}

// Hint prints an uncolored follow-up line on stderr, for usage and setup
// instructions that accompany an error.
func Hint(text string) {
	_, _ = os.Stderr.WriteString(text + "\n")
}

// Header prints the explanation banner and the opening separator on stdout.
// The explanation itself is streamed plain between Header and Footer.
func Header(text string) {
	Success.Println(text)
	Success.Println(strings.Repeat("─", separatorWidth))
}

// Footer prints the closing separator on stdout.
func Footer() {
	Success.Println(strings.Repeat("─", separatorWidth))
}
