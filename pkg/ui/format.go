// Package ui decides how much styling the terminal in front of the
// operator can take.
package ui

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format represents the output format type
type Format int

const (
	// FormatAuto automatically detects the appropriate format based on terminal capabilities
	FormatAuto Format = iota
	// FormatTerminal renders rich terminal output with colors and styling
	FormatTerminal
	// FormatText renders plain text output without any styling
	FormatText
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	default:
		return "unknown"
	}
}

// DetectFormat determines the appropriate output format based on
// environment and terminal capabilities
func DetectFormat(output *os.File) Format {
	// Honor NO_COLOR unconditionally
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	// Piped or redirected output gets plain text
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return FormatText
	}

	// A terminal without color support gets plain text too
	if termenv.ColorProfile() == termenv.Ascii {
		return FormatText
	}

	return FormatTerminal
}
