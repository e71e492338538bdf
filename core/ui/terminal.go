// Package ui - Terminal styling
// ANSI colors for CLI output. Styling is off for pipes, files and NO_COLOR.
package ui

import (
	"io"
	"os"
)

// Colors for terminal output
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

// Style applies colors when enabled
type Style struct {
	enabled bool
}

// NewStyle creates a style
func NewStyle(enabled bool) Style {
	return Style{enabled: enabled}
}

// Detect enables colors when w is a terminal and NO_COLOR is unset
func Detect(w io.Writer) Style {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return Style{}
	}
	return Style{enabled: IsTerminal(w)}
}

// IsTerminal reports whether w is a character device
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// Enabled reports whether colors are applied
func (s Style) Enabled() bool {
	return s.enabled
}

// color applies color if enabled
func (s Style) color(c, text string) string {
	if !s.enabled {
		return text
	}
	return c + text + Reset
}

// Header styles a section title
func (s Style) Header(text string) string {
	return s.color(Bold+Cyan, text)
}

// Success styles a good outcome
func (s Style) Success(text string) string {
	return s.color(Green, "✓ ") + text
}

// Warning styles a caveat
func (s Style) Warning(text string) string {
	return s.color(Yellow, "⚠ ") + text
}

// Error styles a failure
func (s Style) Error(text string) string {
	return s.color(Red, "✗ ") + text
}

// Muted styles secondary text
func (s Style) Muted(text string) string {
	return s.color(Dim, text)
}
