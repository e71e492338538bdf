// Package output provides output formatting interfaces.
// This package produces human and machine-readable outputs.
// Rounding happens here and nowhere else.
package output

import (
	"io"
	"strings"

	"storage-cost/core/types"
	"storage-cost/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// displayPlaces is the number of decimals shown for money
const displayPlaces = 2

// unavailable is shown instead of a total for infeasible providers
const unavailable = "unavailable"

// Options tunes what a formatter includes
type Options struct {
	// ShowStorage includes the projected monthly storage
	ShowStorage bool

	// ShowLinks includes provider and affiliate links
	ShowLinks bool

	// Color styles terminal output
	Color bool
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, report *types.Report) error
}

// New returns the formatter for a format name
func New(format string, opts Options) (Formatter, error) {
	switch Format(strings.ToLower(format)) {
	case FormatCLI, "text", "":
		return &CLIFormatter{Options: opts}, nil
	case FormatJSON:
		return &JSONFormatter{Options: opts}, nil
	case FormatMarkdown, "md":
		return &MarkdownFormatter{Options: opts}, nil
	default:
		return nil, errors.NotSupported("output format " + format + " (use cli, json or markdown)")
	}
}

// FormatTotal renders a total for display
func FormatTotal(r types.ProviderResult) string {
	if !r.Feasible() {
		return unavailable
	}
	total := r.Total.StringFixed(displayPlaces)
	if r.Currency != "" {
		total += " " + r.Currency.String()
	}
	return total
}

// FormatAssignment renders the purchases of a result
func FormatAssignment(r types.ProviderResult) string {
	if !r.Feasible() {
		return "-"
	}
	if len(r.Assignment) == 0 {
		return "(nothing to buy)"
	}
	return r.Assignment.String()
}
