// Package output - Markdown formatter
package output

import (
	"io"
	"strings"

	"storage-cost/core/types"
)

// MarkdownFormatter writes a markdown table
type MarkdownFormatter struct {
	Options Options
}

// Format returns the format type
func (f *MarkdownFormatter) Format() Format {
	return FormatMarkdown
}

// Render writes the report
func (f *MarkdownFormatter) Render(w io.Writer, report *types.Report) error {
	ew := &errWriter{w: w}

	in := report.Input
	ew.println("## Storage plan estimate")
	ew.println("")
	ew.printf("%d months, peak storage %s GB\n\n", in.Months, report.Storage.Peak().String())

	ew.println("| Rank | Provider | Plans | Total |")
	ew.println("|---:|---|---|---:|")
	for i, r := range report.Results {
		name := escapeCell(r.Name())
		if f.Options.ShowLinks && r.Provider != nil && r.Provider.Link != "" {
			name = "[" + name + "](" + providerLink(r.Provider) + ")"
		}
		ew.printf("| %d | %s | %s | %s |\n", i+1, name, escapeCell(FormatAssignment(r)), FormatTotal(r))
	}

	return ew.err
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
