// Package output - JSON formatter
package output

import (
	"encoding/json"
	"io"

	"storage-cost/core/types"
	"storage-cost/internal/errors"
)

// JSONFormatter writes the report document as indented JSON.
// Totals keep full precision.
type JSONFormatter struct {
	Options Options
}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render writes the report
func (f *JSONFormatter) Render(w io.Writer, report *types.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(report, f.Options)); err != nil {
		return errors.Internal("encode JSON report", err)
	}
	return nil
}
