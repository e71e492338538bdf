// Package output - Terminal table formatter
package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"

	"storage-cost/core/types"
	"storage-cost/core/ui"
)

// CLIFormatter writes a human-readable table
type CLIFormatter struct {
	Options Options
}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes the report
func (f *CLIFormatter) Render(w io.Writer, report *types.Report) error {
	ew := &errWriter{w: w}
	style := ui.NewStyle(f.Options.Color)

	ew.println(style.Header("Storage plan estimate"))
	ew.println(strings.Repeat("=", 21))
	writeInputSummary(ew, report)
	ew.println("")

	if len(report.Results) == 0 {
		ew.println("No providers in catalog.")
		return ew.err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	tew := &errWriter{w: tw}
	header := "RANK\tPROVIDER\tPLANS\tTOTAL"
	if f.Options.ShowLinks {
		header += "\tLINK"
	}
	tew.println(header)

	for i, r := range report.Results {
		row := fmt.Sprintf("%d\t%s\t%s\t%s", i+1, r.Name(), FormatAssignment(r), FormatTotal(r))
		if f.Options.ShowLinks && r.Provider != nil {
			row += "\t" + providerLink(r.Provider)
		}
		tew.println(row)
	}
	if tew.err != nil {
		return tew.err
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	ew.println("")
	writeVerdict(ew, style, report)

	if f.Options.ShowStorage && len(report.Storage) > 0 {
		ew.println("")
		ew.println("Projected storage (GB)")
		ew.println("----------------------")
		for i, s := range report.Storage {
			ew.printf("month %3d: %s\n", i+1, s.String())
		}
	}

	return ew.err
}

// writeVerdict names the cheapest provider and the unusable ones
func writeVerdict(ew *errWriter, style ui.Style, report *types.Report) {
	if best, ok := report.Cheapest(); ok {
		ew.println(style.Success("Cheapest: " + best.Name() + " at " + FormatTotal(best)))
	} else {
		ew.println(style.Error("No provider can hold this much storage"))
	}

	infeasible := lo.Filter(report.Results, func(r types.ProviderResult, _ int) bool {
		return !r.Feasible()
	})
	if len(infeasible) > 0 {
		names := lo.Map(infeasible, func(r types.ProviderResult, _ int) string {
			return r.Name()
		})
		ew.println(style.Warning("Unavailable at this volume: " + strings.Join(names, ", ")))
	}
}

func writeInputSummary(ew *errWriter, report *types.Report) {
	in := report.Input
	kind := "consumer"
	if in.Enterprise {
		kind = "enterprise"
	}
	ew.printf("Horizon:        %d months (%s plans)\n", in.Months, kind)
	ew.printf("Initial upload: %s GB\n", in.InitialUpload.String())
	ew.printf("Monthly change: +%s GB / -%s GB\n", in.UploadPerMonth.String(), in.DeletePerMonth.String())
	ew.printf("Download:       %s GB/month\n", in.DownloadPerMonth.String())
	ew.printf("Peak storage:   %s GB\n", report.Storage.Peak().String())
}

// providerLink prefers the first affiliate link
func providerLink(p *types.Provider) string {
	if len(p.AffiliateLinks) > 0 {
		return p.AffiliateLinks[0]
	}
	return p.Link
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
