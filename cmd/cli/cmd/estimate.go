// Package cmd - estimate command
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"storage-cost/core/engine"
	"storage-cost/core/output"
	"storage-cost/core/types"
	"storage-cost/core/ui"
	"storage-cost/core/usage"
	"storage-cost/internal/config"
	"storage-cost/internal/errors"
	"storage-cost/internal/logging"
)

var (
	months       int
	currency     string
	initial      string
	upload       string
	deletion     string
	download     string
	enterprise   bool
	usageFile    string
	catalogFile  string
	outputFormat string
	outputFile   string
	showStorage  bool
	showLinks    bool
	noColor      bool
	providers    []string
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Rank providers by the cost of a usage profile",
	Long: `Project storage month by month and find the cheapest plans per provider.

Quantities are in GB. Flags override values read from --usage.

Examples:
  storage-cost estimate
  storage-cost estimate --months 36 --initial 2500 --upload 50 --delete 10
  storage-cost estimate --usage usage.yaml --provider Backblaze
  storage-cost estimate --format markdown --output estimate.md`,
	Args: cobra.NoArgs,
	RunE: runEstimate,
}

func init() {
	defaults := usage.DefaultProfile()

	estimateCmd.Flags().IntVarP(&months, "months", "m", defaults.Months, "horizon in months")
	estimateCmd.Flags().StringVar(&currency, "currency", defaults.Currency.String(), "preferred currency (EUR, USD)")
	estimateCmd.Flags().StringVar(&initial, "initial", defaults.InitialUpload.String(), "storage uploaded before the first month")
	estimateCmd.Flags().StringVar(&upload, "upload", defaults.UploadPerMonth.String(), "storage uploaded every month")
	estimateCmd.Flags().StringVar(&deletion, "delete", defaults.DeletePerMonth.String(), "storage deleted every month")
	estimateCmd.Flags().StringVar(&download, "download", defaults.DownloadPerMonth.String(), "data downloaded every month")
	estimateCmd.Flags().BoolVar(&enterprise, "enterprise", false, "use enterprise plans")
	estimateCmd.Flags().StringVarP(&usageFile, "usage", "u", "", "usage profile file (YAML or JSON)")
	estimateCmd.Flags().StringVarP(&catalogFile, "catalog", "c", "", "provider catalog file (HCL, YAML or JSON)")
	estimateCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json, markdown)")
	estimateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "write output to a file")
	estimateCmd.Flags().BoolVar(&showStorage, "storage", false, "show projected monthly storage")
	estimateCmd.Flags().BoolVar(&showLinks, "links", true, "show provider links")
	estimateCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	estimateCmd.Flags().StringSliceVarP(&providers, "provider", "p", nil, "only estimate these providers")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	startTime := time.Now()
	cfg := config.Get()

	in, err := buildInput(cmd)
	if err != nil {
		return err
	}
	if err := usage.ValidateInput(in); err != nil {
		return err
	}

	cat, err := loadCatalog(catalogFile)
	if err != nil {
		return err
	}
	cat, err = cat.Subset(providers...)
	if err != nil {
		return err
	}

	format := outputFormat
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	formatter, err := output.New(format, output.Options{
		ShowStorage: showStorage || cfg.Output.ShowStorage,
		ShowLinks:   showLinks && cfg.Output.ShowLinks,
		Color:       !noColor && outputFile == "" && ui.Detect(cmd.OutOrStdout()).Enabled(),
	})
	if err != nil {
		return err
	}

	logging.Info("Starting estimation",
		zap.Int("months", in.Months),
		zap.Int("providers", cat.Len()),
		zap.Bool("enterprise", in.Enterprise),
	)

	eng := engine.New(cat, engine.WithLogger(logging.With(zap.String("component", "engine"))))
	report, err := eng.Estimate(ctx, in)
	if err != nil {
		return errors.Internal("estimate", err)
	}

	if err := writeReport(cmd.OutOrStdout(), formatter, report); err != nil {
		return err
	}

	logging.Info("Estimation complete", zap.Duration("duration", time.Since(startTime)))
	return nil
}

// buildInput starts from the usage file (or defaults) and applies the
// flags the user set explicitly
func buildInput(cmd *cobra.Command) (types.UserInput, error) {
	in := usage.DefaultProfile()
	if usageFile != "" {
		loaded, err := usage.LoadProfile(usageFile)
		if err != nil {
			return types.UserInput{}, err
		}
		in = loaded
	}

	flags := cmd.Flags()
	if usageFile == "" || flags.Changed("months") {
		in.Months = months
	}
	if usageFile == "" || flags.Changed("enterprise") {
		in.Enterprise = enterprise
	}
	if usageFile == "" || flags.Changed("currency") {
		c, err := types.ParseCurrency(currency)
		if err != nil {
			return types.UserInput{}, errors.Wrap(errors.TypeInput, "--currency", err)
		}
		in.Currency = c
	}

	amounts := []struct {
		flag  string
		raw   string
		store *decimal.Decimal
	}{
		{"initial", initial, &in.InitialUpload},
		{"upload", upload, &in.UploadPerMonth},
		{"delete", deletion, &in.DeletePerMonth},
		{"download", download, &in.DownloadPerMonth},
	}
	for _, a := range amounts {
		if usageFile != "" && !flags.Changed(a.flag) {
			continue
		}
		d, err := decimal.NewFromString(a.raw)
		if err != nil {
			return types.UserInput{}, errors.Newf(errors.TypeInput, "--%s: invalid amount %q", a.flag, a.raw)
		}
		*a.store = d
	}

	return in, nil
}

// writeReport renders to --output when set, else to w
func writeReport(w io.Writer, formatter output.Formatter, report *types.Report) error {
	if outputFile == "" {
		return formatter.Render(w, report)
	}

	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	if err := formatter.Render(f, report); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Output written to %s\n", outputFile)
	return nil
}
