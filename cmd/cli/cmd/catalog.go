// Package cmd - catalog commands
package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"storage-cost/core/catalog"
	"storage-cost/core/types"
)

var (
	catalogPath    string
	enterpriseList bool
)

// catalogCmd groups catalog commands
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect provider catalogs",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List providers and their plans",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(catalogPath)
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "PROVIDER\tPLAN\tMONTHS\tCOST\tCAP (GB)\tOVERAGE")
		for _, p := range cat.Providers() {
			for _, plan := range p.Plans(enterpriseList) {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s %s\t%s\t%s\n",
					p.Name, plan.Name, plan.Months,
					plan.Cost.StringFixed(2), plan.Currency,
					plan.StorageCap.String(), describePolicy(plan.ExtraCost))
			}
		}
		return tw.Flush()
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a catalog file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load(args[0])
		if err != nil {
			return err
		}

		plans := lo.SumBy(cat.Providers(), func(p *types.Provider) int {
			return len(p.TieredPlans) + len(p.EnterpriseTieredPlans)
		})
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d providers, %d plans, valid\n", args[0], cat.Len(), plans)
		return nil
	},
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the active catalog as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(catalogPath)
		if err != nil {
			return err
		}
		return catalog.WriteYAML(cmd.OutOrStdout(), cat)
	},
}

func init() {
	catalogCmd.PersistentFlags().StringVarP(&catalogPath, "catalog", "c", "", "provider catalog file (HCL, YAML or JSON)")
	catalogListCmd.Flags().BoolVar(&enterpriseList, "enterprise", false, "list enterprise plans")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogExportCmd)
}

func describePolicy(p types.OveragePolicy) string {
	switch p.Kind {
	case types.PolicyLinear:
		desc := fmt.Sprintf("%s per %s GB", p.Rate.String(), p.Unit.String())
		if p.Limit.Valid {
			desc += fmt.Sprintf(", below %s GB", p.Limit.Decimal.String())
		}
		return desc
	case types.PolicyFlatRate:
		return fmt.Sprintf("%s/GB stored + %s/GB downloaded", p.StorageRate.String(), p.DownloadRate.String())
	default:
		return p.Kind.String()
	}
}
