package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/UnicloudAfrica/uniclo-sub012/internal/domain/entities"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/usecase"

	"github.com/spf13/cobra"
)

// Catalog returns the command that lists the tiers offered in a region.
func Catalog() *cobra.Command {
	var octx string
	var region string
	var currency string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List storage tiers for a region",
		RunE: func(cmd *cobra.Command, _ []string) error {
			pricing, err := pricingFactory(entities.OrderContext(octx))
			if err != nil {
				return err
			}
			profile := entities.ServiceProfile{Region: region}
			rows, err := fetchRows(cmd.Context(), pricing, []entities.ServiceProfile{profile})
			if err != nil {
				return err
			}
			cat := usecase.BuildCatalog(rows, currency)
			entry, fallback, ok := cat.Bucket(region)
			if !ok {
				return fmt.Errorf("no storage tiers priced for region %q", region)
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(entry.Options)
			}
			if fallback {
				fmt.Fprintf(out, "region %s has no own pricing; showing global tiers\n", region)
			}
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "KEY\tNAME\tQUOTA GB\tPER GB/MONTH")
			for _, opt := range entry.Options {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s %s\n", opt.Key, opt.Name, opt.QuotaGB.String(), opt.Currency, opt.PricePerGBMonth.StringFixed(4))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&octx, "context", string(entities.ContextClient), "Order context: admin, tenant or client")
	cmd.Flags().StringVarP(&region, "region", "r", "", "Region code")
	cmd.Flags().StringVar(&currency, "currency", "", "Display currency")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	_ = cmd.MarkFlagRequired("region")

	return cmd
}
