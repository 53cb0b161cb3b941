package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/UnicloudAfrica/uniclo-sub012/internal/domain/entities"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/usecase"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/usecase/interfaces"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type quoteResult struct {
	Profiles []entities.ResolvedProfile `json:"profiles"`
	Totals   entities.SummaryTotals     `json:"totals"`
}

// Quote returns the command that prices one or more storage lines.
func Quote() *cobra.Command {
	var octx string
	var lines []string
	var currency string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price storage lines with live pricing",
		Long: `Price one or more storage lines the way the order wizard does.

Each --line is region:tier:storage_gb:months. The tier is a productable id or a
full tier key. A storage_gb of 0 uses the tier quota.
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profiles, err := parseLines(lines)
			if err != nil {
				return err
			}
			pricing, err := pricingFactory(entities.OrderContext(octx))
			if err != nil {
				return err
			}
			result, err := runQuote(cmd.Context(), pricing, profiles, currency)
			if err != nil {
				return err
			}
			return printQuote(cmd.OutOrStdout(), result, jsonOutput)
		},
	}

	cmd.Flags().StringVar(&octx, "context", string(entities.ContextClient), "Order context: admin, tenant or client")
	cmd.Flags().StringArrayVarP(&lines, "line", "l", nil, "Storage line region:tier:storage_gb:months (repeatable)")
	cmd.Flags().StringVar(&currency, "currency", "", "Display currency (default: pricing currency)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	_ = cmd.MarkFlagRequired("line")

	return cmd
}

func parseLines(lines []string) ([]entities.ServiceProfile, error) {
	if len(lines) == 0 {
		return nil, usecase.ErrTooFewProfiles
	}
	if len(lines) > entities.MaxProfiles {
		return nil, usecase.ErrTooManyProfiles
	}
	profiles := make([]entities.ServiceProfile, 0, len(lines))
	for i, line := range lines {
		parts := strings.Split(line, ":")
		// tier keys carry their own "::" separator
		if len(parts) > 4 {
			parts = []string{parts[0], strings.Join(parts[1:len(parts)-2], ":"), parts[len(parts)-2], parts[len(parts)-1]}
		}
		if len(parts) != 4 {
			return nil, fmt.Errorf("line %d: expected region:tier:storage_gb:months, got %q", i+1, line)
		}
		gb, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil || gb < 0 {
			return nil, fmt.Errorf("line %d: invalid storage_gb %q", i+1, parts[2])
		}
		months, err := strconv.Atoi(strings.TrimSpace(parts[3]))
		if err != nil || months < 1 {
			return nil, fmt.Errorf("line %d: invalid months %q", i+1, parts[3])
		}
		p := entities.NewServiceProfile()
		p.Name = fmt.Sprintf("Line %d", i+1)
		p.Region = strings.TrimSpace(parts[0])
		p.TierKey = strings.TrimSpace(parts[1])
		p.StorageGB = gb
		p.Months = months
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func fetchRows(ctx context.Context, pricing interfaces.IPricingProvider, profiles []entities.ServiceProfile) ([]entities.PricingRow, error) {
	regions := make([]string, 0, len(profiles))
	seen := map[string]struct{}{}
	for _, p := range profiles {
		r := strings.ToLower(p.Region)
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		regions = append(regions, r)
	}

	results := make([][]entities.PricingRow, len(regions))
	g, gctx := errgroup.WithContext(ctx)
	for i, region := range regions {
		g.Go(func() error {
			rows, err := pricing.ListPricing(gctx, region, usecase.ProductTypeObjectStorage)
			if err != nil {
				return fmt.Errorf("pricing for %s: %w", region, err)
			}
			results[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var rows []entities.PricingRow
	for _, r := range results {
		rows = append(rows, r...)
	}
	return rows, nil
}

// expandTierKey turns a bare productable id into the key of the bucket the
// region resolves to.
func expandTierKey(cat entities.Catalog, p *entities.ServiceProfile) {
	if _, _, ok := usecase.SplitTierKey(p.TierKey); ok {
		return
	}
	entry, _, ok := cat.Bucket(p.Region)
	if !ok {
		return
	}
	for _, opt := range entry.Options {
		if opt.ProductableID == p.TierKey {
			p.TierKey = opt.Key
			return
		}
	}
}

func runQuote(ctx context.Context, pricing interfaces.IPricingProvider, profiles []entities.ServiceProfile, currency string) (quoteResult, error) {
	rows, err := fetchRows(ctx, pricing, profiles)
	if err != nil {
		return quoteResult{}, err
	}
	cat := usecase.BuildCatalog(rows, currency)
	for i := range profiles {
		expandTierKey(cat, &profiles[i])
	}
	resolved := usecase.ResolveProfiles(profiles, cat, currency)
	return quoteResult{
		Profiles: resolved,
		Totals:   usecase.Aggregate(resolved, currency, nil),
	}, nil
}

func printQuote(w io.Writer, result quoteResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LINE\tREGION\tTIER\tGB\tMONTHS\tUNIT\tSUBTOTAL")
	for i, r := range result.Profiles {
		tier := "-"
		if r.Tier != nil {
			tier = r.Tier.Name
		}
		if !r.HasTierData {
			tier = "(no pricing)"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\t%s %s\n", i+1, r.Profile.Region, tier, r.StorageGB.String(), r.Months, r.UnitPrice.String(), r.Currency, r.Subtotal.StringFixed(2))
	}
	t := result.Totals
	fmt.Fprintf(tw, "\t\t\t\t\tTOTAL\t%s %s\n", t.Currency, t.Total.StringFixed(2))
	if t.CurrencyMismatch {
		fmt.Fprintln(tw, "\t\t\t\t\t\twarning: lines are priced in different currencies")
	}
	return tw.Flush()
}
