// Package commands defines the siloctl command tree.
package commands

import (
	"github.com/UnicloudAfrica/uniclo-sub012/internal/adapter/backend"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/domain/entities"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/infrastructure/config"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/infrastructure/logging"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/usecase/interfaces"

	"github.com/spf13/cobra"
)

// pricingFactory is swapped in tests.
var pricingFactory = func(octx entities.OrderContext) (interfaces.IPricingProvider, error) {
	cfg := config.Load()
	return backend.NewClient(cfg.BackendBaseURL, cfg.BackendAPIToken, octx)
}

func Root() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "siloctl",
		Short:         "Price and inspect Silo object storage orders",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			level := "warn"
			if verbose {
				level = "debug"
			}
			return logging.Initialize(logging.Config{Level: level, Format: "console"})
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log backend calls")

	cmd.AddCommand(Quote())
	cmd.AddCommand(Catalog())
	return cmd
}
