package providers

import (
	"context"

	"github.com/spf13/cobra"

	"cloudtally/internal/azurecloud"
)

// NewAzureCmd creates the azure command
func NewAzureCmd() *cobra.Command {
	var (
		flags        scanFlags
		subscription string
	)

	cmd := &cobra.Command{
		Use:   "azure",
		Short: "Count Azure compute resources",
		Long: `Count virtual machines, AKS nodes, container instances, Function Apps,
scale set instances, and Batch nodes across all enabled subscriptions
visible to the signed-in identity.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd.Context(), azurecloud.Registry, flags,
				azurecloud.Preflight,
				func(ctx context.Context) ([]string, error) {
					var override []string
					if subscription != "" {
						override = []string{subscription}
					}
					return azurecloud.Scopes(ctx, override)
				})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&subscription, "subscription", "", "Subscription ID to scan (default: all enabled subscriptions)")

	return cmd
}
