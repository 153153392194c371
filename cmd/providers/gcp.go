package providers

import (
	"context"

	"github.com/spf13/cobra"

	"cloudtally/internal/gcpcloud"
)

// NewGCPCmd creates the gcp command
func NewGCPCmd() *cobra.Command {
	var (
		flags   scanFlags
		project string
	)

	cmd := &cobra.Command{
		Use:   "gcp",
		Short: "Count GCP compute resources",
		Long: `Count Compute Engine instances, GKE nodes, Cloud Run services, Cloud
Functions, and App Engine instances across all active projects visible
to the application default credentials.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd.Context(), gcpcloud.Registry, flags,
				gcpcloud.Preflight,
				func(ctx context.Context) ([]string, error) {
					var override []string
					if project != "" {
						override = []string{project}
					}
					return gcpcloud.Scopes(ctx, override)
				})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&project, "project", "", "Project ID to scan (default: all active projects)")

	return cmd
}
