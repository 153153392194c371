package providers

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"cloudtally/internal/awscloud"
	_ "cloudtally/internal/awscloud/collectors" // register collectors
)

// NewAWSCmd creates the aws command
func NewAWSCmd() *cobra.Command {
	var (
		flags   scanFlags
		regions string
	)

	cmd := &cobra.Command{
		Use:   "aws",
		Short: "Count AWS compute resources",
		Long: `Count EC2 instances, EKS and ECS workloads, Lambda functions, Lightsail
instances, and Batch compute nodes across all enabled regions of the
current AWS account.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd.Context(), awscloud.Registry, flags,
				awscloud.Preflight,
				func(ctx context.Context) ([]string, error) {
					return awscloud.Scopes(ctx, splitList(regions))
				})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&regions, "regions", "", "Comma-separated regions to scan (default: all enabled regions)")

	return cmd
}

// splitList turns a comma-separated flag value into its non-empty parts.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
