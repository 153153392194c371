package list

import (
	"fmt"

	"github.com/spf13/cobra"

	"cloudtally/internal/awscloud"
)

// NewProfilesCmd creates the profiles command
func NewProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List available AWS profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := awscloud.ListProfiles()
			if err != nil {
				return fmt.Errorf("failed to list profiles: %w", err)
			}
			for _, profile := range profiles {
				fmt.Fprintln(cmd.OutOrStdout(), profile)
			}
			return nil
		},
	}
}
