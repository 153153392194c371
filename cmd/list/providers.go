package list

import (
	"fmt"

	"github.com/spf13/cobra"

	"cloudtally/internal/orchestrator"
)

// NewProvidersCmd creates the providers command
func NewProvidersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List supported cloud providers",
		Run: func(cmd *cobra.Command, args []string) {
			for _, provider := range orchestrator.KnownProviders {
				fmt.Fprintln(cmd.OutOrStdout(), provider)
			}
		},
	}
}
