// Package list implements commands that enumerate what CloudTally can scan.
package list

import (
	"github.com/spf13/cobra"
)

// NewListCmd creates the list command and its subcommands
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List providers, collectors, and profiles",
	}

	cmd.AddCommand(NewProvidersCmd())
	cmd.AddCommand(NewCollectorsCmd())
	cmd.AddCommand(NewProfilesCmd())

	return cmd
}
