package list

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cloudtally/internal/awscloud"
	_ "cloudtally/internal/awscloud/collectors" // register collectors
	"cloudtally/internal/azurecloud"
	"cloudtally/internal/gcpcloud"
	"cloudtally/internal/inventory"
)

// NewCollectorsCmd creates the collectors command
func NewCollectorsCmd() *cobra.Command {
	var provider string

	cmd := &cobra.Command{
		Use:   "collectors",
		Short: "List available resource collectors",
		Long:  `List every resource collector, grouped by provider, with the kind names accepted by --resources.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			registries := map[string]*inventory.Registry{
				awscloud.Name:   awscloud.Registry,
				azurecloud.Name: azurecloud.Registry,
				gcpcloud.Name:   gcpcloud.Registry,
			}

			var selected []*inventory.Registry
			if provider != "" {
				registry, ok := registries[provider]
				if !ok {
					return fmt.Errorf("unknown provider %q", provider)
				}
				selected = append(selected, registry)
			} else {
				selected = append(selected, awscloud.Registry, azurecloud.Registry, gcpcloud.Registry)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PROVIDER\tKIND\tRESOURCE")
			for _, registry := range selected {
				for _, kind := range registry.Kinds() {
					collector, err := registry.Get(string(kind))
					if err != nil {
						return err
					}
					fmt.Fprintf(w, "%s\t%s\t%s\n", registry.Provider(), kind, collector.Label())
				}
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&provider, "provider", "", "Only list collectors for this provider")

	return cmd
}
