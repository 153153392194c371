// Package scan implements the multi-provider scan command.
package scan

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"cloudtally/internal/config"
	"cloudtally/internal/orchestrator"
	"cloudtally/internal/output"
)

// NewScanCmd creates the scan command
func NewScanCmd() *cobra.Command {
	var (
		providersFlag     string
		awsRegions        string
		azureSubscription string
		gcpProject        string
		resources         string
		outputTo          string
		format            string
		providerTimeout   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Count compute resources across all cloud providers",
		Long: `Scan AWS, Azure, and GCP in one run and print a combined summary.
Each provider is scanned in an isolated child process; a provider that
fails or cannot authenticate is reported as an error without affecting
the others. The command fails only when every provider fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			providers, err := selectProviders(providersFlag)
			if err != nil {
				return err
			}

			var exportFormat output.Format
			if format != "" {
				if exportFormat, err = output.ParseFormat(format); err != nil {
					return err
				}
			}

			logLevel, _ := cmd.Flags().GetString("log-level")
			bar := output.NewProgress(len(providers), "Scanning providers")

			opts := orchestrator.Options{
				Providers:         providers,
				Resources:         splitList(resources),
				AWSRegions:        splitList(awsRegions),
				AzureSubscription: azureSubscription,
				GCPProject:        gcpProject,
				ProviderTimeout:   providerTimeout,
				LogLevel:          logLevel,
				OnProviderDone: func(string) {
					bar.Add(1)
				},
			}

			orch := orchestrator.New(&orchestrator.ExecRunner{})
			reports, errs := orch.Run(cmd.Context(), opts)
			bar.Finish()

			if exportFormat != "" {
				if err := output.WriteCombined(reports, errs, exportFormat, outputTo); err != nil {
					return err
				}
			} else {
				output.PrintCombined(reports, errs)
			}

			if len(reports) == 0 && len(errs) > 0 {
				return fmt.Errorf("all providers failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&providersFlag, "providers", "", "Comma-separated providers to scan (default: aws,azure,gcp)")
	cmd.Flags().StringVar(&awsRegions, "aws-regions", "", "Comma-separated AWS regions to scan")
	cmd.Flags().StringVar(&azureSubscription, "azure-subscription", "", "Azure subscription ID to scan")
	cmd.Flags().StringVar(&gcpProject, "gcp-project", "", "GCP project ID to scan")
	cmd.Flags().StringVar(&resources, "resources", "", "Comma-separated resource kinds to count (default all)")
	cmd.Flags().StringVarP(&outputTo, "output", "o", "", "Write results to this file instead of stdout")
	cmd.Flags().StringVar(&format, "format", "", "Export format (json or csv); omit for a console table")
	cmd.Flags().DurationVar(&providerTimeout, "provider-timeout", config.Config.ProviderTimeout, "Timeout for one provider's whole scan")

	return cmd
}

// selectProviders validates the --providers flag against the known set,
// preserving the canonical scan order.
func selectProviders(flag string) ([]string, error) {
	requested := splitList(flag)
	if len(requested) == 0 {
		return orchestrator.KnownProviders, nil
	}

	want := make(map[string]bool, len(requested))
	for _, p := range requested {
		p = strings.ToLower(p)
		if !known(p) {
			return nil, fmt.Errorf("unknown provider %q (known: %s)", p, strings.Join(orchestrator.KnownProviders, ", "))
		}
		want[p] = true
	}

	var providers []string
	for _, p := range orchestrator.KnownProviders {
		if want[p] {
			providers = append(providers, p)
		}
	}
	return providers, nil
}

func known(provider string) bool {
	for _, p := range orchestrator.KnownProviders {
		if p == provider {
			return true
		}
	}
	return false
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
