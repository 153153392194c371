// Package providers implements the single-provider scan commands. Each
// command runs one provider's collectors across its discovered scopes and
// either prints a summary table or exports the report. The orchestrator
// invokes these commands with --format json --output to collect handoff
// reports.
package providers

import (
	"context"

	"github.com/spf13/cobra"

	"cloudtally/internal/config"
	"cloudtally/internal/inventory"
	"cloudtally/internal/output"
)

// scanFlags are the flags shared by every provider command.
type scanFlags struct {
	resources string
	outputTo  string
	format    string
}

func (f *scanFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.resources, "resources", "", "Comma-separated resource kinds to count (default all)")
	cmd.Flags().StringVarP(&f.outputTo, "output", "o", "", "Write results to this file instead of stdout")
	cmd.Flags().StringVar(&f.format, "format", "", "Export format (json or csv); omit for a console table")
}

// runScan is the common body of the provider commands: validate the
// collector filter, verify credentials, enumerate scopes, scan, and render.
func runScan(ctx context.Context, registry *inventory.Registry, flags scanFlags,
	preflight func(context.Context) error,
	scopes func(context.Context) ([]string, error)) error {

	collectors, err := registry.Select(flags.resources)
	if err != nil {
		return err
	}

	var format output.Format
	if flags.format != "" {
		if format, err = output.ParseFormat(flags.format); err != nil {
			return err
		}
	}

	if err := preflight(ctx); err != nil {
		return err
	}
	resolved, err := scopes(ctx)
	if err != nil {
		return err
	}

	report := inventory.Scan(ctx, inventory.ScanConfig{
		Provider:     registry.Provider(),
		Scopes:       resolved,
		Collectors:   collectors,
		ScopeTimeout: config.Config.ScopeTimeout,
		Workers:      config.Config.MaxWorkers,
	})

	if format != "" {
		return output.WriteReport(report, format, flags.outputTo)
	}
	output.PrintReport(report)
	return nil
}
