package output

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"cloudtally/internal/inventory"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	totalColor  = color.New(color.FgGreen, color.Bold)
	errorColor  = color.New(color.FgRed)
	dimColor    = color.New(color.Faint)
)

// PrintCombined renders a multi-provider result set to stdout: errors first,
// then the detailed breakdown, per-provider totals, and the grand total.
func PrintCombined(reports map[string]*inventory.Report, errs []string) {
	PrintCombinedTo(os.Stdout, reports, errs)
}

// PrintCombinedTo is PrintCombined writing to w.
func PrintCombinedTo(w io.Writer, reports map[string]*inventory.Report, errs []string) {
	if len(errs) > 0 {
		errorColor.Fprintln(w, "Errors:")
		for _, e := range errs {
			errorColor.Fprintf(w, "  - %s\n", e)
		}
		fmt.Fprintln(w)
	}

	summary := inventory.BuildSummary(reports)
	printBoxed(w, "MULTI-CLOUD COMPUTE RESOURCE SUMMARY")

	if len(summary.Rows) == 0 {
		fmt.Fprintln(w, "No compute resources found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PROVIDER\tRESOURCE\tCOUNT")
	for _, row := range summary.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", row.Provider, row.Resource, row.Count)
	}
	tw.Flush()

	fmt.Fprintln(w)
	providers := make([]string, 0, len(summary.ProviderTotals))
	for provider := range summary.ProviderTotals {
		providers = append(providers, provider)
	}
	sort.Strings(providers)
	for _, provider := range providers {
		fmt.Fprintf(w, "%s total: %d\n", provider, summary.ProviderTotals[provider])
	}
	totalColor.Fprintf(w, "GRAND TOTAL: %d compute resources\n", summary.GrandTotal)
}

// PrintReport renders a single provider report to stdout: per-resource
// totals with a per-scope breakdown, followed by any collection failures.
func PrintReport(report *inventory.Report) {
	PrintReportTo(os.Stdout, report)
}

// PrintReportTo is PrintReport writing to w.
func PrintReportTo(w io.Writer, report *inventory.Report) {
	printBoxed(w, fmt.Sprintf("%s COMPUTE RESOURCES", strings.ToUpper(report.ProviderName)))

	totals := report.Summarize()
	if len(totals) == 0 {
		fmt.Fprintln(w, "No compute resources found.")
	} else {
		kinds := make([]inventory.Kind, 0, len(totals))
		for kind := range totals {
			kinds = append(kinds, kind)
		}
		sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, kind := range kinds {
			fmt.Fprintf(tw, "%s\t%d\n", inventory.DisplayName(kind), totals[kind])
			scopes := make([]string, 0, len(report.Counts[kind]))
			for scope := range report.Counts[kind] {
				scopes = append(scopes, scope)
			}
			sort.Strings(scopes)
			for _, scope := range scopes {
				fmt.Fprintf(tw, "  %s\t%d\n", scope, report.Counts[kind][scope])
			}
		}
		tw.Flush()

		totalColor.Fprintf(w, "Total: %d compute resources\n", report.Total())
	}

	if len(report.Failures) > 0 {
		fmt.Fprintln(w)
		errorColor.Fprintf(w, "Collection failures (%d):\n", len(report.Failures))
		for _, f := range report.Failures {
			errorColor.Fprintf(w, "  - %s/%s: %s\n", f.Kind, f.Scope, f.Message)
		}
		dimColor.Fprintln(w, "Counts above may be partial for the affected scopes.")
	}
}

func printBoxed(w io.Writer, title string) {
	border := strings.Repeat("=", len(title)+4)
	headerColor.Fprintln(w, border)
	headerColor.Fprintf(w, "  %s\n", title)
	headerColor.Fprintln(w, border)
}
