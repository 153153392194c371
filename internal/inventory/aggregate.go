package inventory

import (
	"sort"
	"strings"
)

// displayNames maps every provider's kind vocabulary onto the shared
// presentation vocabulary. Kinds absent from the table pass through
// verbatim, so an unmapped kind is visible rather than dropped.
var displayNames = map[Kind]string{
	// AWS
	"ec2":       "EC2 Instances",
	"eks":       "EKS Nodes",
	"ecs":       "ECS Tasks",
	"lambda":    "Lambda Functions",
	"lightsail": "Lightsail Instances",
	"batch":     "Batch Nodes",

	// Azure
	"vms":       "Virtual Machines",
	"aks":       "AKS Nodes",
	"aci":       "Container Instances",
	"functions": "Azure Functions",
	"vmss":      "VM Scale Sets",

	// GCP
	"gce":             "Compute Engine VMs",
	"gke":             "GKE Nodes",
	"cloud_run":       "Cloud Run Services",
	"cloud_functions": "Cloud Functions",
	"app_engine":      "App Engine Instances",
}

// DisplayName returns the cross-provider display name for a kind, or the
// kind itself when no mapping exists.
func DisplayName(kind Kind) string {
	if name, ok := displayNames[kind]; ok {
		return name
	}
	return string(kind)
}

// SummaryRow is one line of the combined cross-provider summary.
type SummaryRow struct {
	Provider string `json:"provider"`
	Resource string `json:"resource"`
	Count    int    `json:"count"`
}

// CombinedSummary is the cross-provider aggregate. It is derived data,
// rebuilt from the set of provider reports and never mutated in place.
type CombinedSummary struct {
	Rows           []SummaryRow   `json:"rows"`
	ProviderTotals map[string]int `json:"provider_totals"`
	GrandTotal     int            `json:"grand_total"`
}

// BuildSummary folds a set of provider reports into one combined summary.
// Counts are summed per kind across the provider's own scopes before the
// display-name lookup, rows are sorted by (provider, resource), and totals
// derive entirely from the rows. The function is pure: identical inputs
// always produce an identical summary.
func BuildSummary(reports map[string]*Report) CombinedSummary {
	summary := CombinedSummary{
		Rows:           []SummaryRow{},
		ProviderTotals: make(map[string]int),
	}

	for name, report := range reports {
		if report == nil {
			continue
		}
		provider := strings.ToUpper(name)
		for kind, total := range report.Summarize() {
			summary.Rows = append(summary.Rows, SummaryRow{
				Provider: provider,
				Resource: DisplayName(kind),
				Count:    total,
			})
		}
	}

	sort.Slice(summary.Rows, func(i, j int) bool {
		a, b := summary.Rows[i], summary.Rows[j]
		if a.Provider != b.Provider {
			return a.Provider < b.Provider
		}
		return a.Resource < b.Resource
	})

	for _, row := range summary.Rows {
		summary.ProviderTotals[row.Provider] += row.Count
		summary.GrandTotal += row.Count
	}

	return summary
}
