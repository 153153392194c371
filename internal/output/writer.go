// Package output renders scan results to the console and exports them as
// JSON or CSV.
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"cloudtally/internal/inventory"
	"cloudtally/internal/logging"
)

// Format identifies an export format.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ParseFormat validates a user-supplied format string.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatCSV:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported format %q (supported: json, csv)", s)
	}
}

// combinedExport is the JSON document produced for a multi-provider run.
type combinedExport struct {
	GeneratedAt     time.Time                    `json:"generated_at"`
	Providers       map[string]int               `json:"providers"`
	GrandTotal      int                          `json:"grand_total"`
	DetailedResults map[string]*inventory.Report `json:"detailed_results"`
	Errors          []string                     `json:"errors"`
}

// WriteReport exports a single provider report. An empty path writes to
// stdout. This is also the handoff artifact format the orchestrator reads
// back, so file writes are atomic.
func WriteReport(report *inventory.Report, format Format, path string) error {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return writeOut(append(data, '\n'), path)
	case FormatCSV:
		return writeOut(reportCSV(report), path)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// WriteCombined exports a multi-provider result set. An empty path writes
// to stdout.
func WriteCombined(reports map[string]*inventory.Report, errs []string, format Format, path string) error {
	switch format {
	case FormatJSON:
		summary := inventory.BuildSummary(reports)
		export := combinedExport{
			GeneratedAt:     time.Now().UTC(),
			Providers:       summary.ProviderTotals,
			GrandTotal:      summary.GrandTotal,
			DetailedResults: reports,
			Errors:          errs,
		}
		if export.Errors == nil {
			export.Errors = []string{}
		}
		data, err := json.MarshalIndent(export, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode results: %w", err)
		}
		return writeOut(append(data, '\n'), path)
	case FormatCSV:
		return writeOut(combinedCSV(reports), path)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// reportCSV renders resource_type,scope,count rows sorted for stable output.
func reportCSV(report *inventory.Report) []byte {
	type row struct {
		kind  string
		scope string
		count int
	}
	var rows []row
	for kind, scopes := range report.Counts {
		for scope, count := range scopes {
			rows = append(rows, row{string(kind), scope, count})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].kind != rows[j].kind {
			return rows[i].kind < rows[j].kind
		}
		return rows[i].scope < rows[j].scope
	})

	return renderCSV([]string{"resource_type", "scope", "count"}, func(w *csv.Writer) {
		for _, r := range rows {
			w.Write([]string{r.kind, r.scope, strconv.Itoa(r.count)})
		}
	})
}

// combinedCSV renders provider,resource_type,count rows in summary order.
func combinedCSV(reports map[string]*inventory.Report) []byte {
	summary := inventory.BuildSummary(reports)
	return renderCSV([]string{"provider", "resource_type", "count"}, func(w *csv.Writer) {
		for _, r := range summary.Rows {
			w.Write([]string{r.Provider, r.Resource, strconv.Itoa(r.Count)})
		}
	})
}

func renderCSV(header []string, body func(*csv.Writer)) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write(header)
	body(w)
	w.Flush()
	return buf.Bytes()
}

// writeOut sends data to stdout or atomically to a file. The temp file is
// created next to the destination so the rename never crosses filesystems.
func writeOut(data []byte, path string) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write output: %w", err)
	}

	logging.Info("Results written", map[string]interface{}{
		"path":  path,
		"bytes": len(data),
	})
	return nil
}
