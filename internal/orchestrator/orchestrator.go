// Package orchestrator runs provider scans in isolation and combines their
// reports. Each provider scan writes its report to a handoff file that the
// orchestrator reads back and deletes, so a misbehaving provider can at
// worst lose its own results.
package orchestrator

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cloudtally/internal/inventory"
	"cloudtally/internal/logging"
)

// Options configures a multi-provider run.
type Options struct {
	// Providers to scan, in order. Empty means all known providers.
	Providers []string
	// Resources filters which collectors run, by kind or label. Empty
	// means all.
	Resources []string
	// Scope overrides, passed through to the matching provider.
	AWSRegions        []string
	AzureSubscription string
	GCPProject        string
	// ProviderTimeout bounds each provider scan.
	ProviderTimeout time.Duration
	// LogLevel is forwarded to provider subprocesses.
	LogLevel string
	// OnProviderDone, when set, is called after each provider finishes,
	// successfully or not. Used for progress reporting.
	OnProviderDone func(provider string)
}

// KnownProviders lists every provider the orchestrator can run, in display
// order.
var KnownProviders = []string{"aws", "azure", "gcp"}

// Orchestrator fans a scan out across providers.
type Orchestrator struct {
	runner Runner
	tmpDir string
}

// New returns an Orchestrator using the given Runner. Handoff files are
// placed in the system temp directory.
func New(runner Runner) *Orchestrator {
	return &Orchestrator{runner: runner, tmpDir: os.TempDir()}
}

// Run scans every requested provider and returns the per-provider reports
// alongside error strings for providers that failed. A provider appears in
// exactly one of the two: failed providers contribute no report, and their
// partial results are discarded with the handoff file.
func (o *Orchestrator) Run(ctx context.Context, opts Options) (map[string]*inventory.Report, []string) {
	providers := opts.Providers
	if len(providers) == 0 {
		providers = KnownProviders
	}
	timeout := opts.ProviderTimeout
	if timeout <= 0 {
		timeout = 30 * time.Minute
	}

	runID := newRunID()
	reports := make(map[string]*inventory.Report)
	var errs []string

	for _, provider := range providers {
		report, err := o.runProvider(ctx, provider, runID, timeout, opts)
		if opts.OnProviderDone != nil {
			opts.OnProviderDone(provider)
		}
		if err != nil {
			logging.Error("Provider scan failed", err, map[string]interface{}{
				"provider": provider,
			})
			errs = append(errs, fmt.Sprintf("%s: %s", provider, err))
			continue
		}
		reports[provider] = report
	}

	return reports, errs
}

func (o *Orchestrator) runProvider(ctx context.Context, provider, runID string, timeout time.Duration, opts Options) (*inventory.Report, error) {
	handoff := filepath.Join(o.tmpDir, fmt.Sprintf("cloudtally-%s-%s.json", provider, runID))
	defer os.Remove(handoff)

	scanCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	if err := o.runner.Run(scanCtx, provider, handoff, opts); err != nil {
		if scanCtx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("timed out after %s", timeout)
		}
		return nil, err
	}

	data, err := os.ReadFile(handoff)
	if err != nil {
		return nil, fmt.Errorf("scan produced no report: %w", err)
	}
	var report inventory.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("invalid report: %w", err)
	}

	logging.ProviderComplete(provider, report.Total(), len(report.Failures))
	logging.Debug("Provider scan finished", map[string]interface{}{
		"provider": provider,
		"duration": time.Since(start).Round(time.Millisecond).String(),
	})
	return &report, nil
}

// newRunID returns a short random identifier so concurrent runs never share
// handoff files.
func newRunID() string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(buf)
}
