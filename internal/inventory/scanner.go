package inventory

import (
	"context"
	"sync"
	"time"

	"cloudtally/internal/logging"
	"cloudtally/internal/worker"
)

// ScanConfig drives one provider scan.
type ScanConfig struct {
	// Provider is the name recorded in the report, e.g. "aws".
	Provider string

	// Scopes are the account scopes to visit (regions, subscriptions,
	// projects). Comes from the provider's scope enumerator.
	Scopes []string

	// Collectors is the battery of resource collectors to run per scope.
	Collectors []Collector

	// ScopeTimeout bounds one collector invocation against one scope.
	// Exceeding it records a failure instead of blocking the scan.
	ScopeTimeout time.Duration

	// Workers is the size of the worker pool the scope/kind fan-out runs
	// on. Values below 1 run the scan on a single worker.
	Workers int
}

// Scan runs every collector against every scope and accumulates the results
// into one report. Failures never abort the scan: permission and
// service-absence errors are skipped outright, anything else becomes a
// failure record. The returned report is identical regardless of worker
// scheduling; only log order varies.
func Scan(ctx context.Context, cfg ScanConfig) *Report {
	report := NewReport(cfg.Provider)
	var mu sync.Mutex

	// Collector-major, scope-minor: all scopes for one kind are queued
	// before the next kind, which keeps logs grouped per resource type.
	var tasks []worker.Task
	for _, collector := range cfg.Collectors {
		for _, scope := range cfg.Scopes {
			collector := collector
			scope := scope

			tasks = append(tasks, func(taskCtx context.Context) error {
				logging.CollectorStart(cfg.Provider, string(collector.Kind()), scope)

				result, err := collector.Collect(taskCtx, scope)
				if err != nil {
					switch ClassOf(err) {
					case ClassAccessDenied, ClassNotFound:
						// Expected absence; deliberately not recorded.
						return nil
					default:
						mu.Lock()
						report.AddFailure(scope, collector.Kind(), err.Error())
						mu.Unlock()
						logging.CollectorError(cfg.Provider, string(collector.Kind()), scope, err)
						return err
					}
				}

				mu.Lock()
				report.Record(result)
				mu.Unlock()

				logging.CollectorComplete(cfg.Provider, string(collector.Kind()), scope, result.Count)
				return nil
			})
		}
	}

	kinds := make([]string, 0, len(cfg.Collectors))
	for _, c := range cfg.Collectors {
		kinds = append(kinds, string(c.Kind()))
	}
	logging.ScanStart(cfg.Provider, kinds, cfg.Scopes)

	pool := worker.NewPool(ctx, cfg.Workers, cfg.ScopeTimeout)
	pool.Start()
	pool.ExecuteTasks(tasks)
	pool.Stop()

	// Stable failure order regardless of which worker finished first.
	report.SortFailures()

	logging.ProviderComplete(cfg.Provider, report.Total(), len(report.Failures))
	return report
}
