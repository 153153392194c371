package inventory

import (
	"sort"
	"time"
)

// Kind identifies a provider-specific category of compute resource, e.g.
// "ec2" or "gke". Each provider package defines its own closed set of kinds.
type Kind string

// Detail is an opaque per-instance record attached to a count. Details are
// advisory data for debugging and exports; they are never used in totals.
type Detail map[string]interface{}

// ResourceCount is the result of running one collector against one scope.
type ResourceCount struct {
	Kind    Kind     `json:"kind"`
	Scope   string   `json:"scope"`
	Count   int      `json:"count"`
	Details []Detail `json:"details,omitempty"`
}

// FailureRecord captures a non-fatal failure for one unit of scan work.
// Failures accumulate inside a Report instead of aborting the scan.
type FailureRecord struct {
	Provider string `json:"provider"`
	Scope    string `json:"scope,omitempty"`
	Kind     Kind   `json:"kind,omitempty"`
	Message  string `json:"message"`
}

// Report is the complete result of scanning all scopes and kinds for one
// provider. A counts entry exists only for scopes that produced at least one
// resource of that kind; "scanned, zero found" and "not scanned" both leave
// no entry.
type Report struct {
	ProviderName string                       `json:"provider_name"`
	GeneratedAt  time.Time                    `json:"generated_at"`
	Counts       map[Kind]map[string]int      `json:"counts"`
	Details      map[Kind]map[string][]Detail `json:"details"`
	Failures     []FailureRecord              `json:"failures"`
}

// NewReport creates an empty report for the given provider.
func NewReport(provider string) *Report {
	return &Report{
		ProviderName: provider,
		GeneratedAt:  time.Now().UTC(),
		Counts:       make(map[Kind]map[string]int),
		Details:      make(map[Kind]map[string][]Detail),
		Failures:     []FailureRecord{},
	}
}

// Record stores a collector result. Zero counts are dropped so that absence
// of an entry never reads as "zero found".
func (r *Report) Record(rc ResourceCount) {
	if rc.Count <= 0 {
		return
	}

	if r.Counts[rc.Kind] == nil {
		r.Counts[rc.Kind] = make(map[string]int)
	}
	r.Counts[rc.Kind][rc.Scope] = rc.Count

	if len(rc.Details) > 0 {
		if r.Details[rc.Kind] == nil {
			r.Details[rc.Kind] = make(map[string][]Detail)
		}
		r.Details[rc.Kind][rc.Scope] = rc.Details
	}
}

// AddFailure appends a failure record for one scope/kind unit of work.
func (r *Report) AddFailure(scope string, kind Kind, message string) {
	r.Failures = append(r.Failures, FailureRecord{
		Provider: r.ProviderName,
		Scope:    scope,
		Kind:     kind,
		Message:  message,
	})
}

// Summarize returns the per-kind totals summed across all scopes.
func (r *Report) Summarize() map[Kind]int {
	summary := make(map[Kind]int, len(r.Counts))
	for kind, scopes := range r.Counts {
		for _, count := range scopes {
			summary[kind] += count
		}
	}
	return summary
}

// Total returns the number of resources counted across all kinds and scopes.
func (r *Report) Total() int {
	total := 0
	for _, count := range r.Summarize() {
		total += count
	}
	return total
}

// SortFailures orders failure records by (kind, scope, message) so that
// reports produced by concurrent scans compare equal regardless of the
// order in which the workers finished.
func (r *Report) SortFailures() {
	sort.Slice(r.Failures, func(i, j int) bool {
		a, b := r.Failures[i], r.Failures[j]
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		if a.Scope != b.Scope {
			return a.Scope < b.Scope
		}
		return a.Message < b.Message
	})
}
