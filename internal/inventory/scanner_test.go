package inventory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCollector returns a canned result or error per scope.
type fakeCollector struct {
	kind    Kind
	counts  map[string]int
	errs    map[string]error
	blockOn string
}

func (c *fakeCollector) Kind() Kind    { return c.kind }
func (c *fakeCollector) Label() string { return string(c.kind) }
func (c *fakeCollector) Collect(ctx context.Context, scope string) (ResourceCount, error) {
	if scope == c.blockOn {
		<-ctx.Done()
		return ResourceCount{}, Transient(ctx.Err())
	}
	if err := c.errs[scope]; err != nil {
		return ResourceCount{}, err
	}
	return ResourceCount{Kind: c.kind, Scope: scope, Count: c.counts[scope]}, nil
}

func TestScanAccumulatesCounts(t *testing.T) {
	report := Scan(context.Background(), ScanConfig{
		Provider: "aws",
		Scopes:   []string{"us-east-1", "eu-west-1"},
		Collectors: []Collector{
			&fakeCollector{kind: "ec2", counts: map[string]int{"us-east-1": 3, "eu-west-1": 1}},
			&fakeCollector{kind: "lambda", counts: map[string]int{"us-east-1": 5}},
		},
		Workers: 4,
	})

	assert.Equal(t, 3, report.Counts["ec2"]["us-east-1"])
	assert.Equal(t, 1, report.Counts["ec2"]["eu-west-1"])
	assert.Equal(t, 5, report.Counts["lambda"]["us-east-1"])
	assert.Equal(t, 9, report.Total())
	assert.Empty(t, report.Failures)

	// Zero-count scope leaves no entry.
	_, exists := report.Counts["lambda"]["eu-west-1"]
	assert.False(t, exists)
}

func TestScanFailureIsolation(t *testing.T) {
	report := Scan(context.Background(), ScanConfig{
		Provider: "aws",
		Scopes:   []string{"us-east-1", "eu-west-1", "ap-south-1"},
		Collectors: []Collector{
			&fakeCollector{
				kind:   "ec2",
				counts: map[string]int{"us-east-1": 2, "ap-south-1": 4},
				errs:   map[string]error{"eu-west-1": Transient(errors.New("throttled"))},
			},
		},
		Workers: 2,
	})

	// The failing scope is recorded and the others still count.
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "eu-west-1", report.Failures[0].Scope)
	assert.Equal(t, Kind("ec2"), report.Failures[0].Kind)
	assert.Contains(t, report.Failures[0].Message, "throttled")
	assert.Equal(t, 6, report.Total())
}

func TestScanSkipsDeniedAndAbsent(t *testing.T) {
	report := Scan(context.Background(), ScanConfig{
		Provider: "aws",
		Scopes:   []string{"us-east-1", "cn-north-1", "me-south-1"},
		Collectors: []Collector{
			&fakeCollector{
				kind:   "lightsail",
				counts: map[string]int{"us-east-1": 1},
				errs: map[string]error{
					"cn-north-1": AccessDenied(errors.New("not authorized")),
					"me-south-1": NotFound(errors.New("service unavailable")),
				},
			},
		},
		Workers: 2,
	})

	// Denied and absent scopes vanish without failure records.
	assert.Empty(t, report.Failures)
	assert.Equal(t, 1, report.Total())
	_, exists := report.Counts["lightsail"]["cn-north-1"]
	assert.False(t, exists)
}

func TestScanScopeTimeout(t *testing.T) {
	report := Scan(context.Background(), ScanConfig{
		Provider: "azure",
		Scopes:   []string{"sub-ok", "sub-hung"},
		Collectors: []Collector{
			&fakeCollector{
				kind:    "vms",
				counts:  map[string]int{"sub-ok": 2},
				blockOn: "sub-hung",
			},
		},
		ScopeTimeout: 20 * time.Millisecond,
		Workers:      2,
	})

	require.Len(t, report.Failures, 1)
	assert.Equal(t, "sub-hung", report.Failures[0].Scope)
	assert.Equal(t, 2, report.Total())
}

func TestScanDeterministicAcrossWorkerCounts(t *testing.T) {
	build := func(workers int) *Report {
		return Scan(context.Background(), ScanConfig{
			Provider: "aws",
			Scopes:   []string{"a", "b", "c", "d"},
			Collectors: []Collector{
				&fakeCollector{
					kind:   "ec2",
					counts: map[string]int{"a": 1, "b": 2, "d": 3},
					errs:   map[string]error{"c": Transient(errors.New("boom"))},
				},
				&fakeCollector{
					kind: "eks",
					errs: map[string]error{
						"a": Transient(errors.New("boom")),
						"b": Transient(errors.New("boom")),
					},
				},
			},
			Workers: workers,
		})
	}

	serial := build(1)
	parallel := build(8)

	assert.Equal(t, serial.Counts, parallel.Counts)
	assert.Equal(t, serial.Failures, parallel.Failures)
}
