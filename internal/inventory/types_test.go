package inventory

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRecord(t *testing.T) {
	tests := []struct {
		name       string
		result     ResourceCount
		wantCounts bool
	}{
		{
			name:       "positive count is recorded",
			result:     ResourceCount{Kind: "ec2", Scope: "us-east-1", Count: 3},
			wantCounts: true,
		},
		{
			name:       "zero count leaves no entry",
			result:     ResourceCount{Kind: "ec2", Scope: "us-east-1", Count: 0},
			wantCounts: false,
		},
		{
			name:       "negative count leaves no entry",
			result:     ResourceCount{Kind: "ec2", Scope: "us-east-1", Count: -1},
			wantCounts: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := NewReport("aws")
			report.Record(tt.result)

			if tt.wantCounts {
				assert.Equal(t, tt.result.Count, report.Counts[tt.result.Kind][tt.result.Scope])
			} else {
				_, exists := report.Counts[tt.result.Kind]
				assert.False(t, exists, "zero/negative counts must not create entries")
			}
		})
	}
}

func TestReportDetailsOnlyWithData(t *testing.T) {
	report := NewReport("aws")
	report.Record(ResourceCount{Kind: "ec2", Scope: "us-east-1", Count: 2})
	report.Record(ResourceCount{
		Kind:    "lambda",
		Scope:   "us-east-1",
		Count:   1,
		Details: []Detail{{"name": "fn"}},
	})

	_, hasEC2Details := report.Details["ec2"]
	assert.False(t, hasEC2Details)
	assert.Len(t, report.Details["lambda"]["us-east-1"], 1)
}

func TestReportSummarizeAndTotal(t *testing.T) {
	report := NewReport("aws")
	report.Record(ResourceCount{Kind: "ec2", Scope: "us-east-1", Count: 3})
	report.Record(ResourceCount{Kind: "ec2", Scope: "eu-west-1", Count: 2})
	report.Record(ResourceCount{Kind: "lambda", Scope: "us-east-1", Count: 7})

	summary := report.Summarize()
	assert.Equal(t, 5, summary["ec2"])
	assert.Equal(t, 7, summary["lambda"])
	assert.Equal(t, 12, report.Total())
}

func TestReportSortFailures(t *testing.T) {
	report := NewReport("azure")
	report.AddFailure("sub-b", "vms", "throttled")
	report.AddFailure("sub-a", "vms", "timeout")
	report.AddFailure("sub-a", "aks", "timeout")

	report.SortFailures()

	require.Len(t, report.Failures, 3)
	assert.Equal(t, Kind("aks"), report.Failures[0].Kind)
	assert.Equal(t, "sub-a", report.Failures[1].Scope)
	assert.Equal(t, "sub-b", report.Failures[2].Scope)
}

func TestReportJSONFieldNames(t *testing.T) {
	report := NewReport("gcp")
	report.Record(ResourceCount{Kind: "gce", Scope: "proj-1", Count: 1})

	data, err := json.Marshal(report)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	for _, field := range []string{"provider_name", "generated_at", "counts", "details", "failures"} {
		assert.Contains(t, decoded, field)
	}
}

func TestReportRoundTripsThroughJSON(t *testing.T) {
	report := NewReport("aws")
	report.Record(ResourceCount{Kind: "ec2", Scope: "us-east-1", Count: 4})
	report.AddFailure("eu-west-1", "eks", "connection reset")

	data, err := json.Marshal(report)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, report.ProviderName, decoded.ProviderName)
	assert.Equal(t, report.Counts, decoded.Counts)
	assert.Equal(t, report.Failures, decoded.Failures)
}
