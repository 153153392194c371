package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloudtally/internal/inventory"
)

func sampleReport() *inventory.Report {
	report := inventory.NewReport("aws")
	report.Record(inventory.ResourceCount{Kind: "ec2", Scope: "us-east-1", Count: 3})
	report.Record(inventory.ResourceCount{Kind: "ec2", Scope: "eu-west-1", Count: 1})
	report.Record(inventory.ResourceCount{Kind: "lambda", Scope: "us-east-1", Count: 2})
	return report
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "json", want: FormatJSON},
		{input: "csv", want: FormatCSV},
		{input: "html", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteReportJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, WriteReport(sampleReport(), FormatJSON, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded inventory.Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "aws", decoded.ProviderName)
	assert.Equal(t, 3, decoded.Counts["ec2"]["us-east-1"])
}

func TestWriteReportCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "report.json")
	require.NoError(t, WriteReport(sampleReport(), FormatJSON, path))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestWriteReportLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteReport(sampleReport(), FormatJSON, filepath.Join(dir, "report.json")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "report.json", entries[0].Name())
}

func TestReportCSVShape(t *testing.T) {
	data := reportCSV(sampleReport())
	assert.Equal(t,
		"resource_type,scope,count\n"+
			"ec2,eu-west-1,1\n"+
			"ec2,us-east-1,3\n"+
			"lambda,us-east-1,2\n",
		string(data))
}

func TestWriteCombinedJSON(t *testing.T) {
	reports := map[string]*inventory.Report{"aws": sampleReport()}
	path := filepath.Join(t.TempDir(), "combined.json")
	require.NoError(t, WriteCombined(reports, []string{"gcp: no credentials"}, FormatJSON, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded struct {
		Providers       map[string]int               `json:"providers"`
		GrandTotal      int                          `json:"grand_total"`
		DetailedResults map[string]*inventory.Report `json:"detailed_results"`
		Errors          []string                     `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 6, decoded.Providers["AWS"])
	assert.Equal(t, 6, decoded.GrandTotal)
	assert.Equal(t, []string{"gcp: no credentials"}, decoded.Errors)
	require.Contains(t, decoded.DetailedResults, "aws")
	assert.Equal(t, 3, decoded.DetailedResults["aws"].Counts["ec2"]["us-east-1"])
}

func TestWriteCombinedJSONEmptyErrorsIsArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "combined.json")
	require.NoError(t, WriteCombined(map[string]*inventory.Report{}, nil, FormatJSON, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"errors": []`)
}

func TestCombinedCSVShape(t *testing.T) {
	reports := map[string]*inventory.Report{"aws": sampleReport()}
	data := combinedCSV(reports)
	assert.Equal(t,
		"provider,resource_type,count\n"+
			"AWS,EC2 Instances,4\n"+
			"AWS,Lambda Functions,2\n",
		string(data))
}
