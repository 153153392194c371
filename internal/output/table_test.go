package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"cloudtally/internal/inventory"
)

func TestPrintCombinedEmpty(t *testing.T) {
	var buf bytes.Buffer
	PrintCombinedTo(&buf, map[string]*inventory.Report{}, nil)
	assert.Contains(t, buf.String(), "No compute resources found.")
}

func TestPrintCombinedErrorsBeforeSummary(t *testing.T) {
	var buf bytes.Buffer
	PrintCombinedTo(&buf, map[string]*inventory.Report{"aws": sampleReport()},
		[]string{"gcp: no credentials"})

	out := buf.String()
	assert.Contains(t, out, "gcp: no credentials")
	assert.Contains(t, out, "MULTI-CLOUD COMPUTE RESOURCE SUMMARY")
	assert.Less(t, indexOf(out, "gcp: no credentials"), indexOf(out, "MULTI-CLOUD"))
	assert.Contains(t, out, "GRAND TOTAL: 6 compute resources")
	assert.Contains(t, out, "AWS total: 6")
}

func TestPrintReportShowsScopesAndFailures(t *testing.T) {
	report := sampleReport()
	report.AddFailure("ap-south-1", "ec2", "throttled")

	var buf bytes.Buffer
	PrintReportTo(&buf, report)

	out := buf.String()
	assert.Contains(t, out, "AWS COMPUTE RESOURCES")
	assert.Contains(t, out, "EC2 Instances")
	assert.Contains(t, out, "us-east-1")
	assert.Contains(t, out, "Total: 6 compute resources")
	assert.Contains(t, out, "Collection failures (1)")
	assert.Contains(t, out, "ec2/ap-south-1: throttled")
}

func TestPrintReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	PrintReportTo(&buf, inventory.NewReport("azure"))
	assert.Contains(t, buf.String(), "No compute resources found.")
}

func indexOf(s, sub string) int {
	return bytes.Index([]byte(s), []byte(sub))
}
