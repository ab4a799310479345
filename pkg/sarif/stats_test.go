package sarif

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats(t *testing.T) {
	findings := []Finding{
		{Severity: "High"},
		{Severity: "Low"},
		{Severity: "High"},
		{Severity: "none"},
		{Severity: NotAvailable},
		{Severity: "Medium"},
	}

	stats := ComputeStats(findings)

	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 2, stats.BySeverity["High"])
	assert.Equal(t, 1, stats.BySeverity["Medium"])
	assert.Equal(t, 1, stats.BySeverity["Low"])

	assert.Equal(t, []SeverityCount{
		{Severity: "High", Count: 2},
		{Severity: "Medium", Count: 1},
		{Severity: "Low", Count: 1},
		{Severity: NotAvailable, Count: 1},
		{Severity: "none", Count: 1},
	}, stats.Ordered())
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil)
	assert.Equal(t, 0, stats.Total)
	assert.Empty(t, stats.Ordered())
}
