package summary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkoosis/sarif2xlsx/pkg/sarif"
)

func TestRender_Mono(t *testing.T) {
	stats := sarif.ComputeStats([]sarif.Finding{
		{Severity: "High"},
		{Severity: "none"},
		{Severity: "High"},
		{Severity: sarif.NotAvailable},
	})

	got := Render(stats, MonoTheme())

	want := strings.Join([]string{
		"- High  2",
		"- N/A   1",
		"- None  1",
		"  Total 4",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestRender_PadsCountsToTotalWidth(t *testing.T) {
	findings := make([]sarif.Finding, 12)
	for i := range findings {
		findings[i].Severity = sarif.SeverityLow
	}
	findings[0].Severity = sarif.SeverityMedium

	got := Render(sarif.ComputeStats(findings), MonoTheme())

	assert.Equal(t, "- Medium  1\n- Low    11\n  Total  12\n", got)
}

func TestRender_Empty(t *testing.T) {
	got := Render(sarif.ComputeStats(nil), MonoTheme())
	assert.Equal(t, "  Total 0\n", got)
}

func TestRender_DefaultThemeKeepsText(t *testing.T) {
	stats := sarif.ComputeStats([]sarif.Finding{{Severity: "High"}, {Severity: "Low"}})

	got := Render(stats, DefaultTheme())

	assert.Contains(t, got, "High")
	assert.Contains(t, got, "Low")
	assert.Contains(t, got, "Total")
	assert.Equal(t, 3, strings.Count(got, "\n"))
}

func TestThemeByName(t *testing.T) {
	assert.Equal(t, "mono", ThemeByName("mono").Name)
	assert.Equal(t, "default", ThemeByName("default").Name)
	assert.Equal(t, "default", ThemeByName("unknown").Name)
}
