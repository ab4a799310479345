package sarif

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// docBuilder assembles SARIF 2.1.0 input for tests.
type docBuilder struct {
	tool    string
	results []any
}

func newDocBuilder(tool string) *docBuilder {
	return &docBuilder{tool: tool}
}

// addResult appends a result. An empty file omits locations.
func (b *docBuilder) addResult(ruleID, level, message, file string, line int) *docBuilder {
	r := map[string]any{
		"ruleId":  ruleID,
		"level":   level,
		"message": map[string]any{"text": message},
	}
	if file != "" {
		r["locations"] = []any{map[string]any{
			"physicalLocation": map[string]any{
				"artifactLocation": map[string]any{"uri": file},
				"region":           map[string]any{"startLine": line},
			},
		}}
	}
	b.results = append(b.results, r)
	return b
}

func (b *docBuilder) bytes(t *testing.T) []byte {
	t.Helper()
	data, err := json.Marshal(map[string]any{
		"version": "2.1.0",
		"runs": []any{map[string]any{
			"tool":    map[string]any{"driver": map[string]any{"name": b.tool}},
			"results": b.results,
		}},
	})
	require.NoError(t, err)
	return data
}

func (b *docBuilder) document(t *testing.T) *Document {
	t.Helper()
	doc, err := ReadBytes(b.bytes(t))
	require.NoError(t, err)
	return doc
}

func TestExtract_PreservesResultOrder(t *testing.T) {
	b := newDocBuilder("golangci-lint")
	for i := 0; i < 50; i++ {
		b.addResult("rule-"+strconv.Itoa(i), "warning", "msg", "pkg/file.go", i+1)
	}
	doc := b.document(t)

	findings := Extract(doc)

	require.Len(t, findings, 50)
	for i, f := range findings {
		assert.Equal(t, "rule-"+strconv.Itoa(i), f.RuleID)
		assert.Equal(t, strconv.Itoa(i+1), f.Line)
		assert.Equal(t, "file.go", f.Page)
	}
	assert.Equal(t, "golangci-lint", doc.ToolName())
	assert.Equal(t, "2.1.0", doc.Version())
}

func TestExtract_DuplicatesAreKept(t *testing.T) {
	doc := newDocBuilder("trivy").
		addResult("CVE-1", "error", "same", "go.sum", 3).
		addResult("CVE-1", "error", "same", "go.sum", 3).
		document(t)

	findings := Extract(doc)

	require.Len(t, findings, 2)
	assert.Equal(t, findings[0], findings[1])
}

func TestExtract_ResultWithoutLocation(t *testing.T) {
	doc := newDocBuilder("semgrep").
		addResult("R1", "note", "no location", "", 0).
		document(t)

	findings := Extract(doc)

	require.Len(t, findings, 1)
	assert.Equal(t, "Low", findings[0].Severity)
	assert.Equal(t, NotAvailable, findings[0].Path)
	assert.Equal(t, NotAvailable, findings[0].Page)
	assert.Equal(t, NotAvailable, findings[0].Line)
}

func TestComputeStats_FromBuiltDocument(t *testing.T) {
	doc := newDocBuilder("trivy").
		addResult("a", "error", "m", "x", 1).
		addResult("b", "warning", "m", "x", 1).
		addResult("c", "warning", "m", "x", 1).
		addResult("d", "none", "m", "x", 1).
		document(t)

	stats := ComputeStats(Extract(doc))

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, []SeverityCount{
		{Severity: "High", Count: 1},
		{Severity: "Medium", Count: 2},
		{Severity: "none", Count: 1},
	}, stats.Ordered())
}
