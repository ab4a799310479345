package sarif

import "strings"

// Extract flattens the results of the document's first run into findings,
// one per result and in input order. A document without runs or results
// yields an empty slice.
func Extract(doc *Document) []Finding {
	if doc == nil {
		return nil
	}

	results := doc.Results()
	findings := make([]Finding, 0, len(results))
	for _, result := range results {
		findings = append(findings, ExtractResult(result))
	}
	return findings
}

// ExtractResult flattens a single decoded result. Only the first location is
// read. Missing fields at any depth become NotAvailable.
func ExtractResult(result any) Finding {
	path := LookupString(result, NotAvailable, "locations", 0, "physicalLocation", "artifactLocation", "uri")

	return Finding{
		Severity: NormalizeSeverity(LookupString(result, NotAvailable, "level")),
		RuleID:   LookupString(result, NotAvailable, "ruleId"),
		Details:  RewriteVendorLinks(LookupString(result, NotAvailable, "message", "text")),
		Path:     path,
		Page:     PageOf(path),
		Line:     LookupString(result, NotAvailable, "locations", 0, "physicalLocation", "region", "startLine"),
	}
}

// PageOf returns the final segment of an artifact URI or path.
// NotAvailable is returned unchanged rather than split on its slash.
func PageOf(path string) string {
	if path == NotAvailable {
		return NotAvailable
	}
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}
