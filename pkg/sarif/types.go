// Package sarif reads SARIF (Static Analysis Results Interchange Format)
// documents and flattens their results into spreadsheet-ready findings.
//
// Documents are decoded into a generic JSON tree rather than typed structs so
// that an absent field can be told apart from a zero value. Every field a
// Finding needs is read through Lookup, which degrades to a default instead of
// failing when any step of the path is missing.
package sarif

// NotAvailable is the placeholder written for any field absent from a result.
const NotAvailable = "N/A"

// Finding is one SARIF result flattened into a table row.
type Finding struct {
	Severity string `json:"severity"`
	RuleID   string `json:"ruleId"`
	Details  string `json:"details"`
	Path     string `json:"path"`
	Page     string `json:"page"`
	Line     string `json:"line"`
}

// Fields returns the finding's values in column order.
func (f Finding) Fields() []string {
	return []string{f.Severity, f.RuleID, f.Details, f.Path, f.Page, f.Line}
}
