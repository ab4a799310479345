package sarif

// Normalized severity labels.
const (
	SeverityHigh   = "High"
	SeverityMedium = "Medium"
	SeverityLow    = "Low"
)

var severityByLevel = map[string]string{
	"error":   SeverityHigh,
	"warning": SeverityMedium,
	"note":    SeverityLow,
}

// NormalizeSeverity maps a SARIF level to a severity label. Unknown levels,
// including "none" and NotAvailable, are returned unchanged.
func NormalizeSeverity(level string) string {
	if label, ok := severityByLevel[level]; ok {
		return label
	}
	return level
}
