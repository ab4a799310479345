package sarif

import "sort"

// Stats aggregates findings by severity.
type Stats struct {
	Total      int
	BySeverity map[string]int
}

// SeverityCount is one line of a severity breakdown.
type SeverityCount struct {
	Severity string
	Count    int
}

var severityRank = map[string]int{
	SeverityHigh:   0,
	SeverityMedium: 1,
	SeverityLow:    2,
}

// ComputeStats counts findings per severity.
func ComputeStats(findings []Finding) Stats {
	stats := Stats{
		Total:      len(findings),
		BySeverity: make(map[string]int),
	}
	for _, f := range findings {
		stats.BySeverity[f.Severity]++
	}
	return stats
}

// Ordered returns the severity counts High, Medium, Low first, then any
// pass-through levels alphabetically.
func (s Stats) Ordered() []SeverityCount {
	counts := make([]SeverityCount, 0, len(s.BySeverity))
	for sev, n := range s.BySeverity {
		counts = append(counts, SeverityCount{Severity: sev, Count: n})
	}

	sort.Slice(counts, func(i, j int) bool {
		ri, iKnown := severityRank[counts[i].Severity]
		rj, jKnown := severityRank[counts[j].Severity]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown != jKnown:
			return iKnown
		default:
			return counts[i].Severity < counts[j].Severity
		}
	})
	return counts
}
