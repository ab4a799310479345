// Package summary prints the per-severity counts after a conversion.
package summary

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/sarif2xlsx/pkg/sarif"
)

const totalLabel = "Total"

// Render formats stats as one line per severity followed by the total.
// Severity names the converter does not map are title-cased for display.
func Render(stats sarif.Stats, theme Theme) string {
	counts := stats.Ordered()
	titler := cases.Title(language.English)

	labels := make([]string, len(counts))
	labelWidth := runewidth.StringWidth(totalLabel)
	for i, c := range counts {
		labels[i] = displayName(c.Severity, titler)
		labelWidth = max(labelWidth, runewidth.StringWidth(labels[i]))
	}
	countWidth := len(strconv.Itoa(stats.Total))

	var sb strings.Builder
	for i, c := range counts {
		style := theme.styleFor(c.Severity)
		sb.WriteString(style.Render(theme.Bullet))
		sb.WriteByte(' ')
		sb.WriteString(style.Render(runewidth.FillRight(labels[i], labelWidth)))
		sb.WriteByte(' ')
		sb.WriteString(runewidth.FillLeft(strconv.Itoa(c.Count), countWidth))
		sb.WriteByte('\n')
	}

	sb.WriteString(strings.Repeat(" ", runewidth.StringWidth(theme.Bullet)+1))
	sb.WriteString(theme.Bold.Render(runewidth.FillRight(totalLabel, labelWidth)))
	sb.WriteByte(' ')
	sb.WriteString(theme.Bold.Render(strconv.Itoa(stats.Total)))
	sb.WriteByte('\n')
	return sb.String()
}

func displayName(severity string, titler cases.Caser) string {
	switch severity {
	case sarif.SeverityHigh, sarif.SeverityMedium, sarif.SeverityLow, sarif.NotAvailable:
		return severity
	}
	return titler.String(severity)
}
