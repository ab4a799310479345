package xlsx

import (
	"slices"
	"unicode/utf8"
)

// Column headers, in sheet order. Message holds the rule id and Details the
// result text.
const (
	ColumnSeverity = "Severity"
	ColumnMessage  = "Message"
	ColumnDetails  = "Details"
	ColumnPath     = "Path"
	ColumnPage     = "Page"
	ColumnLine     = "Line"
)

// Columns is the fixed header row.
var Columns = []string{ColumnSeverity, ColumnMessage, ColumnDetails, ColumnPath, ColumnPage, ColumnLine}

const (
	autoFitPadding = 2
	wrapRatio      = 0.75

	// maxColumnWidth is the widest column the format allows.
	maxColumnWidth = 255
)

// ColumnPolicy names the columns sized to their content and the columns
// narrowed and wrapped. Columns in neither list keep the default width.
type ColumnPolicy struct {
	AutoFit []string
	Wrap    []string
}

// DefaultColumnPolicy auto-fits the location columns and wraps the text ones.
func DefaultColumnPolicy() ColumnPolicy {
	return ColumnPolicy{
		AutoFit: []string{ColumnPath, ColumnPage, ColumnLine},
		Wrap:    []string{ColumnMessage, ColumnDetails},
	}
}

func (p ColumnPolicy) isAutoFit(column string) bool {
	return slices.Contains(p.AutoFit, column)
}

func (p ColumnPolicy) isWrap(column string) bool {
	return slices.Contains(p.Wrap, column)
}

// AutoFitWidth is the longest value in characters plus padding.
func AutoFitWidth(values []string) float64 {
	return float64(maxLength(values) + autoFitPadding)
}

// WrapWidth is three quarters of the longest value in characters.
func WrapWidth(values []string) float64 {
	return float64(maxLength(values)) * wrapRatio
}

func maxLength(values []string) int {
	longest := 0
	for _, v := range values {
		longest = max(longest, utf8.RuneCountInString(v))
	}
	return longest
}

func clampWidth(width float64) float64 {
	return min(width, maxColumnWidth)
}
