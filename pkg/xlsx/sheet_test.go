package xlsx

import (
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeSheetName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain name unchanged", in: "trivy-results", want: "trivy-results"},
		{name: "forbidden characters", in: "a[b]c:d", want: "a_b_c_d"},
		{name: "slashes and wildcards", in: `x\y/z?w*v`, want: "x_y_z_w_v"},
		{name: "truncated", in: strings.Repeat("n", 40), want: strings.Repeat("n", 31)},
		{name: "exactly 31 kept", in: strings.Repeat("k", 31), want: strings.Repeat("k", 31)},
		{name: "leading apostrophe", in: "'quoted", want: "_quoted"},
		{name: "trailing apostrophe", in: "quoted'", want: "quoted_"},
		{name: "inner apostrophe kept", in: "it's", want: "it's"},
		{name: "empty falls back", in: "", want: "Results"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeSheetName(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, SanitizeSheetName(got), "sanitizing must be idempotent")
		})
	}
}

func TestSanitizeSheetName_CountsCharactersNotBytes(t *testing.T) {
	got := SanitizeSheetName(strings.Repeat("é", 40))
	assert.Equal(t, MaxSheetNameLength, utf8.RuneCountInString(got))
	assert.True(t, utf8.ValidString(got))
}

func TestSheetNameFor(t *testing.T) {
	assert.Equal(t, "scan", SheetNameFor(filepath.Join("reports", "scan.sarif")))
	assert.Equal(t, "scan.2024", SheetNameFor("scan.2024.sarif"))
	assert.Equal(t, "results_v1_", SheetNameFor("results[v1].json"))
	assert.Equal(t, ".sarif", SheetNameFor(".sarif"))
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{filepath.Join("reports", "scan.sarif"), filepath.Join("reports", "scan.xlsx")},
		{"scan.sarif", "scan.xlsx"},
		{"scan", "scan.xlsx"},
		{filepath.Join("a.b", "scan.sarif.json"), filepath.Join("a.b", "scan.sarif.xlsx")},
		{filepath.Join("reports", ".sarif"), filepath.Join("reports", ".sarif.xlsx")},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, OutputPath(tt.in), "OutputPath(%q)", tt.in)
	}
}
