// Package xlsx renders SARIF findings as a styled Excel table.
package xlsx

import (
	"path/filepath"
	"strings"
)

const (
	// MaxSheetNameLength is the longest sheet name Excel accepts, in characters.
	MaxSheetNameLength = 31

	// Extension is the file extension of rendered workbooks.
	Extension = ".xlsx"

	fallbackSheetName = "Results"
)

var sheetNameReplacer = strings.NewReplacer(
	"[", "_",
	"]", "_",
	":", "_",
	`\`, "_",
	"/", "_",
	"?", "_",
	"*", "_",
)

// SanitizeSheetName makes name acceptable as a worksheet name: characters
// Excel forbids become "_", a leading or trailing apostrophe becomes "_", and
// the result is cut to MaxSheetNameLength characters. Sanitizing twice gives
// the same result as sanitizing once.
func SanitizeSheetName(name string) string {
	name = sheetNameReplacer.Replace(name)

	if runes := []rune(name); len(runes) > MaxSheetNameLength {
		name = string(runes[:MaxSheetNameLength])
	}
	if strings.HasPrefix(name, "'") {
		name = "_" + name[1:]
	}
	if strings.HasSuffix(name, "'") {
		name = name[:len(name)-1] + "_"
	}

	if name == "" {
		return fallbackSheetName
	}
	return name
}

// SheetNameFor derives the worksheet name from an input file's base name.
func SheetNameFor(inputPath string) string {
	return SanitizeSheetName(stem(filepath.Base(inputPath)))
}

// OutputPath places the workbook next to the input, swapping the extension.
func OutputPath(inputPath string) string {
	dir, base := filepath.Split(inputPath)
	return filepath.Join(dir, stem(base)+Extension)
}

// stem drops the extension from a base name. A leading dot starts a hidden
// file name, not an extension.
func stem(base string) string {
	trimmed := strings.TrimLeft(base, ".")
	ext := filepath.Ext(trimmed)
	return base[:len(base)-len(ext)]
}
