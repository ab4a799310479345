package xlsx

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

var (
	tableNamePattern = regexp.MustCompile(`^[A-Za-z_\\][A-Za-z0-9_.]*$`)
	r1c1Reference    = regexp.MustCompile(`^(?i)(r[0-9]*c[0-9]*|r[0-9]*|c[0-9]*)$`)
)

// ValidateTableName reports whether name can label an Excel table: it starts
// with a letter, underscore or backslash, holds only letters, digits,
// underscores and periods, and cannot be read as a cell reference.
func ValidateTableName(name string) error {
	if name == "" {
		return fmt.Errorf("invalid table name: empty")
	}
	if utf8.RuneCountInString(name) > excelize.MaxFieldLength {
		return fmt.Errorf("invalid table name %q: longer than %d characters", name, excelize.MaxFieldLength)
	}
	if !tableNamePattern.MatchString(name) {
		return fmt.Errorf("invalid table name %q: must start with a letter or underscore and contain only letters, digits, underscores and periods", name)
	}
	if _, _, err := excelize.CellNameToCoordinates(name); err == nil || r1c1Reference.MatchString(name) {
		return fmt.Errorf("invalid table name %q: looks like a cell reference", name)
	}
	return nil
}
