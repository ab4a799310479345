// Package magetasks implements the mage targets for sarif2xlsx: build,
// clean, tests and linters. The Magefile at the repository root only
// forwards to these functions.
package magetasks
