package magetasks

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/magefile/mage/sh"
)

// Run executes a command with output streamed to the console, framing it
// with a label.
func Run(label, cmd string, args ...string) error {
	PrintInfo(label)
	if err := sh.RunV(cmd, args...); err != nil {
		PrintError(label + " failed")
		return fmt.Errorf("%s: %w", label, err)
	}
	PrintSuccess(label)
	return nil
}

// IsCommandNotFound checks if the error indicates the command was not found.
func IsCommandNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "executable file not found") ||
		strings.Contains(errStr, "no such file or directory")
}

// gitOutput returns trimmed git output or fallback when git is unavailable.
func gitOutput(fallback string, args ...string) string {
	out, err := sh.Output("git", args...)
	if err != nil || out == "" {
		return fallback
	}
	return strings.TrimSpace(out)
}
