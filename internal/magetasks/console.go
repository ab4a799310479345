package magetasks

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Out receives all task output.
var Out io.Writer = os.Stdout

const headerWidth = 72

// PrintH1Header prints a top-level banner.
func PrintH1Header(title string) {
	rule := strings.Repeat("=", headerWidth)
	padding := max(0, (headerWidth-len(title))/2)
	fmt.Fprintf(Out, "\n%s\n%s%s\n%s\n\n", rule, strings.Repeat(" ", padding), title, rule)
}

// PrintH2Header prints a section header.
func PrintH2Header(title string) {
	fmt.Fprintf(Out, "\n=== %s ===\n\n", title)
}

func PrintSuccess(msg string) { fmt.Fprintf(Out, "✅ %s\n", msg) }
func PrintWarning(msg string) { fmt.Fprintf(Out, "⚠️  %s\n", msg) }
func PrintError(msg string)   { fmt.Fprintf(Out, "❌ %s\n", msg) }
func PrintInfo(msg string)    { fmt.Fprintf(Out, "ℹ️  %s\n", msg) }
