// sarif2xlsx converts a SARIF report into a styled Excel workbook.
//
// Usage:
//
//	sarif2xlsx results.sarif
//	sarif2xlsx --verbose --config ci.yaml reports/trivy.sarif
//
// The workbook is written next to the input with the extension replaced by
// .xlsx. It holds a single sheet named after the input file with one row
// per result of the first run.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkoosis/sarif2xlsx/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	configPath string
	verbose    bool
	noSummary  bool
}

// runError marks failures of the conversion itself, as opposed to usage
// errors reported by cobra.
type runError struct {
	err error
}

func (e *runError) Error() string { return e.err.Error() }
func (e *runError) Unwrap() error { return e.err }

// missingInputError is reported with its own message and no prefix.
type missingInputError struct {
	path string
}

func (e *missingInputError) Error() string {
	return fmt.Sprintf("Error: File '%s' not found.", e.path)
}

func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args for a nil slice.
		args = []string{}
	}
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var missing *missingInputError
	var failed *runError
	switch {
	case errors.As(err, &missing):
		fmt.Fprintln(stderr, missing.Error())
		return 1
	case errors.As(err, &failed):
		fmt.Fprintf(stderr, "sarif2xlsx: %v\n", failed.err)
		return 1
	default:
		fmt.Fprintf(stderr, "sarif2xlsx: %v\n", err)
		fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.CommandPath())
		return 2
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "sarif2xlsx [flags] <file.sarif>",
		Short: "Convert a SARIF report into an Excel workbook",
		Long: `sarif2xlsx reads a SARIF 2.1.0 report and writes one spreadsheet row per
result of its first run: severity, rule, details, path, file name and line.

The workbook is saved next to the input as <name>.xlsx, replacing any
existing file.`,
		Args:          cobra.ExactArgs(1),
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return convert(opts, args[0], stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate("sarif2xlsx {{.Version}}\n")

	flags := cmd.Flags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVar(&opts.configPath, "config", "", "Config file (env: SARIF2XLSX_CONFIG)")
	flags.BoolVar(&opts.noSummary, "no-summary", false, "Do not print the severity summary")

	return cmd
}
