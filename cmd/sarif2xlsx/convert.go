package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/dkoosis/sarif2xlsx/internal/config"
	"github.com/dkoosis/sarif2xlsx/internal/logger"
	"github.com/dkoosis/sarif2xlsx/internal/summary"
	"github.com/dkoosis/sarif2xlsx/pkg/sarif"
	"github.com/dkoosis/sarif2xlsx/pkg/xlsx"
)

// convert runs read → extract → render for one input file.
func convert(opts options, input string, stdout, stderr io.Writer) error {
	if _, err := os.Stat(input); errors.Is(err, fs.ErrNotExist) {
		return &missingInputError{path: input}
	}

	cfg, err := config.Load(opts.configPath, stderr)
	if err != nil {
		return &runError{err: err}
	}

	level := cfg.LogLevel
	if opts.verbose {
		level = "debug"
	}
	log := logger.New(logger.Config{
		Level:   level,
		Format:  cfg.LogFormat,
		Output:  stderr,
		NoColor: logger.ColorDisabled(stderr),
	})
	if cfg.Path != "" {
		log.Debug().Str("path", cfg.Path).Msg("config loaded")
	}

	doc, err := sarif.ReadFile(input)
	if err != nil {
		return &runError{err: err}
	}
	log.Debug().
		Str("input", input).
		Str("version", doc.Version()).
		Str("tool", doc.ToolName()).
		Msg("document loaded")
	if runs := doc.RunCount(); runs > 1 {
		log.Warn().Int("runs", runs).Msg("only the first run is converted")
	}

	findings := sarif.Extract(doc)
	log.Debug().Int("findings", len(findings)).Msg("results extracted")

	renderer := xlsx.NewRenderer(xlsx.Config{
		TableName: cfg.TableName,
		Columns:   xlsx.DefaultColumnPolicy(),
	}, log)
	out, err := renderer.WriteFile(findings, input)
	if err != nil {
		return &runError{err: err}
	}

	fmt.Fprintf(stdout, "Processed Report saved to %s\n", out)

	if cfg.Summary && !opts.noSummary {
		theme := summary.ThemeByName(cfg.Theme)
		if logger.ColorDisabled(stdout) {
			theme = summary.MonoTheme()
		}
		fmt.Fprint(stdout, summary.Render(sarif.ComputeStats(findings), theme))
	}
	return nil
}
