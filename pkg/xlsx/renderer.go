package xlsx

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/dkoosis/sarif2xlsx/pkg/sarif"
)

const (
	// DefaultTableName names the table region covering the findings.
	DefaultTableName = "SARIFTable"

	tableStyleName = "TableStyleMedium9"
	linkTypeURL    = "External"
)

// Config controls how findings are laid out.
type Config struct {
	TableName string
	Columns   ColumnPolicy
}

// DefaultConfig returns the standard table name and column policy.
func DefaultConfig() Config {
	return Config{
		TableName: DefaultTableName,
		Columns:   DefaultColumnPolicy(),
	}
}

// Renderer turns findings into a single-sheet workbook.
type Renderer struct {
	config    Config
	logger    zerolog.Logger
	linkLimit int
}

// NewRenderer creates a renderer. An empty table name falls back to
// DefaultTableName.
func NewRenderer(config Config, logger zerolog.Logger) *Renderer {
	if config.TableName == "" {
		config.TableName = DefaultTableName
	}
	return &Renderer{
		config:    config,
		logger:    logger,
		linkLimit: excelize.TotalSheetHyperlinks,
	}
}

// WriteFile renders findings and saves the workbook next to inputPath,
// replacing any existing file. It returns the path written.
func (r *Renderer) WriteFile(findings []sarif.Finding, inputPath string) (string, error) {
	out := OutputPath(inputPath)

	f, err := r.Render(findings, SheetNameFor(inputPath))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := f.SaveAs(out); err != nil {
		return "", fmt.Errorf("save workbook %s: %w", out, err)
	}
	r.logger.Debug().Str("path", out).Int("rows", len(findings)).Msg("workbook saved")
	return out, nil
}

// Render builds the workbook in memory. The caller owns the returned file
// and must close it.
func (r *Renderer) Render(findings []sarif.Finding, sheet string) (*excelize.File, error) {
	f := excelize.NewFile()
	ok := false
	defer func() {
		if !ok {
			_ = f.Close()
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("name sheet %q: %w", sheet, err)
	}

	t := table{file: f, sheet: sheet, rows: len(findings), linkLimit: r.linkLimit}
	steps := []struct {
		name string
		run  func() error
	}{
		{"write rows", func() error { return t.writeRows(findings) }},
		{"add table", func() error { return t.addTable(r.config.TableName) }},
		{"style cells", t.styleCells},
		{"size columns", func() error { return t.sizeColumns(findings, r.config.Columns) }},
		{"link details", func() error { return t.linkDetails(findings, r.config.Columns) }},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			return nil, fmt.Errorf("%s: %w", step.name, err)
		}
		r.logger.Debug().Str("sheet", sheet).Msg(step.name)
	}
	if t.skippedLinks > 0 {
		r.logger.Warn().
			Int("limit", t.linkLimit).
			Int("skipped", t.skippedLinks).
			Msg("hyperlink limit reached, remaining links written as text")
	}

	ok = true
	return f, nil
}

// table tracks one sheet while it is being filled and styled.
type table struct {
	file   *excelize.File
	sheet  string
	rows   int
	styles styleSet

	linkLimit    int
	skippedLinks int
}

func (t *table) writeRows(findings []sarif.Finding) error {
	header := make([]any, len(Columns))
	for i, name := range Columns {
		header[i] = name
	}
	if err := t.file.SetSheetRow(t.sheet, "A1", &header); err != nil {
		return err
	}

	for i, finding := range findings {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := rowValues(finding)
		if err := t.file.SetSheetRow(t.sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// rowValues writes integer line numbers as numbers and everything else as
// text. Only canonical integers are converted so the cell shows exactly the
// finding's Line.
func rowValues(f sarif.Finding) []any {
	fields := f.Fields()
	row := make([]any, len(fields))
	for i, v := range fields {
		row[i] = v
	}
	if n, err := strconv.Atoi(f.Line); err == nil && strconv.Itoa(n) == f.Line {
		row[len(row)-1] = n
	}
	return row
}

func (t *table) lastCell() (string, error) {
	return excelize.CoordinatesToCellName(len(Columns), t.rows+1)
}

// addTable covers the header and data rows. A header-only sheet gets A1:F2:
// excelize widens the range because a table needs at least one body row.
func (t *table) addTable(name string) error {
	if err := ValidateTableName(name); err != nil {
		return err
	}
	last, err := t.lastCell()
	if err != nil {
		return err
	}
	stripes := false
	return t.file.AddTable(t.sheet, &excelize.Table{
		Range:          "A1:" + last,
		Name:           name,
		StyleName:      tableStyleName,
		ShowRowStripes: &stripes,
	})
}

func (t *table) styleCells() error {
	styles, err := registerStyles(t.file)
	if err != nil {
		return err
	}
	t.styles = styles

	headerEnd, err := excelize.CoordinatesToCellName(len(Columns), 1)
	if err != nil {
		return err
	}
	if err := t.file.SetCellStyle(t.sheet, "A1", headerEnd, styles.header); err != nil {
		return err
	}
	if t.rows == 0 {
		return nil
	}

	last, err := t.lastCell()
	if err != nil {
		return err
	}
	return t.file.SetCellStyle(t.sheet, "A2", last, styles.body)
}

func (t *table) sizeColumns(findings []sarif.Finding, policy ColumnPolicy) error {
	if t.rows == 0 {
		return nil
	}

	for col, name := range Columns {
		values := columnValues(findings, col)
		letter, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}

		var width float64
		switch {
		case policy.isAutoFit(name):
			width = AutoFitWidth(values)
		case policy.isWrap(name):
			width = WrapWidth(values)
			last := letter + strconv.Itoa(t.rows+1)
			if err := t.file.SetCellStyle(t.sheet, letter+"2", last, t.styles.wrap); err != nil {
				return err
			}
		default:
			continue
		}

		if err := t.file.SetColWidth(t.sheet, letter, letter, clampWidth(width)); err != nil {
			return fmt.Errorf("column %s: %w", name, err)
		}
	}
	return nil
}

func columnValues(findings []sarif.Finding, col int) []string {
	values := make([]string, len(findings))
	for i, f := range findings {
		values[i] = f.Fields()[col]
	}
	return values
}

// linkDetails turns the first markdown link of each Details cell into a
// real hyperlink. Past linkLimit links the display text is written without
// a hyperlink and counted in skippedLinks. The link style is applied once per
// run of consecutive linked rows.
func (t *table) linkDetails(findings []sarif.Finding, policy ColumnPolicy) error {
	col := slices.Index(Columns, ColumnDetails) + 1
	letter, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return err
	}
	style := t.styles.linkFor(policy.isWrap(ColumnDetails))

	linked := 0
	runStart := 0 // first row of the pending styled run, 0 when none
	flush := func(end int) error {
		if runStart == 0 {
			return nil
		}
		first, last := letter+strconv.Itoa(runStart), letter+strconv.Itoa(end)
		runStart = 0
		return t.file.SetCellStyle(t.sheet, first, last, style)
	}

	for i, finding := range findings {
		row := i + 2
		link, found := ExtractLink(finding.Details)
		if !found || linked >= t.linkLimit {
			if err := flush(row - 1); err != nil {
				return err
			}
		}
		if !found {
			continue
		}

		cell := letter + strconv.Itoa(row)
		if err := t.file.SetCellStr(t.sheet, cell, link.Text); err != nil {
			return err
		}
		if linked >= t.linkLimit {
			t.skippedLinks++
			continue
		}
		linked++
		if err := t.file.SetCellHyperLink(t.sheet, cell, link.URL, linkTypeURL, excelize.HyperlinkOpts{
			Display: &link.Text,
			Tooltip: &link.URL,
		}); err != nil {
			return fmt.Errorf("cell %s: %w", cell, err)
		}
		if runStart == 0 {
			runStart = row
		}
	}
	return flush(len(findings) + 1)
}
